package service

import (
	"context"
	"fmt"
	"slices"

	app_errors "okaigpt/backend/internal/errors"
	"okaigpt/backend/internal/model"
	"okaigpt/backend/internal/repository"
)

const (
	DefaultActivityLimit = 10
	MaxActivityLimit     = 100
)

type ActivityService struct {
	repo repository.Repository
}

func NewActivityService(repo repository.Repository) *ActivityService {
	return &ActivityService{repo: repo}
}

// ListRecent merges the newest rows of every result table, newest first.
// Rows with equal timestamps keep table order: documents, images, videos,
// quizzes, searches. A zero limit selects the default; limits above the
// maximum are capped.
func (s *ActivityService) ListRecent(ctx context.Context, limit int) ([]model.Activity, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", app_errors.ErrValidation)
	}
	if limit == 0 {
		limit = DefaultActivityLimit
	}
	limit = min(limit, MaxActivityLimit)

	activities := make([]model.Activity, 0, 5*limit)

	documents, err := s.repo.ListRecentDocumentAnalyses(ctx, limit)
	if err != nil {
		return nil, storeFailure("document analyses", err)
	}
	for i := range documents {
		d := &documents[i]
		activities = append(activities, model.Activity{Type: model.ActivityDocument, ID: d.ID, CreatedAt: d.CreatedAt, Document: d})
	}

	images, err := s.repo.ListRecentImages(ctx, limit)
	if err != nil {
		return nil, storeFailure("images", err)
	}
	for i := range images {
		img := &images[i]
		activities = append(activities, model.Activity{Type: model.ActivityImage, ID: img.ID, CreatedAt: img.CreatedAt, Image: img})
	}

	videos, err := s.repo.ListRecentVideos(ctx, limit)
	if err != nil {
		return nil, storeFailure("videos", err)
	}
	for i := range videos {
		v := &videos[i]
		activities = append(activities, model.Activity{Type: model.ActivityVideo, ID: v.ID, CreatedAt: v.CreatedAt, Video: v})
	}

	quizzes, err := s.repo.ListRecentQuizzes(ctx, limit)
	if err != nil {
		return nil, storeFailure("quizzes", err)
	}
	for i := range quizzes {
		q := &quizzes[i]
		activities = append(activities, model.Activity{Type: model.ActivityQuiz, ID: q.ID, CreatedAt: q.CreatedAt, Quiz: q})
	}

	searches, err := s.repo.ListRecentWebSearches(ctx, limit)
	if err != nil {
		return nil, storeFailure("web searches", err)
	}
	for i := range searches {
		ws := &searches[i]
		activities = append(activities, model.Activity{Type: model.ActivitySearch, ID: ws.ID, CreatedAt: ws.CreatedAt, Search: ws})
	}

	slices.SortStableFunc(activities, func(a, b model.Activity) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

func (s *ActivityService) Stats(ctx context.Context) (*model.Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, storeFailure("stats", err)
	}
	return stats, nil
}

func storeFailure(what string, err error) error {
	return fmt.Errorf("%w: could not read %s: %v", app_errors.ErrStoreFailure, what, err)
}
