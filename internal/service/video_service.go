package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"okaigpt/backend/internal/broker"
	app_errors "okaigpt/backend/internal/errors"
	"okaigpt/backend/internal/model"
	"okaigpt/backend/internal/repository"
)

const queuedProgressMessage = "Video generation queued"

// StartVideoRequest starts a new video generation.
type StartVideoRequest struct {
	Prompt          string  `json:"prompt" validate:"required,max=4000"`
	InitialImageURL *string `json:"initial_image_url,omitempty" validate:"omitempty,max=2048"`
}

// UpdateVideoRequest is a partial status update, normally sent by the
// external generation process.
type UpdateVideoRequest struct {
	Status          *model.VideoStatus `json:"status,omitempty" validate:"omitempty,oneof=pending processing completed failed"`
	VideoURL        *string            `json:"video_url,omitempty" validate:"omitempty,max=2048"`
	ProgressMessage *string            `json:"progress_message,omitempty" validate:"omitempty,max=1000"`
	CompletedAt     *time.Time         `json:"completed_at,omitempty"`
}

// VideoService manages the video lifecycle. It does not enforce status
// transitions; any status may be written at any time.
type VideoService struct {
	repo       repository.Repository
	dispatcher broker.VideoDispatcher
	notifier   broker.StatusNotifier
}

func NewVideoService(repo repository.Repository, dispatcher broker.VideoDispatcher, notifier broker.StatusNotifier) *VideoService {
	return &VideoService{
		repo:       repo,
		dispatcher: dispatcher,
		notifier:   notifier,
	}
}

// StartGeneration records a pending video and hands it to the dispatcher.
// If the dispatch fails the stored video is marked failed and an ErrInternal
// error is returned, so a successful call always yields a pending video.
func (s *VideoService) StartGeneration(ctx context.Context, req *StartVideoRequest) (*model.Video, error) {
	progress := queuedProgressMessage
	video := &model.Video{
		Prompt:          req.Prompt,
		InitialImageURL: req.InitialImageURL,
		Status:          model.VideoPending,
		ProgressMessage: &progress,
	}
	if err := s.repo.CreateVideo(ctx, video); err != nil {
		return nil, fmt.Errorf("%w: could not create video: %v", app_errors.ErrStoreFailure, err)
	}
	slog.Info("Video generation started", "video_id", video.ID)

	if err := s.dispatcher.DispatchVideo(ctx, video); err != nil {
		slog.Error("Failed to dispatch video job", "video_id", video.ID, "error", err)
		failed := model.VideoFailed
		msg := fmt.Sprintf("Could not queue video generation: %v", err)
		if _, markErr := s.UpdateStatus(ctx, video.ID, &UpdateVideoRequest{Status: &failed, ProgressMessage: &msg}); markErr != nil {
			slog.Error("Failed to mark undispatched video as failed", "video_id", video.ID, "error", markErr)
		}
		return nil, fmt.Errorf("%w: could not queue video %d: %w", app_errors.ErrInternal, video.ID, err)
	}
	return video, nil
}

func (s *VideoService) GetStatus(ctx context.Context, videoID int64) (*model.Video, error) {
	video, err := s.repo.GetVideo(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: video %d", app_errors.ErrNotFound, videoID)
		}
		return nil, fmt.Errorf("%w: could not get video: %v", app_errors.ErrStoreFailure, err)
	}
	return video, nil
}

// UpdateStatus applies a partial update. Fields left out of req keep their
// stored values, completed_at included.
func (s *VideoService) UpdateStatus(ctx context.Context, videoID int64, req *UpdateVideoRequest) (*model.Video, error) {
	if req.Status != nil && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown video status %q", app_errors.ErrValidation, *req.Status)
	}

	update := model.VideoUpdate{
		Status:          req.Status,
		VideoURL:        req.VideoURL,
		ProgressMessage: req.ProgressMessage,
		CompletedAt:     req.CompletedAt,
	}

	video, err := s.repo.UpdateVideo(ctx, videoID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: video %d", app_errors.ErrNotFound, videoID)
		}
		return nil, fmt.Errorf("%w: could not update video: %v", app_errors.ErrStoreFailure, err)
	}

	if err := s.notifier.NotifyVideoStatus(ctx, video); err != nil {
		slog.Warn("Failed to publish video status", "video_id", video.ID, "status", video.Status, "error", err)
	}
	return video, nil
}
