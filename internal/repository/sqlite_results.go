package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"okaigpt/backend/internal/model"
)

// The result tables are append-only: each tool writes one row per request and
// the activity feed reads the newest rows back.

func (r *sqliteRepository) insert(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *sqliteRepository) CreateDocumentAnalysis(ctx context.Context, analysis *model.DocumentAnalysis) error {
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = r.now()
	}
	id, err := r.insert(ctx,
		"INSERT INTO document_analyses (image_url, prompt, result, created_at) VALUES (?, ?, ?, ?)",
		analysis.ImageURL, analysis.Prompt, analysis.Result, analysis.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert document analysis: %w", err)
	}
	analysis.ID = id
	return nil
}

func (r *sqliteRepository) ListRecentDocumentAnalyses(ctx context.Context, limit int) ([]model.DocumentAnalysis, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, image_url, prompt, result, created_at FROM document_analyses ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	analyses := []model.DocumentAnalysis{}
	for rows.Next() {
		var a model.DocumentAnalysis
		if err := rows.Scan(&a.ID, &a.ImageURL, &a.Prompt, &a.Result, &a.CreatedAt); err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

func (r *sqliteRepository) CreateImage(ctx context.Context, image *model.GeneratedImage) error {
	if image.CreatedAt.IsZero() {
		image.CreatedAt = r.now()
	}
	id, err := r.insert(ctx,
		"INSERT INTO generated_images (prompt, image_url, created_at) VALUES (?, ?, ?)",
		image.Prompt, image.ImageURL, image.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert image: %w", err)
	}
	image.ID = id
	return nil
}

func (r *sqliteRepository) ListRecentImages(ctx context.Context, limit int) ([]model.GeneratedImage, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, prompt, image_url, created_at FROM generated_images ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []model.GeneratedImage{}
	for rows.Next() {
		var img model.GeneratedImage
		if err := rows.Scan(&img.ID, &img.Prompt, &img.ImageURL, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *sqliteRepository) CreateQuiz(ctx context.Context, quiz *model.Quiz) error {
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = r.now()
	}
	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("could not encode quiz questions: %w", err)
	}
	id, err := r.insert(ctx,
		"INSERT INTO quizzes (source_text, questions, created_at) VALUES (?, ?, ?)",
		quiz.SourceText, string(questions), quiz.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert quiz: %w", err)
	}
	quiz.ID = id
	return nil
}

func (r *sqliteRepository) ListRecentQuizzes(ctx context.Context, limit int) ([]model.Quiz, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, source_text, questions, created_at FROM quizzes ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quizzes := []model.Quiz{}
	for rows.Next() {
		var q model.Quiz
		var questions string
		if err := rows.Scan(&q.ID, &q.SourceText, &questions, &q.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(questions), &q.Questions); err != nil {
			return nil, fmt.Errorf("could not decode questions of quiz %d: %w", q.ID, err)
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

func (r *sqliteRepository) CreateWebSearch(ctx context.Context, search *model.WebSearch) error {
	if search.CreatedAt.IsZero() {
		search.CreatedAt = r.now()
	}
	if search.Sources == nil {
		search.Sources = []string{}
	}
	sources, err := json.Marshal(search.Sources)
	if err != nil {
		return fmt.Errorf("could not encode search sources: %w", err)
	}
	id, err := r.insert(ctx,
		"INSERT INTO web_searches (query, summary, sources, created_at) VALUES (?, ?, ?, ?)",
		search.Query, search.Summary, string(sources), search.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert web search: %w", err)
	}
	search.ID = id
	return nil
}

func (r *sqliteRepository) ListRecentWebSearches(ctx context.Context, limit int) ([]model.WebSearch, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, query, summary, sources, created_at FROM web_searches ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	searches := []model.WebSearch{}
	for rows.Next() {
		var s model.WebSearch
		var sources string
		if err := rows.Scan(&s.ID, &s.Query, &s.Summary, &sources, &s.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(sources), &s.Sources); err != nil {
			return nil, fmt.Errorf("could not decode sources of search %d: %w", s.ID, err)
		}
		searches = append(searches, s)
	}
	return searches, rows.Err()
}
