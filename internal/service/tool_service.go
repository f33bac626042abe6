package service

import (
	"context"
	"fmt"

	app_errors "okaigpt/backend/internal/errors"
	"okaigpt/backend/internal/model"
	"okaigpt/backend/internal/producer"
	"okaigpt/backend/internal/repository"
)

type AnalyzeDocumentRequest struct {
	ImageURL string `json:"image_url" validate:"required"`
	Prompt   string `json:"prompt" validate:"required,max=4000"`
}

type GenerateImageRequest struct {
	Prompt string `json:"prompt" validate:"required,max=4000"`
}

type GenerateQuizRequest struct {
	SourceText string `json:"source_text" validate:"required"`
}

type SearchWebRequest struct {
	Query string `json:"query" validate:"required,max=1000"`
}

// ToolService runs a result producer and persists its output. Each call
// writes exactly one immutable record.
type ToolService struct {
	repo      repository.Repository
	producers producer.Set
}

func NewToolService(repo repository.Repository, producers producer.Set) *ToolService {
	return &ToolService{repo: repo, producers: producers}
}

func (s *ToolService) AnalyzeDocument(ctx context.Context, req *AnalyzeDocumentRequest) (*model.DocumentAnalysis, error) {
	result, err := s.producers.Documents.AnalyzeDocument(ctx, req.ImageURL, req.Prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: document analysis failed: %w", app_errors.ErrInternal, err)
	}
	analysis := &model.DocumentAnalysis{ImageURL: req.ImageURL, Prompt: req.Prompt, Result: result}
	if err := s.repo.CreateDocumentAnalysis(ctx, analysis); err != nil {
		return nil, fmt.Errorf("%w: could not save document analysis: %v", app_errors.ErrStoreFailure, err)
	}
	return analysis, nil
}

func (s *ToolService) GenerateImage(ctx context.Context, req *GenerateImageRequest) (*model.GeneratedImage, error) {
	imageURL, err := s.producers.Images.GenerateImage(ctx, req.Prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: image generation failed: %w", app_errors.ErrInternal, err)
	}
	image := &model.GeneratedImage{Prompt: req.Prompt, ImageURL: imageURL}
	if err := s.repo.CreateImage(ctx, image); err != nil {
		return nil, fmt.Errorf("%w: could not save image: %v", app_errors.ErrStoreFailure, err)
	}
	return image, nil
}

func (s *ToolService) GenerateQuiz(ctx context.Context, req *GenerateQuizRequest) (*model.Quiz, error) {
	questions, err := s.producers.Quizzes.GenerateQuiz(ctx, req.SourceText)
	if err != nil {
		return nil, fmt.Errorf("%w: quiz generation failed: %w", app_errors.ErrInternal, err)
	}
	quiz := &model.Quiz{SourceText: req.SourceText, Questions: questions}
	if err := s.repo.CreateQuiz(ctx, quiz); err != nil {
		return nil, fmt.Errorf("%w: could not save quiz: %v", app_errors.ErrStoreFailure, err)
	}
	return quiz, nil
}

func (s *ToolService) SearchWeb(ctx context.Context, req *SearchWebRequest) (*model.WebSearch, error) {
	summary, sources, err := s.producers.Search.SearchWeb(ctx, req.Query)
	if err != nil {
		return nil, fmt.Errorf("%w: web search failed: %w", app_errors.ErrInternal, err)
	}
	if sources == nil {
		sources = []string{}
	}
	search := &model.WebSearch{Query: req.Query, Summary: summary, Sources: sources}
	if err := s.repo.CreateWebSearch(ctx, search); err != nil {
		return nil, fmt.Errorf("%w: could not save web search: %v", app_errors.ErrStoreFailure, err)
	}
	return search, nil
}
