package interfaces

import (
	"context"

	"okaigpt/backend/internal/model"
	"okaigpt/backend/internal/service"
)

// This file defines the interfaces for our core services.
// The API layer depends on these contracts rather than on the concrete
// services, which keeps handlers testable with mocks.

// ChatService defines the contract for session and message operations.
type ChatService interface {
	CreateSession(ctx context.Context, req *service.CreateSessionRequest) (*model.Session, error)
	ListSessions(ctx context.Context) ([]*model.Session, error)
	UpdateSession(ctx context.Context, sessionID string, req *service.UpdateSessionRequest) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	ClearHistory(ctx context.Context) error
	AppendMessage(ctx context.Context, sessionID string, req *service.AppendMessageRequest) (*model.Message, error)
	ListMessages(ctx context.Context, sessionID string, limit *int, offset int) ([]model.Message, error)
}

// VideoService defines the contract for the video lifecycle.
type VideoService interface {
	StartGeneration(ctx context.Context, req *service.StartVideoRequest) (*model.Video, error)
	GetStatus(ctx context.Context, videoID int64) (*model.Video, error)
	UpdateStatus(ctx context.Context, videoID int64, req *service.UpdateVideoRequest) (*model.Video, error)
}

// ToolService defines the contract for the one-shot tools.
type ToolService interface {
	AnalyzeDocument(ctx context.Context, req *service.AnalyzeDocumentRequest) (*model.DocumentAnalysis, error)
	GenerateImage(ctx context.Context, req *service.GenerateImageRequest) (*model.GeneratedImage, error)
	GenerateQuiz(ctx context.Context, req *service.GenerateQuizRequest) (*model.Quiz, error)
	SearchWeb(ctx context.Context, req *service.SearchWebRequest) (*model.WebSearch, error)
}

// ActivityService defines the contract for the activity feed and dashboard.
type ActivityService interface {
	ListRecent(ctx context.Context, limit int) ([]model.Activity, error)
	Stats(ctx context.Context) (*model.Stats, error)
}

// SettingsService defines the contract for managing application settings.
type SettingsService interface {
	InitAndGet(ctx context.Context) (*service.Settings, error)
	Get(ctx context.Context) (*service.Settings, error)
	Save(ctx context.Context, settings *service.Settings) error
}
