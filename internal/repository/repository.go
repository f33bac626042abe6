package repository

import (
	"context"

	"okaigpt/backend/internal/model"
)

// Repository defines the interface for data storage operations.
// Every method is a single unit of work against the backing store.
type Repository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	ListSessions(ctx context.Context) ([]*model.Session, error)
	UpdateSession(ctx context.Context, sessionID string, update model.SessionUpdate) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	ClearHistory(ctx context.Context) error

	// AddMessage inserts the message and touches the owning session's
	// updated_at in one transaction. It returns ErrNotFound when the session
	// does not exist.
	AddMessage(ctx context.Context, message *model.Message) error
	// GetMessages returns messages oldest first. A nil limit means unbounded.
	GetMessages(ctx context.Context, sessionID string, limit *int, offset int) ([]model.Message, error)

	CreateVideo(ctx context.Context, video *model.Video) error
	GetVideo(ctx context.Context, videoID int64) (*model.Video, error)
	UpdateVideo(ctx context.Context, videoID int64, update model.VideoUpdate) (*model.Video, error)
	ListRecentVideos(ctx context.Context, limit int) ([]model.Video, error)

	CreateDocumentAnalysis(ctx context.Context, analysis *model.DocumentAnalysis) error
	ListRecentDocumentAnalyses(ctx context.Context, limit int) ([]model.DocumentAnalysis, error)
	CreateImage(ctx context.Context, image *model.GeneratedImage) error
	ListRecentImages(ctx context.Context, limit int) ([]model.GeneratedImage, error)
	CreateQuiz(ctx context.Context, quiz *model.Quiz) error
	ListRecentQuizzes(ctx context.Context, limit int) ([]model.Quiz, error)
	CreateWebSearch(ctx context.Context, search *model.WebSearch) error
	ListRecentWebSearches(ctx context.Context, limit int) ([]model.WebSearch, error)

	Stats(ctx context.Context) (*model.Stats, error)
}
