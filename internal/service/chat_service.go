package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	app_errors "okaigpt/backend/internal/errors"
	"okaigpt/backend/internal/model"
	"okaigpt/backend/internal/repository"
)

// ChatService owns the session and message lifecycle.
type ChatService struct {
	repo repository.Repository
}

// CreateSessionRequest is the structure for a new session request from the client.
// Every field is optional; a missing id is generated by the server.
type CreateSessionRequest struct {
	ID               *string `json:"id,omitempty" validate:"omitempty,min=1,max=128"`
	Title            *string `json:"title,omitempty" validate:"omitempty,max=200"`
	GenZMode         *bool   `json:"gen_z_mode,omitempty"`
	CopyCodeOnlyMode *bool   `json:"copy_code_only_mode,omitempty"`
	TargetLanguage   *string `json:"target_language,omitempty" validate:"omitempty,max=64"`
}

// UpdateSessionRequest carries a partial session update. Only the fields
// present in the request body are applied.
type UpdateSessionRequest struct {
	Title            *string `json:"title,omitempty" validate:"omitempty,max=200"`
	GenZMode         *bool   `json:"gen_z_mode,omitempty"`
	CopyCodeOnlyMode *bool   `json:"copy_code_only_mode,omitempty"`
	TargetLanguage   *string `json:"target_language,omitempty" validate:"omitempty,max=64"`
}

// AppendMessageRequest is a single turn posted to an existing session.
type AppendMessageRequest struct {
	Role        model.Role        `json:"role" validate:"required,oneof=user assistant"`
	Content     string            `json:"content" validate:"required"`
	ContentType model.ContentType `json:"content_type" validate:"required,oneof=text image pdf"`
	Metadata    map[string]any    `json:"metadata,omitempty"`
}

func NewChatService(repo repository.Repository) *ChatService {
	return &ChatService{repo: repo}
}

// CreateSession persists a new session. Omitted flags default to false.
func (s *ChatService) CreateSession(ctx context.Context, req *CreateSessionRequest) (*model.Session, error) {
	session := &model.Session{
		Title:          req.Title,
		TargetLanguage: req.TargetLanguage,
	}
	if req.ID != nil && *req.ID != "" {
		session.ID = *req.ID
	} else {
		session.ID = uuid.NewString()
	}
	if req.GenZMode != nil {
		session.GenZMode = *req.GenZMode
	}
	if req.CopyCodeOnlyMode != nil {
		session.CopyCodeOnlyMode = *req.CopyCodeOnlyMode
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: session %q already exists", app_errors.ErrDuplicateKey, session.ID)
		}
		return nil, fmt.Errorf("%w: could not create session: %v", app_errors.ErrStoreFailure, err)
	}
	slog.Info("Chat session created", "session_id", session.ID)
	return session, nil
}

// ListSessions returns every session, most recently active first.
func (s *ChatService) ListSessions(ctx context.Context) ([]*model.Session, error) {
	sessions, err := s.repo.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: could not list sessions: %v", app_errors.ErrStoreFailure, err)
	}
	return sessions, nil
}

func (s *ChatService) UpdateSession(ctx context.Context, sessionID string, req *UpdateSessionRequest) (*model.Session, error) {
	session, err := s.repo.UpdateSession(ctx, sessionID, model.SessionUpdate{
		Title:            req.Title,
		GenZMode:         req.GenZMode,
		CopyCodeOnlyMode: req.CopyCodeOnlyMode,
		TargetLanguage:   req.TargetLanguage,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: session %q", app_errors.ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("%w: could not update session: %v", app_errors.ErrStoreFailure, err)
	}
	return session, nil
}

// DeleteSession removes a session and all of its messages. Unknown ids succeed.
func (s *ChatService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.repo.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: could not delete session: %v", app_errors.ErrStoreFailure, err)
	}
	slog.Info("Chat session deleted", "session_id", sessionID)
	return nil
}

// ClearHistory removes every session and message.
func (s *ChatService) ClearHistory(ctx context.Context) error {
	if err := s.repo.ClearHistory(ctx); err != nil {
		return fmt.Errorf("%w: could not clear chat history: %v", app_errors.ErrStoreFailure, err)
	}
	slog.Warn("Chat history cleared")
	return nil
}

// AppendMessage stores a message and touches the owning session.
func (s *ChatService) AppendMessage(ctx context.Context, sessionID string, req *AppendMessageRequest) (*model.Message, error) {
	message := &model.Message{
		SessionID:   sessionID,
		Role:        req.Role,
		Content:     req.Content,
		ContentType: req.ContentType,
		Metadata:    req.Metadata,
	}
	if err := s.repo.AddMessage(ctx, message); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", app_errors.ErrSessionNotFound, sessionID)
		}
		return nil, fmt.Errorf("%w: could not add message: %v", app_errors.ErrStoreFailure, err)
	}
	return message, nil
}

// ListMessages returns a page of a session's messages, oldest first.
// A nil limit returns every message from offset on.
func (s *ChatService) ListMessages(ctx context.Context, sessionID string, limit *int, offset int) ([]model.Message, error) {
	if limit != nil && *limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", app_errors.ErrValidation)
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", app_errors.ErrValidation)
	}
	messages, err := s.repo.GetMessages(ctx, sessionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: could not get messages: %v", app_errors.ErrStoreFailure, err)
	}
	return messages, nil
}
