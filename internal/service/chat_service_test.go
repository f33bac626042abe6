package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "okaigpt/backend/internal/errors"
	"okaigpt/backend/internal/model"
	"okaigpt/backend/internal/repository"
	mock_repo "okaigpt/backend/internal/repository/mocks"
	"okaigpt/backend/internal/service"
)

func setupChatService(t *testing.T) (*service.ChatService, *mock_repo.MockRepository) {
	repo := mock_repo.NewMockRepository(t)
	return service.NewChatService(repo), repo
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }

func TestChatService_CreateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Generated id and default flags", func(t *testing.T) {
		chatService, repo := setupChatService(t)
		repo.On("CreateSession", ctx, mock.MatchedBy(func(s *model.Session) bool {
			return s.ID != "" && !s.GenZMode && !s.CopyCodeOnlyMode && s.Title == nil
		})).Return(nil).Twice()

		first, err := chatService.CreateSession(ctx, &service.CreateSessionRequest{})
		require.NoError(t, err)
		second, err := chatService.CreateSession(ctx, &service.CreateSessionRequest{})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("Success - Explicit id and flags", func(t *testing.T) {
		chatService, repo := setupChatService(t)
		repo.On("CreateSession", ctx, mock.MatchedBy(func(s *model.Session) bool {
			return s.ID == "s1" && s.GenZMode && *s.Title == "Trip"
		})).Return(nil).Once()

		session, err := chatService.CreateSession(ctx, &service.CreateSessionRequest{
			ID: strPtr("s1"), Title: strPtr("Trip"), GenZMode: boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "s1", session.ID)
		assert.True(t, session.GenZMode)
		assert.False(t, session.CopyCodeOnlyMode)
	})

	t.Run("Failure - Duplicate id", func(t *testing.T) {
		chatService, repo := setupChatService(t)
		repo.On("CreateSession", ctx, mock.Anything).Return(repository.ErrDuplicateKey).Once()

		_, err := chatService.CreateSession(ctx, &service.CreateSessionRequest{ID: strPtr("s1")})
		assert.ErrorIs(t, err, app_errors.ErrDuplicateKey)
	})

	t.Run("Failure - Store error", func(t *testing.T) {
		chatService, repo := setupChatService(t)
		repo.On("CreateSession", ctx, mock.Anything).Return(errors.New("disk full")).Once()

		_, err := chatService.CreateSession(ctx, &service.CreateSessionRequest{})
		assert.ErrorIs(t, err, app_errors.ErrStoreFailure)
		assert.ErrorContains(t, err, "disk full")
	})
}

func TestChatService_ListSessions(t *testing.T) {
	ctx := context.Background()
	chatService, repo := setupChatService(t)

	expected := []*model.Session{{ID: "s2"}, {ID: "s1"}}
	repo.On("ListSessions", ctx).Return(expected, nil).Once()

	sessions, err := chatService.ListSessions(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expected, sessions)
}

func TestChatService_UpdateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		chatService, repo := setupChatService(t)
		update := model.SessionUpdate{CopyCodeOnlyMode: boolPtr(true)}
		repo.On("UpdateSession", ctx, "s1", update).Return(&model.Session{ID: "s1", CopyCodeOnlyMode: true}, nil).Once()

		session, err := chatService.UpdateSession(ctx, "s1", &service.UpdateSessionRequest{CopyCodeOnlyMode: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, session.CopyCodeOnlyMode)
	})

	t.Run("Failure - Repository returns not found", func(t *testing.T) {
		chatService, repo := setupChatService(t)
		repo.On("UpdateSession", ctx, "missing", mock.Anything).Return(nil, repository.ErrNotFound).Once()

		_, err := chatService.UpdateSession(ctx, "missing", &service.UpdateSessionRequest{Title: strPtr("x")})
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})
}

func TestChatService_DeleteAndClear(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Delete", func(t *testing.T) {
		chatService, repo := setupChatService(t)
		repo.On("DeleteSession", ctx, "s1").Return(nil).Once()
		assert.NoError(t, chatService.DeleteSession(ctx, "s1"))
	})

	t.Run("Failure - Delete store error", func(t *testing.T) {
		chatService, repo := setupChatService(t)
		repo.On("DeleteSession", ctx, "s1").Return(errors.New("locked")).Once()
		assert.ErrorIs(t, chatService.DeleteSession(ctx, "s1"), app_errors.ErrStoreFailure)
	})

	t.Run("Success - Clear history", func(t *testing.T) {
		chatService, repo := setupChatService(t)
		repo.On("ClearHistory", ctx).Return(nil).Once()
		assert.NoError(t, chatService.ClearHistory(ctx))
	})
}

func TestChatService_AppendMessage(t *testing.T) {
	ctx := context.Background()
	req := &service.AppendMessageRequest{
		Role:        model.RoleUser,
		Content:     "hello",
		ContentType: model.ContentText,
		Metadata:    map[string]any{"file_name": "notes.txt"},
	}

	t.Run("Success", func(t *testing.T) {
		chatService, repo := setupChatService(t)
		repo.On("AddMessage", ctx, mock.MatchedBy(func(m *model.Message) bool {
			return m.SessionID == "s1" && m.Role == model.RoleUser && m.Metadata["file_name"] == "notes.txt"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Message).ID = 42
		}).Return(nil).Once()

		msg, err := chatService.AppendMessage(ctx, "s1", req)
		require.NoError(t, err)
		assert.Equal(t, int64(42), msg.ID)
		assert.Equal(t, "hello", msg.Content)
	})

	t.Run("Failure - Session does not exist", func(t *testing.T) {
		chatService, repo := setupChatService(t)
		repo.On("AddMessage", ctx, mock.Anything).Return(repository.ErrNotFound).Once()

		_, err := chatService.AppendMessage(ctx, "ghost", req)
		assert.ErrorIs(t, err, app_errors.ErrSessionNotFound)
		assert.NotErrorIs(t, err, app_errors.ErrNotFound)
	})

	t.Run("Failure - Store error", func(t *testing.T) {
		chatService, repo := setupChatService(t)
		repo.On("AddMessage", ctx, mock.Anything).Return(errors.New("could not update session timestamp")).Once()

		_, err := chatService.AppendMessage(ctx, "s1", req)
		assert.ErrorIs(t, err, app_errors.ErrStoreFailure)
	})
}

func TestChatService_ListMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		chatService, repo := setupChatService(t)
		limit := intPtr(2)
		expected := []model.Message{{ID: 1}, {ID: 2}}
		repo.On("GetMessages", ctx, "s1", limit, 4).Return(expected, nil).Once()

		messages, err := chatService.ListMessages(ctx, "s1", limit, 4)
		require.NoError(t, err)
		assert.Equal(t, expected, messages)
	})

	t.Run("Failure - Negative limit", func(t *testing.T) {
		chatService, _ := setupChatService(t)
		_, err := chatService.ListMessages(ctx, "s1", intPtr(-1), 0)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("Failure - Negative offset", func(t *testing.T) {
		chatService, _ := setupChatService(t)
		_, err := chatService.ListMessages(ctx, "s1", nil, -3)
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})
}
