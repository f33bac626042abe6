// The `_test` suffix creates a "black box" test package that only sees the
// exported API of package api.
package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"okaigpt/backend/internal/api"
	app_errors "okaigpt/backend/internal/errors"
	"okaigpt/backend/internal/interfaces/mocks"
	"okaigpt/backend/internal/model"
	"okaigpt/backend/internal/service"
)

func setupChatHandler(t *testing.T) (*api.ChatHandler, *mocks.MockChatService, *mocks.MockSettingsService) {
	mockChatSvc := mocks.NewMockChatService(t)
	mockSettingsSvc := mocks.NewMockSettingsService(t)
	handler := api.NewChatHandler(mockChatSvc, mockSettingsSvc)
	return handler, mockChatSvc, mockSettingsSvc
}

// addChiURLParams simulates how the chi router injects URL parameters
// (e.g. `{sessionID}`) into the request's context.
func addChiURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func TestChatHandler_GetSettings(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, _, mockSettingsSvc := setupChatHandler(t)
		expectedSettings := &service.Settings{Theme: "dark"}
		mockSettingsSvc.On("Get", mock.Anything).Return(expectedSettings, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
		rr := httptest.NewRecorder()
		handler.GetSettings(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"theme":"dark","default_target_language":"","default_gen_z_mode":false,"default_copy_code_only_mode":false}`, rr.Body.String())
	})

	t.Run("Failure", func(t *testing.T) {
		handler, _, mockSettingsSvc := setupChatHandler(t)
		mockSettingsSvc.On("Get", mock.Anything).Return(nil, app_errors.ErrStoreFailure).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
		rr := httptest.NewRecorder()
		handler.GetSettings(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestChatHandler_UpdateSettings(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, _, mockSettingsSvc := setupChatHandler(t)
		expected := &service.Settings{Theme: "light", DefaultGenZMode: true}
		mockSettingsSvc.On("Save", mock.Anything, expected).Return(nil).Once()

		body := `{"theme":"light","default_gen_z_mode":true}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.UpdateSettings(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Validation error", func(t *testing.T) {
		handler, _, _ := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", strings.NewReader(`{"theme":"neon"}`))
		rr := httptest.NewRecorder()
		handler.UpdateSettings(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Field 'theme' failed on the 'oneof' tag")
	})
}

func TestChatHandler_CreateSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("CreateSession", mock.Anything, mock.MatchedBy(func(r *service.CreateSessionRequest) bool {
			return r.ID != nil && *r.ID == "s1" && r.GenZMode != nil && *r.GenZMode
		})).Return(&model.Session{ID: "s1", GenZMode: true}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/sessions", strings.NewReader(`{"id":"s1","gen_z_mode":true}`))
		rr := httptest.NewRecorder()
		handler.CreateSession(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var session model.Session
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &session))
		assert.Equal(t, "s1", session.ID)
	})

	t.Run("Failure - Duplicate id", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("CreateSession", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: session \"s1\" already exists", app_errors.ErrDuplicateKey)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/sessions", strings.NewReader(`{"id":"s1"}`))
		rr := httptest.NewRecorder()
		handler.CreateSession(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), `"code":"duplicate_key"`)
	})

	t.Run("Failure - Invalid JSON", func(t *testing.T) {
		handler, _, _ := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/sessions", strings.NewReader(`{"id":`))
		rr := httptest.NewRecorder()
		handler.CreateSession(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestChatHandler_ListSessions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("ListSessions", mock.Anything).Return([]*model.Session{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/sessions", nil)
		rr := httptest.NewRecorder()
		handler.ListSessions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", rr.Body.String())
	})

	t.Run("Failure - Service returns error", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("ListSessions", mock.Anything).Return(nil, errors.New("internal error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/sessions", nil)
		rr := httptest.NewRecorder()
		handler.ListSessions(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "internal server error")
	})
}

func TestChatHandler_UpdateSession(t *testing.T) {
	sessionID := "s1"

	t.Run("Success", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("UpdateSession", mock.Anything, sessionID, mock.MatchedBy(func(r *service.UpdateSessionRequest) bool {
			return r.Title != nil && *r.Title == "Renamed" && r.GenZMode == nil
		})).Return(&model.Session{ID: sessionID}, nil).Once()

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/chat/sessions/"+sessionID, strings.NewReader(`{"title":"Renamed"}`))
		req = addChiURLParams(req, map[string]string{"sessionID": sessionID})
		rr := httptest.NewRecorder()
		handler.UpdateSession(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("UpdateSession", mock.Anything, "ghost", mock.Anything).Return(nil, app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/chat/sessions/ghost", strings.NewReader(`{"title":"x"}`))
		req = addChiURLParams(req, map[string]string{"sessionID": "ghost"})
		rr := httptest.NewRecorder()
		handler.UpdateSession(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Failure - Unknown field", func(t *testing.T) {
		handler, _, _ := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/chat/sessions/s1", strings.NewReader(`{"colour":"red"}`))
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.UpdateSession(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestChatHandler_DeleteSessionAndClear(t *testing.T) {
	t.Run("Success - Delete", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("DeleteSession", mock.Anything, "s1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/chat/sessions/s1", nil)
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.DeleteSession(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("Success - Clear", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("ClearHistory", mock.Anything).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/chat/sessions", nil)
		rr := httptest.NewRecorder()
		handler.ClearHistory(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestChatHandler_CreateMessage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("AppendMessage", mock.Anything, "s1", mock.MatchedBy(func(r *service.AppendMessageRequest) bool {
			return r.Role == model.RoleUser && r.ContentType == model.ContentPDF && r.Metadata["size"] == float64(1024)
		})).Return(&model.Message{ID: 1, SessionID: "s1"}, nil).Once()

		body := `{"role":"user","content":"report.pdf","content_type":"pdf","metadata":{"size":1024}}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/sessions/s1/messages", strings.NewReader(body))
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.CreateMessage(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - Invalid role", func(t *testing.T) {
		handler, _, _ := setupChatHandler(t)

		body := `{"role":"system","content":"hi","content_type":"text"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/sessions/s1/messages", strings.NewReader(body))
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.CreateMessage(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "role")
	})

	t.Run("Failure - Session not found", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("AppendMessage", mock.Anything, "ghost", mock.Anything).
			Return(nil, fmt.Errorf("%w: \"ghost\"", app_errors.ErrSessionNotFound)).Once()

		body := `{"role":"user","content":"hi","content_type":"text"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/sessions/ghost/messages", strings.NewReader(body))
		req = addChiURLParams(req, map[string]string{"sessionID": "ghost"})
		rr := httptest.NewRecorder()
		handler.CreateMessage(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "chat session was not found")
		assert.Contains(t, rr.Body.String(), `"code":"session_not_found"`)
	})
}

func TestChatHandler_ListMessages(t *testing.T) {
	t.Run("Success - Pagination parameters", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("ListMessages", mock.Anything, "s1", mock.MatchedBy(func(l *int) bool {
			return l != nil && *l == 0
		}), 5).Return([]model.Message{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/sessions/s1/messages?limit=0&offset=5", nil)
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.ListMessages(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", rr.Body.String())
	})

	t.Run("Success - No limit", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("ListMessages", mock.Anything, "s1", (*int)(nil), 0).
			Return([]model.Message{{ID: 1}, {ID: 2}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/sessions/s1/messages", nil)
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.ListMessages(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Negative offset", func(t *testing.T) {
		handler, _, _ := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/sessions/s1/messages?offset=-1", nil)
		req = addChiURLParams(req, map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.ListMessages(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "offset")
	})
}
