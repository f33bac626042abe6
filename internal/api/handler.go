package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	app_errors "okaigpt/backend/internal/errors"
	"okaigpt/backend/internal/interfaces"
	"okaigpt/backend/internal/service"
)

// ChatHandler serves chat sessions, messages and application settings.
type ChatHandler struct {
	chatService     interfaces.ChatService
	settingsService interfaces.SettingsService
}

func NewChatHandler(chatSvc interfaces.ChatService, settingsSvc interfaces.SettingsService) *ChatHandler {
	return &ChatHandler{chatService: chatSvc, settingsService: settingsSvc}
}

// GetSettings godoc
// @Summary      Get application settings
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  service.Settings
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/settings [get]
func (h *ChatHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary      Update application settings
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        settings  body      service.Settings  true  "New settings"
// @Success      200       {object}  service.Settings
// @Failure      400       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /v1/settings [put]
func (h *ChatHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings service.Settings
	if err := decodeJSON(r, &settings); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.settingsService.Save(r.Context(), &settings); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// CreateSession godoc
// @Summary      Create a chat session
// @Description  Creates a session. A missing id is generated by the server.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        session  body      service.CreateSessionRequest  true  "Session fields"
// @Success      201      {object}  model.Session
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /v1/chat/sessions [post]
func (h *ChatHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req service.CreateSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	session, err := h.chatService.CreateSession(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, session)
}

// ListSessions godoc
// @Summary      List chat sessions
// @Description  Returns every session, most recently active first.
// @Tags         Chat
// @Produce      json
// @Success      200  {array}   model.Session
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/chat/sessions [get]
func (h *ChatHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.chatService.ListSessions(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sessions)
}

// UpdateSession godoc
// @Summary      Update a chat session
// @Description  Applies only the fields present in the body.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                        true  "Session ID"
// @Param        update     body      service.UpdateSessionRequest  true  "Fields to change"
// @Success      200        {object}  model.Session
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/chat/sessions/{sessionID} [patch]
func (h *ChatHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	var req service.UpdateSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	session, err := h.chatService.UpdateSession(r.Context(), sessionID, &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// DeleteSession godoc
// @Summary      Delete a chat session
// @Description  Deletes the session and all of its messages. Unknown ids succeed.
// @Tags         Chat
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  StatusResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /v1/chat/sessions/{sessionID} [delete]
func (h *ChatHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if err := h.chatService.DeleteSession(r.Context(), sessionID); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// ClearHistory godoc
// @Summary      Clear all chat history
// @Tags         Chat
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/chat/sessions [delete]
func (h *ChatHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.chatService.ClearHistory(r.Context()); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// CreateMessage godoc
// @Summary      Append a message to a session
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                        true  "Session ID"
// @Param        message    body      service.AppendMessageRequest  true  "Message"
// @Success      201        {object}  model.Message
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/chat/sessions/{sessionID}/messages [post]
func (h *ChatHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	var req service.AppendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	message, err := h.chatService.AppendMessage(r.Context(), sessionID, &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, message)
}

// ListMessages godoc
// @Summary      List a session's messages
// @Description  Oldest first. Without a limit every message from offset on is returned.
// @Tags         Chat
// @Produce      json
// @Param        sessionID  path      string  true   "Session ID"
// @Param        limit      query     int     false  "Maximum number of messages"
// @Param        offset     query     int     false  "Number of messages to skip"
// @Success      200        {array}   model.Message
// @Failure      400        {object}  ErrorResponse
// @Router       /v1/chat/sessions/{sessionID}/messages [get]
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	limit, err := queryInt(r, "limit")
	if err != nil {
		respondWithError(w, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		respondWithError(w, err)
		return
	}
	var off int
	if offset != nil {
		off = *offset
	}
	messages, err := h.chatService.ListMessages(r.Context(), sessionID, limit, off)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}

// queryInt reads an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("%w: query parameter '%s' must be a non-negative integer", app_errors.ErrValidation, name)
	}
	return &v, nil
}
