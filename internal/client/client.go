// Package client is a typed Go client for the OKAIgpt HTTP API, with a
// client-side session cache and a cancellable video status poller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"okaigpt/backend/internal/api"
	app_errors "okaigpt/backend/internal/errors"
	"okaigpt/backend/internal/model"
	"okaigpt/backend/internal/service"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the response back to the server's error taxonomy so callers can
// use errors.Is with the app_errors sentinels. The error code takes precedence;
// the status code is the fallback for bodies without one.
func (e *APIError) Unwrap() error {
	switch e.Code {
	case api.CodeSessionNotFound:
		return app_errors.ErrSessionNotFound
	case api.CodeNotFound:
		return app_errors.ErrNotFound
	case api.CodeDuplicateKey:
		return app_errors.ErrDuplicateKey
	case api.CodeValidation:
		return app_errors.ErrValidation
	case api.CodeInternal:
		return app_errors.ErrInternal
	}

	switch e.StatusCode {
	case http.StatusNotFound:
		return app_errors.ErrNotFound
	case http.StatusConflict:
		return app_errors.ErrDuplicateKey
	case http.StatusBadRequest:
		return app_errors.ErrValidation
	default:
		return app_errors.ErrInternal
	}
}

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a client for the server at baseURL, e.g. "http://localhost:8000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1",
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("could not create http request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("could not read error response (status %d): %w", resp.StatusCode, err)
		}
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		var errResp api.ErrorResponse
		if json.Unmarshal(raw, &errResp) == nil && errResp.Error != "" {
			apiErr.Message = errResp.Error
			apiErr.Code = errResp.Code
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	return nil
}

func (c *Client) CreateSession(ctx context.Context, req *service.CreateSessionRequest) (*model.Session, error) {
	var session model.Session
	if err := c.do(ctx, http.MethodPost, "/chat/sessions", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) ListSessions(ctx context.Context) ([]*model.Session, error) {
	var sessions []*model.Session
	if err := c.do(ctx, http.MethodGet, "/chat/sessions", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *Client) UpdateSession(ctx context.Context, sessionID string, req *service.UpdateSessionRequest) (*model.Session, error) {
	var session model.Session
	if err := c.do(ctx, http.MethodPatch, "/chat/sessions/"+url.PathEscape(sessionID), req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodDelete, "/chat/sessions/"+url.PathEscape(sessionID), nil, nil)
}

func (c *Client) ClearHistory(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/chat/sessions", nil, nil)
}

func (c *Client) AppendMessage(ctx context.Context, sessionID string, req *service.AppendMessageRequest) (*model.Message, error) {
	var message model.Message
	if err := c.do(ctx, http.MethodPost, "/chat/sessions/"+url.PathEscape(sessionID)+"/messages", req, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

// ListMessages pages through a session's messages. A nil limit fetches
// everything from offset on.
func (c *Client) ListMessages(ctx context.Context, sessionID string, limit *int, offset int) ([]model.Message, error) {
	q := url.Values{}
	if limit != nil {
		q.Set("limit", strconv.Itoa(*limit))
	}
	if offset != 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	path := "/chat/sessions/" + url.PathEscape(sessionID) + "/messages"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var messages []model.Message
	if err := c.do(ctx, http.MethodGet, path, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) AnalyzeDocument(ctx context.Context, req *service.AnalyzeDocumentRequest) (*model.DocumentAnalysis, error) {
	var analysis model.DocumentAnalysis
	if err := c.do(ctx, http.MethodPost, "/documents/analyze", req, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (c *Client) GenerateImage(ctx context.Context, req *service.GenerateImageRequest) (*model.GeneratedImage, error) {
	var image model.GeneratedImage
	if err := c.do(ctx, http.MethodPost, "/images", req, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

func (c *Client) StartVideo(ctx context.Context, req *service.StartVideoRequest) (*model.Video, error) {
	var video model.Video
	if err := c.do(ctx, http.MethodPost, "/videos", req, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (c *Client) GetVideoStatus(ctx context.Context, videoID int64) (*model.Video, error) {
	var video model.Video
	if err := c.do(ctx, http.MethodGet, "/videos/"+strconv.FormatInt(videoID, 10), nil, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (c *Client) UpdateVideoStatus(ctx context.Context, videoID int64, req *service.UpdateVideoRequest) (*model.Video, error) {
	var video model.Video
	if err := c.do(ctx, http.MethodPatch, "/videos/"+strconv.FormatInt(videoID, 10), req, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (c *Client) GenerateQuiz(ctx context.Context, req *service.GenerateQuizRequest) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := c.do(ctx, http.MethodPost, "/quizzes", req, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) SearchWeb(ctx context.Context, req *service.SearchWebRequest) (*model.WebSearch, error) {
	var search model.WebSearch
	if err := c.do(ctx, http.MethodPost, "/searches", req, &search); err != nil {
		return nil, err
	}
	return &search, nil
}

// RecentActivities returns the merged activity feed. A zero limit lets the
// server pick its default.
func (c *Client) RecentActivities(ctx context.Context, limit int) ([]model.Activity, error) {
	path := "/activities"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var activities []model.Activity
	if err := c.do(ctx, http.MethodGet, path, nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (c *Client) Stats(ctx context.Context) (*model.Stats, error) {
	var stats model.Stats
	if err := c.do(ctx, http.MethodGet, "/activities/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) GetSettings(ctx context.Context) (*service.Settings, error) {
	var settings service.Settings
	if err := c.do(ctx, http.MethodGet, "/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) SaveSettings(ctx context.Context, settings *service.Settings) (*service.Settings, error) {
	var saved service.Settings
	if err := c.do(ctx, http.MethodPut, "/settings", settings, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
