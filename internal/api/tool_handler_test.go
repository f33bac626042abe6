package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"okaigpt/backend/internal/api"
	app_errors "okaigpt/backend/internal/errors"
	"okaigpt/backend/internal/interfaces/mocks"
	"okaigpt/backend/internal/model"
	"okaigpt/backend/internal/service"
)

func setupToolHandler(t *testing.T) (*api.ToolHandler, *mocks.MockToolService, *mocks.MockActivityService) {
	mockTools := mocks.NewMockToolService(t)
	mockActivities := mocks.NewMockActivityService(t)
	return api.NewToolHandler(mockTools, mockActivities), mockTools, mockActivities
}

func TestToolHandler_AnalyzeDocument(t *testing.T) {
	handler, mockTools, _ := setupToolHandler(t)
	mockTools.On("AnalyzeDocument", mock.Anything, &service.AnalyzeDocumentRequest{ImageURL: "data:image/png;base64,AAA", Prompt: "Extract totals"}).
		Return(&model.DocumentAnalysis{ID: 1, Result: "done"}, nil).Once()

	body := `{"image_url":"data:image/png;base64,AAA","prompt":"Extract totals"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/analyze", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.AnalyzeDocument(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestToolHandler_GenerateImage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockTools, _ := setupToolHandler(t)
		mockTools.On("GenerateImage", mock.Anything, &service.GenerateImageRequest{Prompt: "a fox"}).
			Return(&model.GeneratedImage{ID: 2, Prompt: "a fox", ImageURL: "https://assets/x.png"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/images", strings.NewReader(`{"prompt":"a fox"}`))
		rr := httptest.NewRecorder()
		handler.GenerateImage(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), "https://assets/x.png")
	})

	t.Run("Failure - Producer error", func(t *testing.T) {
		handler, mockTools, _ := setupToolHandler(t)
		mockTools.On("GenerateImage", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: image generation failed: %w", app_errors.ErrInternal, errors.New("gpu on fire"))).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/images", strings.NewReader(`{"prompt":"a fox"}`))
		rr := httptest.NewRecorder()
		handler.GenerateImage(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "gpu on fire")
	})
}

func TestToolHandler_GenerateQuizAndSearch(t *testing.T) {
	t.Run("Success - Quiz", func(t *testing.T) {
		handler, mockTools, _ := setupToolHandler(t)
		mockTools.On("GenerateQuiz", mock.Anything, &service.GenerateQuizRequest{SourceText: "Some text here."}).
			Return(&model.Quiz{ID: 3, Questions: []model.QuizQuestion{{Question: "Q", Options: []string{"a", "b"}, AnswerIndex: 1}}}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/quizzes", strings.NewReader(`{"source_text":"Some text here."}`))
		rr := httptest.NewRecorder()
		handler.GenerateQuiz(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"answer_index":1`)
	})

	t.Run("Failure - Empty query", func(t *testing.T) {
		handler, _, _ := setupToolHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/searches", strings.NewReader(`{"query":""}`))
		rr := httptest.NewRecorder()
		handler.SearchWeb(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestToolHandler_ListActivities(t *testing.T) {
	t.Run("Success - Default limit", func(t *testing.T) {
		handler, _, mockActivities := setupToolHandler(t)
		mockActivities.On("ListRecent", mock.Anything, 0).Return([]model.Activity{
			{Type: model.ActivityImage, ID: 2, Image: &model.GeneratedImage{ID: 2}},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/activities", nil)
		rr := httptest.NewRecorder()
		handler.ListActivities(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "image", got[0]["type"])
		assert.NotContains(t, got[0], "video")
	})

	t.Run("Success - Explicit limit", func(t *testing.T) {
		handler, _, mockActivities := setupToolHandler(t)
		mockActivities.On("ListRecent", mock.Anything, 25).Return([]model.Activity{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/activities?limit=25", nil)
		rr := httptest.NewRecorder()
		handler.ListActivities(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Bad limit", func(t *testing.T) {
		handler, _, _ := setupToolHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/activities?limit=ten", nil)
		rr := httptest.NewRecorder()
		handler.ListActivities(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestToolHandler_GetStats(t *testing.T) {
	handler, _, mockActivities := setupToolHandler(t)
	mockActivities.On("Stats", mock.Anything).Return(&model.Stats{Sessions: 3, CompletedVideos: 1}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/activities/stats", nil)
	rr := httptest.NewRecorder()
	handler.GetStats(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"sessions":3`)
	assert.Contains(t, rr.Body.String(), `"completed_videos":1`)
}
