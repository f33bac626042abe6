package api

import (
	"net/http"

	"okaigpt/backend/internal/interfaces"
	"okaigpt/backend/internal/service"
)

// ToolHandler serves the one-shot tools and the activity feed built from
// their results.
type ToolHandler struct {
	tools      interfaces.ToolService
	activities interfaces.ActivityService
}

func NewToolHandler(tools interfaces.ToolService, activities interfaces.ActivityService) *ToolHandler {
	return &ToolHandler{tools: tools, activities: activities}
}

// AnalyzeDocument godoc
// @Summary      Analyze a scanned document
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        request  body      service.AnalyzeDocumentRequest  true  "Document image and prompt"
// @Success      201      {object}  model.DocumentAnalysis
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /v1/documents/analyze [post]
func (h *ToolHandler) AnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	var req service.AnalyzeDocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	analysis, err := h.tools.AnalyzeDocument(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, analysis)
}

// GenerateImage godoc
// @Summary      Generate an image
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        request  body      service.GenerateImageRequest  true  "Prompt"
// @Success      201      {object}  model.GeneratedImage
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /v1/images [post]
func (h *ToolHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req service.GenerateImageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	image, err := h.tools.GenerateImage(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, image)
}

// GenerateQuiz godoc
// @Summary      Generate a quiz from a text
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        request  body      service.GenerateQuizRequest  true  "Source text"
// @Success      201      {object}  model.Quiz
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /v1/quizzes [post]
func (h *ToolHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req service.GenerateQuizRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	quiz, err := h.tools.GenerateQuiz(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, quiz)
}

// SearchWeb godoc
// @Summary      Search the web
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        request  body      service.SearchWebRequest  true  "Query"
// @Success      201      {object}  model.WebSearch
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /v1/searches [post]
func (h *ToolHandler) SearchWeb(w http.ResponseWriter, r *http.Request) {
	var req service.SearchWebRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	search, err := h.tools.SearchWeb(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, search)
}

// ListActivities godoc
// @Summary      Recent activity
// @Description  Newest results across all tools. Default limit 10, at most 100.
// @Tags         Activity
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of entries"
// @Success      200    {array}   model.Activity
// @Failure      400    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /v1/activities [get]
func (h *ToolHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		respondWithError(w, err)
		return
	}
	var n int
	if limit != nil {
		n = *limit
	}
	activities, err := h.activities.ListRecent(r.Context(), n)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, activities)
}

// GetStats godoc
// @Summary      Usage statistics
// @Tags         Activity
// @Produce      json
// @Success      200  {object}  model.Stats
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/activities/stats [get]
func (h *ToolHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.activities.Stats(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
