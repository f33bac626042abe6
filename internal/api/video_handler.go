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

// VideoHandler serves the video generation lifecycle.
type VideoHandler struct {
	service interfaces.VideoService
}

func NewVideoHandler(svc interfaces.VideoService) *VideoHandler {
	return &VideoHandler{service: svc}
}

// StartGeneration godoc
// @Summary      Start a video generation
// @Description  Records a pending video and queues it for the generation worker.
// @Description  If the job cannot be queued the stored video is marked failed and 500 is returned.
// @Tags         Videos
// @Accept       json
// @Produce      json
// @Param        video  body      service.StartVideoRequest  true  "Prompt and optional first frame"
// @Success      202    {object}  model.Video
// @Failure      400    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /v1/videos [post]
func (h *VideoHandler) StartGeneration(w http.ResponseWriter, r *http.Request) {
	var req service.StartVideoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	video, err := h.service.StartGeneration(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusAccepted, video)
}

// GetStatus godoc
// @Summary      Get a video's status
// @Tags         Videos
// @Produce      json
// @Param        videoID  path      int  true  "Video ID"
// @Success      200      {object}  model.Video
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /v1/videos/{videoID} [get]
func (h *VideoHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	videoID, err := videoIDParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	video, err := h.service.GetStatus(r.Context(), videoID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, video)
}

// UpdateStatus godoc
// @Summary      Update a video's status
// @Description  Partial update, normally called by the generation worker. Transitions are not validated.
// @Tags         Videos
// @Accept       json
// @Produce      json
// @Param        videoID  path      int                         true  "Video ID"
// @Param        update   body      service.UpdateVideoRequest  true  "Fields to change"
// @Success      200      {object}  model.Video
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /v1/videos/{videoID} [patch]
func (h *VideoHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	videoID, err := videoIDParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	var req service.UpdateVideoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	video, err := h.service.UpdateStatus(r.Context(), videoID, &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, video)
}

func videoIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "videoID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid video id %q", app_errors.ErrValidation, raw)
	}
	return id, nil
}
