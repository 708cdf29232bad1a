package handlers

import (
	"net/http"

	"github.com/video-transcribe/app/internal/media"
)

type HealthHandler struct {
	engineName      string
	maxVideoSeconds int
}

func NewHealthHandler(engineName string, maxVideoSeconds int) *HealthHandler {
	return &HealthHandler{engineName: engineName, maxVideoSeconds: maxVideoSeconds}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]interface{}{
		"status":           "healthy",
		"engine":           h.engineName,
		"ffmpeg_available": media.CheckFFmpeg(),
		"max_duration":     h.maxVideoSeconds,
	}, http.StatusOK)
}
