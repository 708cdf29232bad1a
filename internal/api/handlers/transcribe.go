package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/video-transcribe/app/internal/extract"
	"github.com/video-transcribe/app/internal/media"
)

// VideoTranscriber converts an uploaded video file to transcript text.
type VideoTranscriber interface {
	TranscribeVideo(ctx context.Context, videoPath string) (string, error)
}

type TranscribeHandler struct {
	transcriber VideoTranscriber
	maxUpload   int64
}

func NewTranscribeHandler(transcriber VideoTranscriber, maxUpload int64) *TranscribeHandler {
	return &TranscribeHandler{transcriber: transcriber, maxUpload: maxUpload}
}

// TranscriptionResponse is the success body of POST /transcribe.
type TranscriptionResponse struct {
	Transcription string       `json:"transcription"`
	ExtractedInfo extract.Info `json:"extracted_info"`
}

// Transcribe accepts a multipart video upload (field "video"), runs it
// through the transcription pipeline and returns the transcript plus the
// extracted speaker info.
func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	file, header, err := r.FormFile("video")
	if err != nil {
		jsonError(w, "No video file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !media.IsSupportedVideo(header.Filename) {
		jsonError(w, "Invalid file type", http.StatusBadRequest)
		return
	}

	videoPath, err := saveUpload(file, header.Filename)
	if err != nil {
		log.Printf("[transcribe] failed to save upload: %v", err)
		jsonError(w, "failed to save upload", http.StatusInternalServerError)
		return
	}
	defer os.Remove(videoPath)

	text, err := h.transcriber.TranscribeVideo(r.Context(), videoPath)
	if err != nil {
		log.Printf("[transcribe] processing error for %s: %v", header.Filename, err)
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(w, TranscriptionResponse{
		Transcription: text,
		ExtractedInfo: extract.FromTranscript(text),
	}, http.StatusOK)
}

// saveUpload copies the uploaded stream to a temp file, keeping the original
// extension so ffmpeg can sniff the container format.
func saveUpload(src io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func jsonResponse(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
