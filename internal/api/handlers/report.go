package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/video-transcribe/app/internal/extract"
	"github.com/video-transcribe/app/internal/report"
)

type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

type reportRequest struct {
	Transcription string       `json:"transcription"`
	ExtractedInfo extract.Info `json:"extracted_info"`
}

// DownloadExcel takes a prior /transcribe response body and returns it as a
// one-row xlsx attachment.
func (h *ReportHandler) DownloadExcel(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "No data provided", http.StatusBadRequest)
		return
	}

	data, err := report.Workbook(report.Row{
		Name:          req.ExtractedInfo.Name,
		Location:      req.ExtractedInfo.Location,
		Transcription: req.Transcription,
	})
	if err != nil {
		log.Printf("[report] workbook generation failed: %v", err)
		jsonError(w, "failed to generate report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.Write(data)
}
