package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/video-transcribe/app/internal/api/handlers"
	"github.com/video-transcribe/app/internal/api/middleware"
	"github.com/video-transcribe/app/internal/config"
	"github.com/video-transcribe/app/internal/transcribe"
)

// reportBodyLimit bounds the JSON body of /download_excel. Transcripts of a
// two-minute video are far below this.
const reportBodyLimit = 1 << 20 // 1MB

func NewRouter(cfg *config.Config, svc *transcribe.Service) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(middleware.CORSHandler(cfg.CORSOrigins)))

	// Handlers
	transcribeHandler := handlers.NewTranscribeHandler(svc, cfg.MaxUploadBytes)
	reportHandler := handlers.NewReportHandler()
	healthHandler := handlers.NewHealthHandler(svc.EngineName(), cfg.MaxVideoSeconds)

	// One transcription at a time; the engine is not reentrant-friendly
	transcribeLimiter := middleware.NewLimiter(1)

	r.Get("/health", healthHandler.Health)
	r.With(transcribeLimiter.Handler).Post("/transcribe", transcribeHandler.Transcribe)
	r.With(middleware.MaxBodySize(reportBodyLimit)).Post("/download_excel", reportHandler.DownloadExcel)

	return r
}
