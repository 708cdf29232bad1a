package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/video-transcribe/app/internal/api"
	"github.com/video-transcribe/app/internal/config"
	"github.com/video-transcribe/app/internal/media"
	"github.com/video-transcribe/app/internal/transcribe"
)

func main() {
	cfg := config.Load()

	if !media.CheckFFmpeg() {
		log.Println("WARNING: ffmpeg not found on PATH, transcription requests will fail")
	}

	svc := transcribe.NewService(cfg.WhisperURL, cfg.OpenAIKey, cfg.WhisperModel, cfg.Language, cfg.MaxVideoSeconds)

	router := api.NewRouter(cfg, svc)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Starting transcription server on %s", addr)
	log.Printf("Engine: %s, max video duration: %ds", svc.EngineName(), cfg.MaxVideoSeconds)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		os.Exit(0)
	}()

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
