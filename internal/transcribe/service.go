package transcribe

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/video-transcribe/app/internal/media"
)

// ErrNoEngine is returned when no transcription backend is configured.
var ErrNoEngine = errors.New("no transcription engine configured (set WHISPER_URL or OPENAI_API_KEY)")

// Service runs the full video-to-transcript pipeline: probe, audio
// extraction, then transcription through the configured engine.
type Service struct {
	engine          Engine
	language        string
	model           string
	maxVideoSeconds int
}

// NewService selects an engine from the configured endpoints. The whisper.cpp
// server wins over OpenAI when both are configured (local is cheaper).
func NewService(whisperURL, openAIKey, model, language string, maxVideoSeconds int) *Service {
	s := &Service{
		language:        language,
		model:           model,
		maxVideoSeconds: maxVideoSeconds,
	}

	switch {
	case whisperURL != "":
		s.engine = NewWhisperCppClient(whisperURL)
		log.Printf("[whisper] using whisper.cpp engine at %s", whisperURL)
	case openAIKey != "":
		s.engine = NewOpenAIClient(openAIKey, model)
		log.Printf("[whisper] using OpenAI Whisper engine")
	default:
		log.Printf("[whisper] WARNING: no engine configured, transcription requests will fail")
	}

	return s
}

// EngineName returns the active engine's name, or "none".
func (s *Service) EngineName() string {
	if s.engine == nil {
		return "none"
	}
	return s.engine.Name()
}

// TranscribeVideo probes the uploaded video, extracts its audio track and
// returns the transcript text.
func (s *Service) TranscribeVideo(ctx context.Context, videoPath string) (string, error) {
	if s.engine == nil {
		return "", ErrNoEngine
	}

	info, err := media.Probe(videoPath)
	if err != nil {
		return "", fmt.Errorf("probe video: %w", err)
	}
	if !info.HasAudio {
		return "", errors.New("no audio stream found")
	}
	if s.maxVideoSeconds > 0 && info.Duration > float64(s.maxVideoSeconds) {
		return "", fmt.Errorf("video exceeds %d second limit", s.maxVideoSeconds)
	}

	audioPath, err := media.ExtractAudio(ctx, videoPath)
	if err != nil {
		return "", fmt.Errorf("extract audio: %w", err)
	}
	defer os.Remove(audioPath)

	result, err := s.engine.Transcribe(ctx, Request{
		AudioPath: audioPath,
		Language:  s.language,
		Model:     s.model,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	return result.Text, nil
}
