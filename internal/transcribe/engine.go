package transcribe

import "context"

// Request is the input for a transcription
type Request struct {
	AudioPath string // absolute path to a WAV 16kHz mono file
	Language  string // "auto", "en", etc.
	Model     string // model name (for OpenAI: "whisper-1")
}

// Result is the output of a transcription
type Result struct {
	Text     string // plain transcript text
	Language string // detected language
}

// Engine is the common interface for all whisper engines
type Engine interface {
	// Transcribe converts prepared audio to text
	Transcribe(ctx context.Context, req Request) (*Result, error)
	// Name returns the engine name
	Name() string
}
