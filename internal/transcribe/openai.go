package transcribe

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient uses the OpenAI Whisper API
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.Whisper1
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIClient) Name() string {
	return "openai"
}

func (c *OpenAIClient) Transcribe(ctx context.Context, req Request) (*Result, error) {
	audioReq := openai.AudioRequest{
		Model:    c.model,
		FilePath: req.AudioPath,
		Format:   openai.AudioResponseFormatJSON,
	}
	if req.Language != "" && req.Language != "auto" {
		audioReq.Language = req.Language
	}

	log.Printf("[whisper-openai] sending request to OpenAI API (model %s)", c.model)

	resp, err := c.client.CreateTranscription(ctx, audioReq)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API request: %w", err)
	}

	return &Result{
		Text:     strings.TrimSpace(resp.Text),
		Language: req.Language,
	}, nil
}
