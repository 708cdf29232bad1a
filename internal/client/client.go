package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/video-transcribe/app/internal/extract"
)

// DefaultBaseURL is the fixed address of the local transcription backend.
const DefaultBaseURL = "http://127.0.0.1:5000"

// TranscriptionResult is a /transcribe response. Raw keeps the body verbatim
// because /download_excel expects the whole prior response, not just the
// transcript text.
type TranscriptionResult struct {
	Transcription    string
	ExtractedInfo    extract.Info
	Err              string
	Raw              json.RawMessage
	hasTranscription bool
}

// HasTranscription reports whether the response carried a transcription
// field, i.e. is not the error variant.
func (r *TranscriptionResult) HasTranscription() bool {
	return r.hasTranscription
}

// ParseTranscriptionResult decodes a /transcribe response body, keeping the
// raw bytes alongside the parsed fields.
func ParseTranscriptionResult(body []byte) (*TranscriptionResult, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("malformed response body: %w", err)
	}

	r := &TranscriptionResult{Raw: append(json.RawMessage(nil), body...)}
	if raw, ok := fields["transcription"]; ok {
		r.hasTranscription = true
		if err := json.Unmarshal(raw, &r.Transcription); err != nil {
			return nil, fmt.Errorf("malformed transcription field: %w", err)
		}
	}
	if raw, ok := fields["extracted_info"]; ok {
		json.Unmarshal(raw, &r.ExtractedInfo)
	}
	if raw, ok := fields["error"]; ok {
		json.Unmarshal(raw, &r.Err)
	}
	return r, nil
}

// ErrorResult builds the error-variant result the view stores when an upload
// fails, with Raw filled so the object stays forwardable.
func ErrorResult(msg string) *TranscriptionResult {
	raw, _ := json.Marshal(map[string]string{"error": msg})
	return &TranscriptionResult{Err: msg, Raw: raw}
}

// Client calls the transcription backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the backend at baseURL ("" for the default).
// No timeout is set: a transcription legitimately takes minutes and the
// demo has no cancellation path.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Transcribe uploads the video bytes as multipart field "video" and returns
// the parsed response. Non-2xx statuses and unparseable bodies are errors.
func (c *Client) Transcribe(ctx context.Context, filename string, data []byte) (*TranscriptionResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("video", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("write video data: %w", err)
	}
	writer.Close()

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/transcribe", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("transcribe request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("transcribe server error (status %d): %s", resp.StatusCode, string(body))
	}

	return ParseTranscriptionResult(body)
}

// Export posts a prior transcribe response verbatim and returns the
// spreadsheet bytes. The body is returned as-is: the backend sets no
// contract for non-spreadsheet 200 responses, so none is enforced here.
func (c *Client) Export(ctx context.Context, result json.RawMessage) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/download_excel", bytes.NewReader(result))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("export request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("export server error (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}
