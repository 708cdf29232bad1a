package view

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/video-transcribe/app/internal/client"
)

// fakeAPI counts calls and delegates to configurable funcs.
type fakeAPI struct {
	transcribeCalls int
	exportCalls     int
	transcribeFn    func(filename string, data []byte) (*client.TranscriptionResult, error)
	exportFn        func(result json.RawMessage) ([]byte, error)
}

func (f *fakeAPI) Transcribe(ctx context.Context, filename string, data []byte) (*client.TranscriptionResult, error) {
	f.transcribeCalls++
	if f.transcribeFn == nil {
		return client.ParseTranscriptionResult([]byte(`{"transcription":"ok"}`))
	}
	return f.transcribeFn(filename, data)
}

func (f *fakeAPI) Export(ctx context.Context, result json.RawMessage) ([]byte, error) {
	f.exportCalls++
	if f.exportFn == nil {
		return []byte("xlsx"), nil
	}
	return f.exportFn(result)
}

func successResult(t *testing.T, body string) *client.TranscriptionResult {
	t.Helper()
	r, err := client.ParseTranscriptionResult([]byte(body))
	if err != nil {
		t.Fatalf("Failed to build result: %v", err)
	}
	return r
}

func TestUploadWithoutFile(t *testing.T) {
	api := &fakeAPI{}
	v := New(api)

	err := v.Upload(context.Background())
	if !errors.Is(err, ErrNoFileSelected) {
		t.Fatalf("Upload error = %v, expected ErrNoFileSelected", err)
	}
	if api.transcribeCalls != 0 {
		t.Error("Upload without a file issued a network call")
	}
	if state := v.State(); state.Result != nil || state.Uploading {
		t.Errorf("State changed: %+v", state)
	}
}

func TestUploadSuccess(t *testing.T) {
	api := &fakeAPI{
		transcribeFn: func(filename string, data []byte) (*client.TranscriptionResult, error) {
			if filename != "clip.mp4" {
				t.Errorf("filename = %q", filename)
			}
			if string(data) != "bytes" {
				t.Errorf("data = %q", data)
			}
			return successResult(t, `{"transcription":"hello"}`), nil
		},
	}
	v := New(api)
	v.SelectFile("clip.mp4", "video/mp4", []byte("bytes"))

	if err := v.Upload(context.Background()); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	state := v.State()
	if state.Result == nil || state.Result.Transcription != "hello" {
		t.Errorf("Result = %+v, expected transcription %q", state.Result, "hello")
	}
	if state.Uploading {
		t.Error("Uploading is still true after completion")
	}
}

func TestUploadFailureCollapsesToGenericError(t *testing.T) {
	api := &fakeAPI{
		transcribeFn: func(string, []byte) (*client.TranscriptionResult, error) {
			return nil, errors.New("connection refused")
		},
	}
	v := New(api)
	v.SelectFile("clip.mp4", "video/mp4", []byte("bytes"))

	if err := v.Upload(context.Background()); err != nil {
		t.Fatalf("Upload returned %v, transport failures should be absorbed", err)
	}

	state := v.State()
	if state.Result == nil || state.Result.Err != UploadFailedMessage {
		t.Errorf("Result = %+v, expected the generic failure message", state.Result)
	}
	if state.Result.HasTranscription() {
		t.Error("Failure result claims to have a transcription")
	}
	if string(state.Result.Raw) != `{"error":"Failed to process video."}` {
		t.Errorf("Raw = %s", state.Result.Raw)
	}
	if state.Uploading {
		t.Error("Uploading is still true after failure")
	}
}

func TestRetryClearsStaleResultBeforeResolving(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	api := &fakeAPI{
		transcribeFn: func(string, []byte) (*client.TranscriptionResult, error) {
			close(entered)
			<-release
			return nil, errors.New("slow failure")
		},
	}
	v := New(api)
	v.SelectFile("clip.mp4", "video/mp4", []byte("bytes"))

	// Seed a prior error result
	v.mu.Lock()
	v.state.Result = client.ErrorResult(UploadFailedMessage)
	v.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		v.Upload(context.Background())
	}()

	<-entered // the call is in flight
	state := v.State()
	if state.Result != nil {
		t.Error("Stale result still visible while the new upload is in flight")
	}
	if !state.Uploading {
		t.Error("Uploading = false while the call is in flight")
	}

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Upload did not complete")
	}
}

func TestExportWithoutTranscription(t *testing.T) {
	api := &fakeAPI{}
	v := New(api)

	// No result at all
	if _, err := v.Export(context.Background()); !errors.Is(err, ErrNoTranscription) {
		t.Fatalf("Export error = %v, expected ErrNoTranscription", err)
	}

	// Error-variant result
	v.mu.Lock()
	v.state.Result = client.ErrorResult(UploadFailedMessage)
	v.mu.Unlock()

	if _, err := v.Export(context.Background()); !errors.Is(err, ErrNoTranscription) {
		t.Fatalf("Export error = %v, expected ErrNoTranscription", err)
	}
	if api.exportCalls != 0 {
		t.Error("Export issued a network call despite the precondition failing")
	}
}

func TestExportSuccess(t *testing.T) {
	raw := `{"transcription":"hello","extracted_info":{"name":"John","location":"Paris"}}`
	api := &fakeAPI{
		exportFn: func(result json.RawMessage) ([]byte, error) {
			if string(result) != raw {
				t.Errorf("Export body = %s, expected the prior response verbatim", result)
			}
			return []byte("spreadsheet bytes"), nil
		},
	}
	v := New(api)
	v.mu.Lock()
	v.state.Result = successResult(t, raw)
	v.mu.Unlock()

	dl, err := v.Export(context.Background())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if dl.Filename != "transcription_data.xlsx" {
		t.Errorf("Filename = %q, expected transcription_data.xlsx", dl.Filename)
	}
	if string(dl.Data) != "spreadsheet bytes" {
		t.Errorf("Data = %q", dl.Data)
	}

	state := v.State()
	if state.Result == nil || string(state.Result.Raw) != raw {
		t.Error("Result changed after a successful export")
	}
	if state.Downloading {
		t.Error("Downloading is still true after completion")
	}
}

func TestExportFailureLeavesResultUntouched(t *testing.T) {
	raw := `{"transcription":"hello"}`
	api := &fakeAPI{
		exportFn: func(json.RawMessage) ([]byte, error) {
			return nil, errors.New("status 500")
		},
	}
	v := New(api)
	v.mu.Lock()
	v.state.Result = successResult(t, raw)
	v.mu.Unlock()

	_, err := v.Export(context.Background())
	if !errors.Is(err, ErrExportFailed) {
		t.Fatalf("Export error = %v, expected ErrExportFailed", err)
	}

	state := v.State()
	if state.Result == nil || string(state.Result.Raw) != raw {
		t.Error("Result changed after a failed export")
	}
	if state.Downloading {
		t.Error("Downloading is still true after failure")
	}
}

func TestFlagsResetOnAllPaths(t *testing.T) {
	// Upload success and failure both reset uploading; export success and
	// failure both reset downloading. Success paths are covered above, so
	// this drives the failure paths once more end to end.
	api := &fakeAPI{
		transcribeFn: func(string, []byte) (*client.TranscriptionResult, error) {
			return nil, errors.New("network down")
		},
		exportFn: func(json.RawMessage) ([]byte, error) {
			return nil, errors.New("network down")
		},
	}
	v := New(api)
	v.SelectFile("clip.mp4", "video/mp4", []byte("bytes"))

	v.Upload(context.Background())
	if state := v.State(); state.Uploading || state.Downloading {
		t.Errorf("Flags not reset after failed upload: %+v", state)
	}

	v.mu.Lock()
	v.state.Result = successResult(t, `{"transcription":"hello"}`)
	v.mu.Unlock()

	v.Export(context.Background())
	if state := v.State(); state.Uploading || state.Downloading {
		t.Errorf("Flags not reset after failed export: %+v", state)
	}
}
