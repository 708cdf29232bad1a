package view

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/video-transcribe/app/internal/client"
	"github.com/video-transcribe/app/internal/report"
)

// User input errors. Both are raised before any network call.
var (
	ErrNoFileSelected  = errors.New("no video file selected")
	ErrNoTranscription = errors.New("no valid transcription to export")
)

// ErrExportFailed wraps any export transport or server failure; the view
// surfaces only ExportFailedMessage for it.
var ErrExportFailed = errors.New("export failed")

// Fixed user-facing failure messages. Failure detail goes to the log only.
const (
	UploadFailedMessage = "Failed to process video."
	ExportFailedMessage = "Failed to generate Excel file."
)

// API is the backend surface the view talks to. *client.Client implements it.
type API interface {
	Transcribe(ctx context.Context, filename string, data []byte) (*client.TranscriptionResult, error)
	Export(ctx context.Context, result json.RawMessage) ([]byte, error)
}

// SelectedFile is the file chosen in the picker, replaced wholesale on each
// selection.
type SelectedFile struct {
	Name      string
	MediaType string
	Data      []byte
}

// State is the whole UI state: the selected file, the last response, and the
// two in-flight flags. Uploading and downloading are never both true.
type State struct {
	SelectedFile *SelectedFile
	Result       *client.TranscriptionResult
	Uploading    bool
	Downloading  bool
}

// Download is a completed export, ready to hand to the browser.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

// View drives the upload-transcribe-download interaction. It is a single
// actor: operations run to completion and only the completed operation
// mutates state, so a mutex around the transitions is all the coordination
// needed.
type View struct {
	mu    sync.Mutex
	api   API
	state State
}

func New(api API) *View {
	return &View{api: api}
}

// State returns a snapshot of the current view state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// SelectFile replaces the current file selection.
func (v *View) SelectFile(name, mediaType string, data []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.SelectedFile = &SelectedFile{Name: name, MediaType: mediaType, Data: data}
}

// Upload sends the selected file to the transcription endpoint. It returns
// ErrNoFileSelected before touching the network when nothing is selected.
// Transport and server failures are absorbed into the state as the generic
// error result; the prior result is cleared before the call resolves so a
// retry never shows a stale response.
func (v *View) Upload(ctx context.Context) error {
	v.mu.Lock()
	if v.state.SelectedFile == nil {
		v.mu.Unlock()
		return ErrNoFileSelected
	}
	file := *v.state.SelectedFile
	v.state.Uploading = true
	v.state.Result = nil
	v.mu.Unlock()

	result, err := v.api.Transcribe(ctx, file.Name, file.Data)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Uploading = false
	if err != nil {
		log.Printf("[view] transcribe failed: %v", err)
		v.state.Result = client.ErrorResult(UploadFailedMessage)
		return nil
	}
	v.state.Result = result
	return nil
}

// Export posts the prior transcribe response to the export endpoint and
// returns the spreadsheet as a Download. It returns ErrNoTranscription
// before touching the network when there is no successful result to export.
// Failures return ErrExportFailed and leave the result untouched.
func (v *View) Export(ctx context.Context) (*Download, error) {
	v.mu.Lock()
	result := v.state.Result
	if result == nil || !result.HasTranscription() {
		v.mu.Unlock()
		return nil, ErrNoTranscription
	}
	v.state.Downloading = true
	v.mu.Unlock()

	data, err := v.api.Export(ctx, result.Raw)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Downloading = false
	if err != nil {
		log.Printf("[view] export failed: %v", err)
		return nil, ErrExportFailed
	}

	return &Download{
		Filename:    report.FileName,
		ContentType: report.ContentType,
		Data:        data,
	}, nil
}
