package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestLimiterRejectsConcurrentRequests(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	var enteredOnce sync.Once
	limiter := NewLimiter(1)
	handler := limiter.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		enteredOnce.Do(func() { close(entered) })
		<-release
		w.WriteHeader(http.StatusOK)
	}))

	firstDone := make(chan int)
	go func() {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("POST", "/transcribe", nil))
		firstDone <- rec.Code
	}()

	<-entered // first request is now holding the slot

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/transcribe", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("Second concurrent request: status = %d, expected 429", rec.Code)
	}

	close(release)
	if code := <-firstDone; code != http.StatusOK {
		t.Errorf("First request: status = %d, expected 200", code)
	}

	// Slot is free again after completion
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/transcribe", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("Request after release: status = %d, expected 200", rec.Code)
	}
}
