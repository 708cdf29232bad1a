package middleware

import "net/http"

// Limiter bounds how many requests run through it at once. Transcription
// holds the whisper engine for the whole request, so the transcribe route
// runs with a single slot and concurrent uploads get an immediate 429
// instead of queueing behind a long job.
type Limiter struct {
	slots chan struct{}
}

// NewLimiter creates a limiter with n concurrent slots.
func NewLimiter(n int) *Limiter {
	return &Limiter{slots: make(chan struct{}, n)}
}

// Handler returns an http.Handler middleware that enforces the limit.
func (l *Limiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case l.slots <- struct{}{}:
			defer func() { <-l.slots }()
			next.ServeHTTP(w, r)
		default:
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "60")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"a transcription is already in progress, try again later"}`))
		}
	})
}
