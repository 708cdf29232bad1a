package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/video-transcribe/app/internal/api/middleware"
	"github.com/video-transcribe/app/internal/view"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	csrfCookieName = "xsrf_token"
	csrfFieldName  = "xsrf_token"

	// uploadBodyLimit bounds the browser upload; the backend enforces its
	// own limit on the forwarded request.
	uploadBodyLimit = 256 << 20
)

// Options toggles the request protections. Both default to enabled; the
// launcher disables them for the local demo (insecure, local use only).
type Options struct {
	DisableOriginCheck bool
	DisableXSRF        bool
}

// Server renders the upload form and maps browser posts onto the view
// operations.
type Server struct {
	view *view.View
	tmpl *template.Template
	opts Options
}

func NewServer(v *view.View, opts Options) *Server {
	tmpl := template.Must(template.ParseFS(templatesFS, "templates/*.html"))
	if opts.DisableOriginCheck {
		log.Println("WARNING: cross-origin check disabled, local demo use only")
	}
	if opts.DisableXSRF {
		log.Println("WARNING: XSRF protection disabled, local demo use only")
	}
	return &Server{view: v, tmpl: tmpl, opts: opts}
}

func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/", s.handleIndex)
	r.Post("/upload", s.handleUpload)
	r.Post("/download", s.handleDownload)

	return r
}

type pageData struct {
	State     view.State
	CSRFToken string
	Alert     string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	token := s.ensureCSRFToken(w, r)
	s.render(w, pageData{State: s.view.State(), CSRFToken: token})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !s.allowPost(w, r) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, uploadBodyLimit)

	file, header, err := r.FormFile("video")
	if err == nil {
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr == nil {
			s.view.SelectFile(header.Filename, header.Header.Get("Content-Type"), data)
		}
	}

	alert := ""
	if err := s.view.Upload(r.Context()); errors.Is(err, view.ErrNoFileSelected) {
		alert = "Please select a video file first."
	}

	s.render(w, pageData{
		State:     s.view.State(),
		CSRFToken: s.ensureCSRFToken(w, r),
		Alert:     alert,
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if !s.allowPost(w, r) {
		return
	}

	dl, err := s.view.Export(r.Context())
	if err != nil {
		alert := view.ExportFailedMessage
		if errors.Is(err, view.ErrNoTranscription) {
			alert = "No valid transcription to export."
		}
		s.render(w, pageData{
			State:     s.view.State(),
			CSRFToken: s.ensureCSRFToken(w, r),
			Alert:     alert,
		})
		return
	}

	w.Header().Set("Content-Type", dl.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dl.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(dl.Data)))
	w.Write(dl.Data)
}

func (s *Server) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "page.html", data); err != nil {
		log.Printf("[web] template error: %v", err)
	}
}

// allowPost runs the origin and XSRF checks, writing a 403 on failure.
func (s *Server) allowPost(w http.ResponseWriter, r *http.Request) bool {
	if !s.opts.DisableOriginCheck && !sameOrigin(r) {
		http.Error(w, "cross-origin request rejected", http.StatusForbidden)
		return false
	}
	if !s.opts.DisableXSRF && !s.validXSRF(r) {
		http.Error(w, "invalid or missing XSRF token", http.StatusForbidden)
		return false
	}
	return true
}

// sameOrigin accepts requests whose Origin (or, failing that, Referer) host
// matches the request host. Requests carrying neither header are allowed.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		origin = r.Header.Get("Referer")
	}
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

func (s *Server) validXSRF(r *http.Request) bool {
	cookie, err := r.Cookie(csrfCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	return r.FormValue(csrfFieldName) == cookie.Value
}

// ensureCSRFToken returns the session token, minting and setting one when
// the cookie is absent.
func (s *Server) ensureCSRFToken(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(csrfCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	token := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token
}
