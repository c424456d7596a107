package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/assistant"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/letter"
	"github.com/ojhahemant/nhs-triage-app/pkg/usecase"
	"github.com/ojhahemant/nhs-triage-app/pkg/utils/errutil"
	"github.com/ojhahemant/nhs-triage-app/pkg/utils/logging"
	"github.com/ojhahemant/nhs-triage-app/pkg/utils/safe"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/assessments", func(r chi.Router) {
			r.Post("/", s.createAssessment)
			r.Post("/bulk", s.bulkCreateAssessments)
			r.Get("/", s.listAssessments)
			r.Get("/{id}", s.getAssessment)
		})

		r.Get("/models", s.listModels)

		r.Route("/letters", func(r chi.Router) {
			r.Post("/", s.generateLetter)
			r.Post("/preview", s.previewLetter)
			r.Get("/templates", s.listLetterTemplates)
		})

		r.Get("/dashboard", s.getDashboard)
		r.Post("/assistant", s.askAssistant)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

// errBadRequest marks malformed request payloads
var errBadRequest = goerr.New("bad request")

// respondError maps domain failures onto HTTP status codes
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrAssessmentNotFound),
		errors.Is(err, letter.ErrTemplateNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, model.ErrEmptyDescription),
		errors.Is(err, usecase.ErrEmptyBulkRequest),
		errors.Is(err, usecase.ErrBulkRequestTooLarge),
		errors.Is(err, letter.ErrMissingPatient),
		errors.Is(err, assistant.ErrEmptyQuestion):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrTriageUnavailable),
		errors.Is(err, usecase.ErrLettersUnavailable),
		errors.Is(err, usecase.ErrAssistantUnavailable):
		status = http.StatusServiceUnavailable
	}

	errutil.HandleHTTP(r.Context(), w, err, status)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(err, "invalid request body")
	}
	return nil
}
