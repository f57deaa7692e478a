package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mwhite7112/woodpantry-cookbook/internal/cookbook"
	"github.com/mwhite7112/woodpantry-cookbook/internal/logging"
	"github.com/mwhite7112/woodpantry-cookbook/internal/metrics"
	"github.com/mwhite7112/woodpantry-cookbook/internal/service"
	"golang.org/x/time/rate"
)

// Option configures NewRouter.
type Option func(*routerOptions)

type routerOptions struct {
	limiter *rate.Limiter
}

// WithRateLimit limits the API routes to limit requests per second with the
// given burst. A limit of zero or less disables rate limiting.
func WithRateLimit(limit float64, burst int) Option {
	return func(o *routerOptions) {
		if limit <= 0 {
			o.limiter = nil
			return
		}
		o.limiter = rate.NewLimiter(rate.Limit(limit), burst)
	}
}

// NewRouter wires up all routes with the provided Service.
func NewRouter(svc *service.Service, opts ...Option) http.Handler {
	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()
	r.Use(logging.Middleware)
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		if o.limiter != nil {
			r.Use(rateLimit(o.limiter))
		}

		r.Post("/parse", handleParse)
		r.Post("/entry", handleCreateEntry(svc))
		r.Get("/summary", handleSummary(svc))
		r.Get("/entries", handleListEntries(svc))
		r.Get("/entries/{name}", handleGetEntry(svc))
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- parse ---

type parseRequest struct {
	Input string `json:"input"`
}

type parseResponse struct {
	Msg string `json:"msg"`
}

func handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	name, err := service.Normalize(req.Input)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	jsonOK(w, parseResponse{Msg: name})
}

// --- entry ---

func handleCreateEntry(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req service.EntryDraft
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if _, err := svc.AddEntry(r.Context(), req); err != nil {
			var ce *cookbook.Error
			if errors.As(err, &ce) && (errors.Is(err, cookbook.ErrInvalidShape) || errors.Is(err, cookbook.ErrDuplicateName)) {
				jsonError(w, ce.Msg, http.StatusBadRequest)
				return
			}
			serverError(w, r, "failed to add entry", err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// --- summary ---

func handleSummary(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			jsonError(w, "Recipe not found", http.StatusBadRequest)
			return
		}

		sum, err := svc.Summarize(r.Context(), name)
		if err != nil {
			var ce *cookbook.Error
			switch {
			case errors.Is(err, cookbook.ErrNotFound):
				jsonErrorBody(w, http.StatusBadRequest, withSuggestion(r, svc, "Recipe not found", name))
			case errors.Is(err, cookbook.ErrMissingDependency) && errors.As(err, &ce):
				jsonErrorBody(w, http.StatusBadRequest, withSuggestion(r, svc, ce.Msg, ce.Ref))
			case (errors.Is(err, cookbook.ErrNotARecipe) ||
				errors.Is(err, cookbook.ErrCyclicDependency) ||
				errors.Is(err, cookbook.ErrOutOfRange)) && errors.As(err, &ce):
				jsonError(w, ce.Msg, http.StatusBadRequest)
			default:
				serverError(w, r, "failed to summarize recipe", err)
			}
			return
		}
		jsonOK(w, sum)
	}
}

// --- entries ---

func handleListEntries(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.Entries(r.Context())
		if err != nil {
			serverError(w, r, "failed to list entries", err)
			return
		}
		jsonOK(w, entries)
	}
}

func handleGetEntry(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		entry, err := svc.Entry(r.Context(), name)
		if err != nil {
			if errors.Is(err, cookbook.ErrNotFound) {
				jsonErrorBody(w, http.StatusNotFound, withSuggestion(r, svc, "Entry not found", name))
				return
			}
			serverError(w, r, "failed to get entry", err)
			return
		}
		jsonOK(w, entry)
	}
}

// --- middleware ---

func rateLimit(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				metrics.RateLimitRejects.Inc()
				w.Header().Set("Retry-After", "1")
				jsonError(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// --- helpers ---

type errorResponse struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

func withSuggestion(r *http.Request, svc *service.Service, msg, name string) errorResponse {
	resp := errorResponse{Error: msg}
	if s, ok := svc.Suggest(r.Context(), name); ok {
		resp.Suggestion = s
	}
	return resp
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	jsonErrorBody(w, status, errorResponse{Error: msg})
}

func serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg,
		"status", http.StatusInternalServerError,
		"error", err,
		"requestID", logging.RequestID(r.Context()),
		"path", r.URL.Path,
	)
	jsonError(w, msg, http.StatusInternalServerError)
}

func jsonErrorBody(w http.ResponseWriter, status int, body errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}
