package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/bryanwahyu/phishproof/internal/application/analysis"
	domain "github.com/bryanwahyu/phishproof/internal/domain/analysis"
	"github.com/bryanwahyu/phishproof/internal/middleware"
)

// Options configures the cross-cutting middleware of the router.
type Options struct {
	AllowedOrigins []string
	RateLimit      int               // requests per second per client IP, 0 = off
	APIKeys        map[string]string // protects /v1
	HealthCheckers map[string]middleware.HealthChecker
}

type Router struct {
	svc *appanalysis.Service
}

func NewRouter(svc *appanalysis.Service, opts Options) http.Handler {
	r := &Router{svc: svc}
	mux := chi.NewRouter()

	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	if opts.RateLimit > 0 {
		mux.Use(middleware.RateLimitMiddleware(opts.RateLimit*10, opts.RateLimit))
	}

	mux.Get("/health", middleware.HealthHandler(opts.HealthCheckers))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Post("/analyze", r.wrap(r.handleAnalyze))

	mux.Route("/v1", func(rt chi.Router) {
		rt.Use(middleware.APIKeyAuth(opts.APIKeys))
		rt.Get("/analyses", r.wrap(r.handleList))
		rt.Get("/analyses/{id}", r.wrap(r.handleGet))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// badRequest marks errors caused by the request itself
type badRequest struct{ error }

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			var br badRequest
			switch {
			case errors.As(err, &br), errors.Is(err, domain.ErrValidation):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, errNotFound):
				http.Error(w, "not found", http.StatusNotFound)
			case errors.Is(err, appanalysis.ErrHistoryDisabled):
				http.Error(w, err.Error(), http.StatusNotImplemented)
			case errors.Is(err, domain.ErrQuotaExceeded):
				http.Error(w, "ai quota exceeded", http.StatusTooManyRequests)
			default:
				log.Printf("handler error method=%s path=%s err=%v", req.Method, req.URL.Path, err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}
	}
}

var errNotFound = errors.New("not found")

// POST /analyze
// Body: {"text": "<message>"}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body domain.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, 1<<20)).Decode(&body); err != nil {
		return badRequest{err}
	}
	if err := middleware.ValidateText(middleware.SanitizeString(body.Text)); err != nil {
		return badRequest{err}
	}
	// classified and stored as sent; only NUL is dropped (postgres TEXT rejects it)
	text := strings.ReplaceAll(body.Text, "\x00", "")

	client := middleware.GetClientFromContext(req.Context())
	if client == "" {
		client = req.Header.Get("Origin")
	}

	res, err := r.svc.Analyze(req.Context(), appanalysis.AnalyzeCommand{Client: client, Text: text})
	if err != nil {
		middleware.IncrementAnalysesFailed()
		return err
	}
	middleware.RecordAnalysis(res.IsScam)

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(res)
}

// GET /v1/analyses?page=&page_size=
func (r *Router) handleList(w http.ResponseWriter, req *http.Request) error {
	page, _ := strconv.Atoi(req.URL.Query().Get("page"))
	size, _ := strconv.Atoi(req.URL.Query().Get("page_size"))

	list, err := r.svc.List(req.Context(), middleware.ValidatePage(page), middleware.ValidatePageSize(size))
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

// GET /v1/analyses/{id}
func (r *Router) handleGet(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateRecordID(id); err != nil {
		return badRequest{err}
	}

	rec, err := r.svc.Get(req.Context(), domain.RecordID(id))
	if err != nil {
		return err
	}
	if rec == nil {
		return errNotFound
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(rec)
}
