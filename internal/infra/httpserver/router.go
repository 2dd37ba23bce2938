package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/checkmycar/checkmycar/internal/application/analysis"
	domain "github.com/checkmycar/checkmycar/internal/domain/analysis"
	"github.com/checkmycar/checkmycar/internal/middleware"
)

type Router struct {
	analyzeSvc *appanalysis.Service
}

// NewRouter wires the analyze endpoint plus health/metrics. allowedOrigins
// is for the browser UI; empty means any origin.
func NewRouter(analyzeSvc *appanalysis.Service, provider string, allowedOrigins []string) http.Handler {
	r := &Router{analyzeSvc: analyzeSvc}
	mux := chi.NewRouter()

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)

	// Wrong verb on a known route answers with the same JSON error shape
	// as everything else.
	mux.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method Not Allowed"})
	})

	mux.Get("/health", middleware.HealthHandler(provider, analyzeSvc.Configured()))
	mux.Handle("/metrics", middleware.MetricsHandler())

	mux.Post("/api/analyze", r.wrap(r.handleAnalyze))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap converts handler errors into JSON error responses. The gateway never
// lets a failure propagate unhandled: bad input is a 400, everything else
// surfaces as a 500 with the stringified error.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, domain.ErrEmptyImage) {
				status = http.StatusBadRequest
			}
			writeJSON(w, status, map[string]string{"error": err.Error()})
		}
	}
}

// POST /api/analyze
// Body: {"imageBase64": "<base64 JPEG payload>"}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		ImageBase64 string `json:"imageBase64"`
	}
	// A malformed body reads the same as a missing image: the caller must
	// resubmit either way.
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return domain.ErrEmptyImage
	}

	res, err := r.analyzeSvc.Analyze(req.Context(), body.ImageBase64)
	if err != nil {
		return err
	}

	middleware.CountAnalysis(string(res.Source))
	writeJSON(w, http.StatusOK, res)
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
