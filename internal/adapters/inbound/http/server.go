// Package httpadapter exposes brand detection and audits over a JSON HTTP
// API.
package httpadapter

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/outbound/observation"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/application"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

const (
	defaultHistoryLimit = 20
	maxBodyBytes        = 4 << 20
	maxBatchSize        = 50
)

// Server serves the brandaudit API.
type Server struct {
	detect *application.DetectService
	audits *application.AuditService
	batch  *application.BatchRunner
	logger *slog.Logger
}

func New(detect *application.DetectService, audits *application.AuditService, batch *application.BatchRunner, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{detect: detect, audits: audits, batch: batch, logger: logger}
}

// Routes returns a chi.Router with every endpoint mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.healthz)
	r.Route("/api", func(r chi.Router) {
		r.Get("/brands", s.listBrands)
		r.Post("/brands/detect", s.detectBrand)
		r.Get("/brands/suggestions", s.suggestBrands)
		r.Get("/brands/{name}", s.getBrand)

		r.Post("/audits", s.createAudit)
		r.Post("/audits/batch", s.createBatch)
		r.Get("/audits", s.listAudits)
		r.Get("/audits/{id}", s.getAudit)
	})
	return r
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listBrands(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.detect.Guidelines(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

type detectRequest struct {
	URL         string `json:"url"`
	CompanyName string `json:"companyName,omitempty"`
}

func (s *Server) detectBrand(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.detect.DetectBrand(r.Context(), req.URL, req.CompanyName)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) suggestBrands(w http.ResponseWriter, r *http.Request) {
	suggestions, err := s.detect.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if suggestions == nil {
		suggestions = []domain.BrandSuggestion{}
	}
	writeJSON(w, http.StatusOK, suggestions)
}

func (s *Server) getBrand(w http.ResponseWriter, r *http.Request) {
	g, err := s.detect.Guideline(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) createAudit(w http.ResponseWriter, r *http.Request) {
	var req application.AuditRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Observation != nil {
		observation.Normalize(req.Observation)
	}

	rec, err := s.audits.Audit(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

type batchResult struct {
	Record *domain.AuditRecord `json:"record,omitempty"`
	Error  string              `json:"error,omitempty"`
}

func (s *Server) createBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []application.AuditRequest
	if err := decodeBody(w, r, &reqs); err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(reqs) == 0 || len(reqs) > maxBatchSize {
		s.writeError(w, r, badRequest(fmt.Sprintf("batch must hold 1 to %d audits", maxBatchSize)))
		return
	}
	for _, req := range reqs {
		if req.Observation != nil {
			observation.Normalize(req.Observation)
		}
	}

	items, err := s.batch.Run(r.Context(), reqs)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]batchResult, len(items))
	for i, item := range items {
		if item.Err != nil {
			out[i].Error = item.Err.Error()
			continue
		}
		out[i].Record = item.Record
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listAudits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := defaultHistoryLimit
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.writeError(w, r, badRequest("limit must be a positive integer"))
			return
		}
		limit = n
	}

	records, err := s.audits.History(r.Context(), q.Get("domain"), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if records == nil {
		records = []domain.AuditRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) getAudit(w http.ResponseWriter, r *http.Request) {
	rec, err := s.audits.GetAudit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
