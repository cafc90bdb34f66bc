// Package api exposes the generators over HTTP with a JSON envelope.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/zarlcorp/zecid/internal/cedula"
	"github.com/zarlcorp/zecid/internal/identity"
	"github.com/zarlcorp/zecid/internal/metrics"
	"github.com/zarlcorp/zecid/internal/refdata"
)

const (
	defaultBodyQuantity  = 10
	defaultQuickQuantity = 5

	maxBodyBytes = 1 << 20
)

// Handler serves the /api/generator routes.
type Handler struct {
	gen     *identity.Generator
	logger  *slog.Logger
	metrics *metrics.Metrics
	version string
	now     func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithVersion sets the version reported by the health check.
func WithVersion(v string) Option {
	return func(h *Handler) { h.version = v }
}

// WithClock sets the clock used for response timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// New creates a Handler.
func New(gen *identity.Generator, logger *slog.Logger, m *metrics.Metrics, opts ...Option) *Handler {
	h := &Handler{
		gen:     gen,
		logger:  logger,
		metrics: m,
		version: "dev",
		now:     time.Now,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Register registers the generator routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/generator", func(r chi.Router) {
		r.Post("/people", h.handlePeople)
		r.Post("/companies", h.handleCompanies)
		r.Get("/provinces", h.handleProvinces)
		r.Get("/quick", h.handleQuick)
		r.Get("/health", h.handleHealth)
		r.Get("/validate/{number}", h.handleValidate)
	})
}

type peopleRequest struct {
	Quantity       *int               `json:"quantity"`
	Province       string             `json:"province"`
	IncludeRUC     bool               `json:"include_ruc"`
	IncludeCompany bool               `json:"include_company"`
	AgeRange       *identity.AgeRange `json:"age_range"`
}

type companiesRequest struct {
	Quantity *int   `json:"quantity"`
	Province string `json:"province"`
}

type validation struct {
	Number string      `json:"number"`
	Kind   cedula.Kind `json:"kind"`
	Valid  bool        `json:"valid"`
}

type health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func (h *Handler) handlePeople(w http.ResponseWriter, r *http.Request) {
	var req peopleRequest
	if !h.decode(w, r, &req) {
		return
	}

	opts := identity.Options{
		Quantity:       quantity(req.Quantity, defaultBodyQuantity),
		Province:       req.Province,
		IncludeRUC:     req.IncludeRUC,
		IncludeCompany: req.IncludeCompany,
	}
	if req.AgeRange != nil {
		opts.AgeRange = *req.AgeRange
	}

	h.people(w, r, opts)
}

func (h *Handler) handleQuick(w http.ResponseWriter, r *http.Request) {
	n := defaultQuickQuantity
	if q := r.URL.Query().Get("quantity"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "quantity must be an integer")
			return
		}
		n = v
	}

	h.people(w, r, identity.Options{
		Quantity: n,
		Province: r.URL.Query().Get("province"),
	})
}

func (h *Handler) people(w http.ResponseWriter, r *http.Request, opts identity.Options) {
	start := time.Now()
	people, err := h.gen.People(opts)
	h.metrics.Observe(metrics.KindPeople, len(people), time.Since(start), err)
	if err != nil {
		h.generationError(w, r, err)
		return
	}
	h.writeList(w, people, len(people))
}

func (h *Handler) handleCompanies(w http.ResponseWriter, r *http.Request) {
	var req companiesRequest
	if !h.decode(w, r, &req) {
		return
	}

	opts := identity.Options{
		Quantity: quantity(req.Quantity, defaultBodyQuantity),
		Province: req.Province,
	}

	start := time.Now()
	companies, err := h.gen.Companies(opts)
	h.metrics.Observe(metrics.KindCompanies, len(companies), time.Since(start), err)
	if err != nil {
		h.generationError(w, r, err)
		return
	}
	h.writeList(w, companies, len(companies))
}

func (h *Handler) handleProvinces(w http.ResponseWriter, _ *http.Request) {
	provinces := h.gen.Catalog().Provinces
	h.writeList(w, provinces, len(provinces))
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeData(w, health{Status: "ok", Service: "zecid", Version: h.version})
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	kind := cedula.Classify(number)
	h.writeData(w, validation{Number: number, Kind: kind, Valid: kind != cedula.KindInvalid})
}

// decode reads an optional JSON body into v. An empty body keeps the zero value.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	h.logger.WarnContext(r.Context(), "invalid request body",
		"request_id", middleware.GetReqID(r.Context()),
		"error", err.Error(),
	)
	h.writeError(w, http.StatusBadRequest, "invalid request body")
	return false
}

func (h *Handler) generationError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	if errors.Is(err, refdata.ErrUnknownProvince) || errors.Is(err, identity.ErrInvalidAgeRange) {
		h.logger.WarnContext(ctx, "rejected generation request",
			"request_id", middleware.GetReqID(ctx),
			"error", err.Error(),
		)
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.ErrorContext(ctx, "generation failed",
		"request_id", middleware.GetReqID(ctx),
		"error", err.Error(),
	)
	h.writeError(w, http.StatusInternalServerError, "generation failed")
}

func quantity(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
