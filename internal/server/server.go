// Package server exposes the valuation engine as a JSON API over fasthttp.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rgehrsitz/viagerpro/internal/calculation"
	"github.com/rgehrsitz/viagerpro/internal/config"
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/rgehrsitz/viagerpro/internal/market"
	"github.com/rgehrsitz/viagerpro/internal/mortality"
	"github.com/valyala/fasthttp"
)

const (
	apiPrefix         = "/api/v1"
	departmentsPrefix = apiPrefix + "/departments/"
	maxBodySize       = 64 << 10
)

// Server routes API requests to the calculation engine
type Server struct {
	engine *calculation.CalculationEngine
	tables *mortality.Tables
	parser *config.InputParser
	logger *slog.Logger
	now    func() time.Time
}

// New creates a server over engine; a nil logger discards request logs
func New(engine *calculation.CalculationEngine, logger *slog.Logger) *Server {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	tables := engine.Tables
	if tables == nil {
		tables = mortality.Default()
	}
	return &Server{
		engine: engine,
		tables: tables,
		parser: config.NewInputParser(),
		logger: logger,
		now:    time.Now,
	}
}

// Metadata describes one valuation request
type Metadata struct {
	ValuationID   string `json:"valuation_id"`
	StartedAt     string `json:"started_at"`
	CompletedAt   string `json:"completed_at"`
	DurationMs    int64  `json:"duration_ms"`
	TablesVersion string `json:"tables_version"`
}

// ValuationResponse is the body of a successful POST /api/v1/valuations
type ValuationResponse struct {
	Metadata Metadata                `json:"metadata"`
	Result   *domain.ValuationResult `json:"result"`
	Warnings []string                `json:"warnings,omitempty"`
}

// DepartmentResponse is the body of GET /api/v1/departments/{postalCode}
type DepartmentResponse struct {
	market.DepartmentPrices
	Legend []market.LegendEntry `json:"legend"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// Handler returns the request router
func (s *Server) Handler() fasthttp.RequestHandler {
	return s.logRequests(s.route)
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &fasthttp.Server{
		Handler:            s.Handler(),
		Name:               "viagerpro",
		MaxRequestBodySize: maxBodySize,
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("api listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("api shutting down")
		if err := srv.Shutdown(); err != nil {
			return err
		}
		return <-errCh
	}
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	switch {
	case path == "/healthz":
		if !allow(ctx, fasthttp.MethodGet) {
			return
		}
		s.handleHealth(ctx)
	case path == apiPrefix+"/valuations":
		if !allow(ctx, fasthttp.MethodPost) {
			return
		}
		s.handleValuation(ctx)
	case path == apiPrefix+"/diseases":
		if !allow(ctx, fasthttp.MethodGet) {
			return
		}
		s.handleDiseases(ctx)
	case strings.HasPrefix(path, departmentsPrefix):
		if !allow(ctx, fasthttp.MethodGet) {
			return
		}
		s.handleDepartment(ctx, strings.TrimPrefix(path, departmentsPrefix))
	default:
		writeError(ctx, fasthttp.StatusNotFound, "no route for "+path)
	}
}

func allow(ctx *fasthttp.RequestCtx, method string) bool {
	if string(ctx.Method()) == method {
		return true
	}
	ctx.Response.Header.Set("Allow", method)
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
	return false
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{
		"status": "ok",
		"tables": s.tables.Version(),
	})
}

func (s *Server) handleValuation(ctx *fasthttp.RequestCtx) {
	started := s.now()

	body := ctx.PostBody()
	if len(body) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "request body is empty")
		return
	}

	deal, err := s.parser.ParseDeal(body)
	if err != nil {
		var ve *config.ValidationError
		if errors.As(err, &ve) {
			details := make([]string, len(ve.Problems))
			for i, p := range ve.Problems {
				details[i] = p.Error()
			}
			writeErrorDetails(ctx, fasthttp.StatusUnprocessableEntity, "deal failed validation", details)
			return
		}
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	result := s.engine.Calculate(deal)
	completed := s.now()

	writeJSON(ctx, fasthttp.StatusOK, ValuationResponse{
		Metadata: Metadata{
			ValuationID:   uuid.New().String(),
			StartedAt:     started.UTC().Format(time.RFC3339Nano),
			CompletedAt:   completed.UTC().Format(time.RFC3339Nano),
			DurationMs:    completed.Sub(started).Milliseconds(),
			TablesVersion: s.tables.Version(),
		},
		Result:   result,
		Warnings: config.DealWarnings(deal),
	})
}

func (s *Server) handleDiseases(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, s.tables.Diseases())
}

func (s *Server) handleDepartment(ctx *fasthttp.RequestCtx, postalCode string) {
	p, ok := market.FindDepartment(postalCode)
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, "unknown department for postal code "+postalCode)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, DepartmentResponse{
		DepartmentPrices: p,
		Legend:           market.DepartmentLegend(p),
	})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "failed to encode response")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeErrorDetails(ctx, status, message, nil)
}

func writeErrorDetails(ctx *fasthttp.RequestCtx, status int, message string, details []string) {
	data, _ := json.Marshal(ErrorResponse{Error: message, Details: details})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}
