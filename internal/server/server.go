// Package server implements the HTTP and JSON-RPC surface of the tunespace
// sampling service: normalizing loosely typed grid descriptions and drawing
// reproducible samples from them.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/tunespace/tunespace/internal/config"
	"github.com/tunespace/tunespace/space"
	"github.com/tunespace/tunespace/space/transform"
)

// Server exposes grid normalization and sampling over HTTP.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
}

// New creates a server with the given config and logger.
func New(cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// RegisterRoutes mounts the API routes on r.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sample", s.handleSample)
		r.Post("/normalize", s.handleNormalize)
	})

	// JSON-RPC 2.0 endpoint
	r.Post("/rpc", s.handleJSONRPC)
}

// sampleRequest is the body of POST /api/v1/sample and the params of the
// space.sample RPC method.
type sampleRequest struct {
	Grid    json.RawMessage `json:"grid"`
	NPoints int             `json:"n_points"`
	Seed    *uint64         `json:"seed"`
}

// normalizeRequest is the body of POST /api/v1/normalize and the params of
// the space.normalize RPC method.
type normalizeRequest struct {
	Grid json.RawMessage `json:"grid"`
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req sampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, "sample", http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	result, err := s.sample(req)
	if err != nil {
		s.respondError(w, "sample", http.StatusBadRequest, err)
		return
	}

	requestSeconds.WithLabelValues("sample").Observe(time.Since(started).Seconds())
	s.respondJSON(w, "sample", http.StatusOK, result)
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req normalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, "normalize", http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	result, err := s.normalize(req)
	if err != nil {
		s.respondError(w, "normalize", http.StatusBadRequest, err)
		return
	}

	requestSeconds.WithLabelValues("normalize").Observe(time.Since(started).Seconds())
	s.respondJSON(w, "normalize", http.StatusOK, result)
}

// sample draws the requested points. An omitted seed is derived from the
// clock; reproducibility is only promised when the caller supplies one.
func (s *Server) sample(req sampleRequest) (map[string]any, error) {
	grid, err := decodeGrid(req.Grid)
	if err != nil {
		return nil, err
	}

	n := req.NPoints
	if n < 1 {
		n = 1
	}
	if n > s.cfg.Sampling.MaxPoints {
		return nil, fmt.Errorf("n_points %d exceeds the configured maximum of %d", n, s.cfg.Sampling.MaxPoints)
	}

	seed := uint64(time.Now().UnixNano())
	if req.Seed != nil {
		seed = *req.Seed
	}

	points, err := space.SamplePoints(grid, n, seed)
	if err != nil {
		return nil, err
	}
	sampledPointsTotal.Add(float64(len(points)))

	s.logger.Debug("sampled grid",
		zap.Int("n_points", n),
		zap.Uint64("seed", seed),
		zap.Bool("seeded_by_caller", req.Seed != nil),
	)

	return map[string]any{
		"points": points,
		"seed":   seed,
	}, nil
}

// normalize returns a typed description of each sub-grid without sampling.
func (s *Server) normalize(req normalizeRequest) (map[string]any, error) {
	grid, err := decodeGrid(req.Grid)
	if err != nil {
		return nil, err
	}

	normalized, err := space.Normalize(grid)
	if err != nil {
		return nil, err
	}

	subGrids := make([][]map[string]any, len(normalized))
	for i, sg := range normalized {
		subGrids[i] = make([]map[string]any, len(sg))
		for j, dist := range sg {
			subGrids[i][j] = describe(dist)
		}
	}

	return map[string]any{"sub_grids": subGrids}, nil
}

// describe renders one distribution for the normalize response.
func describe(d space.Distribution) map[string]any {
	out := map[string]any{"transform": transformName(d.Transformer())}
	switch dist := d.(type) {
	case *space.Real:
		out["kind"] = "real"
		out["low"] = dist.Low()
		out["high"] = dist.High()
	case *space.Integer:
		out["kind"] = "integer"
		out["low"] = dist.Low()
		out["high"] = dist.High()
	case *space.Categorical:
		out["kind"] = "categorical"
		out["categories"] = dist.Categories()
		out["weights"] = dist.Weights()
	}
	return out
}

func transformName(t transform.Transformer) string {
	switch t.(type) {
	case transform.Identity:
		return space.TransformIdentity
	case transform.Log:
		return space.TransformLog
	case transform.Log10:
		return space.TransformLog10
	case *transform.OneHotEncoder:
		return space.TransformOneHot
	case *transform.LabelEncoder:
		return space.TransformLabel
	default:
		return "custom"
	}
}

// decodeGrid parses a raw JSON grid, preserving the integer/real distinction
// that encoding/json's default float64 decoding would erase: "1" becomes an
// int, "3.0" a float64.
func decodeGrid(raw json.RawMessage) ([]any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("grid is required")
	}

	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid grid: %w", err)
	}

	converted, err := fromJSON(v)
	if err != nil {
		return nil, err
	}
	grid, ok := converted.([]any)
	if !ok {
		return nil, fmt.Errorf("grid must be a JSON array, got %T", converted)
	}
	return grid, nil
}

// fromJSON rewrites json.Number leaves into int or float64 values.
func fromJSON(v any) (any, error) {
	switch x := v.(type) {
	case json.Number:
		if !strings.ContainsAny(string(x), ".eE") {
			i, err := strconv.ParseInt(string(x), 10, 64)
			if err == nil {
				return int(i), nil
			}
			// Falls through to float for integers beyond int64 range.
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q in grid", string(x))
		}
		return f, nil
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			c, err := fromJSON(e)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case string, bool, nil:
		return x, nil
	default:
		return nil, fmt.Errorf("unsupported grid element %v (%T)", v, v)
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, route string, status int, body any) {
	requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, route string, status int, err error) {
	s.logger.Warn("request rejected",
		zap.String("route", route),
		zap.Int("status", status),
		zap.Error(err),
	)
	requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": err.Error()})
}
