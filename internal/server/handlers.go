package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/graphsketch/core"
	"github.com/katalvlaran/graphsketch/graphio"
	"github.com/katalvlaran/graphsketch/internal/pipeline"
	"github.com/katalvlaran/graphsketch/postman"
	"github.com/katalvlaran/graphsketch/tour"
)

// Error codes reported in errorResponse.Code.
const (
	codeInvalidRequest   = "INVALID_REQUEST"
	codeInvalidGraph     = "INVALID_GRAPH"
	codeUnknownStrategy  = "UNKNOWN_STRATEGY"
	codeNotSolvable      = "GRAPH_NOT_SOLVABLE"
	codeMatchingTooLarge = "MATCHING_TOO_LARGE"
	codeExactTooLarge    = "EXACT_TOO_LARGE"
	codeInternal         = "INTERNAL"
)

type handlers struct {
	logger *log.Logger
	runner *pipeline.Runner
}

// solveRequest is the body shared by every /v1 endpoint.
type solveRequest struct {
	Graph    *graphio.GraphDoc `json:"graph"`
	Source   *core.NodeID      `json:"source,omitempty"`
	Strategy string            `json:"strategy,omitempty"`
	Options  requestOptions    `json:"options"`
}

type requestOptions struct {
	Matching        string `json:"matching,omitempty"`
	Walk            string `json:"walk,omitempty"`
	ExpandDeadheads *bool  `json:"expandDeadheads,omitempty"`
	Closure         bool   `json:"closure,omitempty"`
}

type solveResponse struct {
	RunID      string `json:"runId"`
	Algorithm  string `json:"algorithm"`
	DurationMs int64  `json:"durationMs"`
	Result     any    `json:"result"`
}

type errorResponse struct {
	Error string        `json:"error"`
	Code  string        `json:"code"`
	Nodes []core.NodeID `json:"nodes,omitempty"`
}

func (h *handlers) shortestPaths(w http.ResponseWriter, r *http.Request) {
	req, g, ok := h.decode(w, r)
	if !ok {
		return
	}
	if req.Source == nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "source is required")
		return
	}

	out, err := h.runner.ShortestPaths(r.Context(), g, *req.Source)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, out.Meta, graphio.NewShortestPathsDoc(g, out.Result))
}

func (h *handlers) routeInspection(w http.ResponseWriter, r *http.Request) {
	req, g, ok := h.decode(w, r)
	if !ok {
		return
	}

	out, err := h.runner.RouteInspection(r.Context(), g, pipeline.RouteOptions{
		Matching:        req.Options.Matching,
		Walk:            req.Options.Walk,
		ExpandDeadheads: req.Options.ExpandDeadheads,
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, out.Meta, graphio.NewRouteDoc(out.Result))
}

func (h *handlers) tour(w http.ResponseWriter, r *http.Request) {
	req, g, ok := h.decode(w, r)
	if !ok {
		return
	}

	out, err := h.runner.Tour(r.Context(), g, req.Strategy)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, out.Meta, graphio.NewTourDoc(out.Result))
}

func (h *handlers) matrix(w http.ResponseWriter, r *http.Request) {
	req, g, ok := h.decode(w, r)
	if !ok {
		return
	}

	out, err := h.runner.Matrix(r.Context(), g, req.Options.Closure)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, out.Meta, graphio.NewMatrixDoc(out.Matrix, out.Nodes))
}

// decode reads the request body and builds its sketch, answering 400 itself
// on failure.
func (h *handlers) decode(w http.ResponseWriter, r *http.Request) (solveRequest, *core.Graph, bool) {
	var req solveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, fmt.Sprintf("decode body: %v", err))
		return req, nil, false
	}
	if req.Graph == nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "graph is required")
		return req, nil, false
	}
	return req, req.Graph.Graph(), true
}

// fail maps a run error onto a status and code.
func (h *handlers) fail(w http.ResponseWriter, err error) {
	var ns *postman.NotSolvableError
	switch {
	case errors.As(err, &ns):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Code: codeNotSolvable, Nodes: ns.Nodes})
	case errors.Is(err, postman.ErrMatchingTooLarge):
		writeError(w, http.StatusUnprocessableEntity, codeMatchingTooLarge, err.Error())
	case errors.Is(err, pipeline.ErrExactTooLarge):
		writeError(w, http.StatusUnprocessableEntity, codeExactTooLarge, err.Error())
	case errors.Is(err, pipeline.ErrInvalidGraph):
		writeError(w, http.StatusBadRequest, codeInvalidGraph, err.Error())
	case errors.Is(err, tour.ErrUnknownStrategy),
		errors.Is(err, postman.ErrUnknownMatching),
		errors.Is(err, postman.ErrUnknownWalk):
		writeError(w, http.StatusBadRequest, codeUnknownStrategy, err.Error())
	default:
		h.logger.Error("solve failed", "err", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
	}
}

func respond(w http.ResponseWriter, meta pipeline.Meta, result any) {
	w.Header().Set("X-Run-ID", meta.RunID)
	respondJSON(w, http.StatusOK, solveResponse{
		RunID:      meta.RunID,
		Algorithm:  meta.Algorithm,
		DurationMs: meta.Duration.Milliseconds(),
		Result:     result,
	})
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	respondJSON(w, status, errorResponse{Error: msg, Code: code})
}
