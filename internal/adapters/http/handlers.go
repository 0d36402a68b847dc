// Package httpadapter exposes the engine to a game controller over JSON.
// The engine itself knows nothing about sessions or selected cells; every
// request carries the full grid state.
package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/complete", h.handleComplete)
	mux.HandleFunc("/api/conflicts", h.handleConflicts)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/related", h.handleRelated)
	mux.HandleFunc("/api/difficulties", h.handleDifficulties)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

// status maps engine errors onto HTTP codes: malformed grids are the
// client's fault, everything else is ours.
func status(err error) int {
	if errors.Is(err, domain.ErrInvalidGrid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Puzzle      domain.Grid `json:"puzzle"`
	Solution    domain.Grid `json:"solution"`
	Difficulty  string      `json:"difficulty"`
	FilledCells int         `json:"filledCells"`
	Seed        int64       `json:"seed"`
	DurationMs  int64       `json:"durationMs"`
	Nodes       int         `json:"nodes"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if !decodeBody(w, r, &req) {
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff, _ := domain.ParseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(r.Context(), seed, diff)
	if err != nil {
		writeJSON(w, status(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, generateResp{
		Puzzle:      p.Puzzle,
		Solution:    p.Solution,
		Difficulty:  p.Difficulty.String(),
		FilledCells: p.FilledCells,
		Seed:        seed,
		DurationMs:  st.Duration.Milliseconds(),
		Nodes:       st.Nodes,
	})
}

// ---- Solve ----

type gridReq struct {
	Grid domain.Grid `json:"grid"`
}

type solveResp struct {
	Grid       domain.Grid `json:"grid"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req gridReq
	if !decodeBody(w, r, &req) {
		return
	}
	out, st, err := h.UC.Solve(r.Context(), req.Grid)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, solveResp{Grid: out, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Complete / Conflicts ----

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req gridReq
	if !decodeBody(w, r, &req) {
		return
	}
	ok, err := h.UC.IsComplete(r.Context(), req.Grid)
	if err != nil {
		writeJSON(w, status(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"complete": ok})
}

type conflictsResp struct {
	Conflicts []domain.CellCoord `json:"conflicts"`
}

func (h *Handler) handleConflicts(w http.ResponseWriter, r *http.Request) {
	var req gridReq
	if !decodeBody(w, r, &req) {
		return
	}
	conf, err := h.UC.Conflicts(r.Context(), req.Grid)
	if err != nil {
		writeJSON(w, status(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, conflictsResp{Conflicts: conf})
}

// ---- Hint ----

type hintReq struct {
	Grid     domain.Grid `json:"grid"`
	Solution domain.Grid `json:"solution"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if !decodeBody(w, r, &req) {
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), req.Grid, req.Solution)
	if err != nil {
		writeJSON(w, status(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: ok, Hint: hh})
}

// ---- Related cells ----

func (h *Handler) handleRelated(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	row, err1 := strconv.Atoi(r.URL.Query().Get("row"))
	col, err2 := strconv.Atoi(r.URL.Query().Get("col"))
	if err1 != nil || err2 != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "row and col query params required"})
		return
	}
	cells, err := h.UC.RelatedCells(row, col)
	if err != nil {
		writeJSON(w, status(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.CellCoord{"cells": cells})
}

// ---- Difficulties ----

func (h *Handler) handleDifficulties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	out := make(map[string]domain.DifficultyConfig, len(domain.Difficulties))
	for d, cfg := range domain.Difficulties {
		out[d.String()] = cfg
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- Save / Load / List ----

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if !decodeBody(w, r, &p) {
		return
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		writeJSON(w, status(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req loadReq
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, status(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.PuzzleMeta{"puzzles": ps})
}
