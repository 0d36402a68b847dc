package httpadapter

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/generator"
	"svw.info/sudoku-engine/internal/hint"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	s := solver.NewBacktrackingSolver(nil)
	uc := usecase.NewService(
		s,
		generator.NewPuzzleGenerator(s),
		validator.New(),
		hint.NewStrategist(rand.New(rand.NewSource(1))),
		nil,
	)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

func post(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestGenerateEndpoint(t *testing.T) {
	mux := newMux(t)
	rec := post(t, mux, "/api/generate", generateReq{Difficulty: "easy", Seed: 42})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "easy", resp.Difficulty)
	assert.GreaterOrEqual(t, resp.FilledCells, domain.Difficulties[domain.Easy].FilledCells)
	assert.Equal(t, int64(42), resp.Seed)
	assert.True(t, validator.IsComplete(&resp.Solution))
}

func TestConflictsEndpoint(t *testing.T) {
	mux := newMux(t)
	var g domain.Grid
	g[0][0] = 7
	g[0][5] = 7

	rec := post(t, mux, "/api/conflicts", gridReq{Grid: g})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp conflictsResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []domain.CellCoord{{Row: 0, Col: 0}, {Row: 0, Col: 5}}, resp.Conflicts)
}

func TestCompleteEndpointRejectsBadGrid(t *testing.T) {
	mux := newMux(t)
	var g domain.Grid
	g[1][1] = 10

	rec := post(t, mux, "/api/complete", gridReq{Grid: g})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRelatedEndpoint(t *testing.T) {
	mux := newMux(t)
	req := httptest.NewRequest(http.MethodGet, "/api/related?row=4&col=4", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]domain.CellCoord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp["cells"], 20)
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newMux(t)
	req := httptest.NewRequest(http.MethodGet, "/api/generate", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
