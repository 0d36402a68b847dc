package solver

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/validator"
)

// A classic, solvable Sudoku (0 = empty).
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolution = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestBacktrackingSolveSample(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s := NewBacktrackingSolver(nil)
	out, st, err := s.Solve(ctx, sample)
	require.NoError(t, err, "nodes=%d dur=%v", st.Nodes, st.Duration)
	if diff := cmp.Diff(sampleSolution, out); diff != "" {
		t.Fatalf("solution mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, validator.IsComplete(&out))
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	ctx := context.Background()
	in := sample
	s := NewBacktrackingSolver(nil)
	_, _, err := s.Solve(ctx, in)
	require.NoError(t, err)
	if diff := cmp.Diff(sample, in); diff != "" {
		t.Fatalf("caller grid mutated (-want +got):\n%s", diff)
	}
}

func TestCompleteRestoresGridOnFailure(t *testing.T) {
	// (0,8) needs 9 to finish row 0, but column 8 already holds a 9: no
	// completion exists from this state.
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	g[4][8] = 9

	before := g
	nodes, ok := Complete(context.Background(), &g, nil)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, nodes, 0)
	if diff := cmp.Diff(before, g); diff != "" {
		t.Fatalf("failed solve leaked assignments (-want +got):\n%s", diff)
	}
}

func TestCompleteRandomizedStillValid(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	g := sample
	rng := rand.New(rand.NewSource(42))
	_, ok := Complete(ctx, &g, rng)
	require.True(t, ok)
	// a proper puzzle has one solution regardless of try order
	if diff := cmp.Diff(sampleSolution, g); diff != "" {
		t.Fatalf("randomized order changed the unique solution (-want +got):\n%s", diff)
	}
}

func TestCompleteCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := sample
	_, ok := Complete(ctx, &g, nil)
	assert.False(t, ok)
	if diff := cmp.Diff(sample, g); diff != "" {
		t.Fatalf("canceled solve left partial assignments (-want +got):\n%s", diff)
	}
}
