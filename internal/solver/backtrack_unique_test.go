package solver

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

func TestUniqueOnProperPuzzle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s := NewBacktrackingSolver(nil)
	ok, st, err := s.Unique(ctx, sample)
	require.NoError(t, err)
	assert.True(t, ok, "sample puzzle should have exactly one solution (nodes=%d)", st.Nodes)
}

func TestUniqueOnEmptyGrid(t *testing.T) {
	ctx := context.Background()
	s := NewBacktrackingSolver(nil)
	ok, _, err := s.Unique(ctx, domain.Grid{})
	require.NoError(t, err)
	assert.False(t, ok, "empty grid admits many solutions")
}

func TestUniqueOnUnsolvableGrid(t *testing.T) {
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	g[4][8] = 9 // blocks the only digit left for (0,8)

	s := NewBacktrackingSolver(nil)
	ok, _, err := s.Unique(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCountSolutionsCapsAtLimit(t *testing.T) {
	count, _ := CountSolutions(context.Background(), domain.Grid{}, 2)
	assert.Equal(t, 2, count, "search must stop the instant the cap is hit")
}

func TestCountSolutionsOneEmptyCell(t *testing.T) {
	g := sampleSolution
	g[3][3] = 0
	count, nodes := CountSolutions(context.Background(), g, 2)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, nodes)
}

func TestCountSolutionsLeavesCallerGridAlone(t *testing.T) {
	g := sample
	_, _ = CountSolutions(context.Background(), g, 2)
	if diff := cmp.Diff(sample, g); diff != "" {
		t.Fatalf("caller grid mutated (-want +got):\n%s", diff)
	}
}
