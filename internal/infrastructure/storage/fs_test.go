package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

func samplePuzzle(id string, d domain.Difficulty) *domain.Puzzle {
	var puz, sol domain.Grid
	sol[0][0] = 5
	puz[0][0] = 5
	return &domain.Puzzle{
		ID:          id,
		Seed:        42,
		Difficulty:  d,
		Puzzle:      puz,
		Solution:    sol,
		FilledCells: 1,
		CreatedAt:   1700000000,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := samplePuzzle("abc", domain.Hard)
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, p.Puzzle, got.Puzzle)
	assert.Equal(t, p.Solution, got.Solution)
	assert.Equal(t, domain.Hard, got.Difficulty)
}

func TestSaveRequiresID(t *testing.T) {
	s := NewFS(t.TempDir())
	err := s.Save(context.Background(), samplePuzzle("", domain.Easy))
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListBucketsByDifficulty(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, samplePuzzle("a", domain.Easy)))
	require.NoError(t, s.Save(ctx, samplePuzzle("b", domain.Medium)))
	require.NoError(t, s.Save(ctx, samplePuzzle("c", domain.Hard)))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 3)

	byID := map[string]domain.Difficulty{}
	for _, m := range metas {
		byID[m.ID] = m.Difficulty
	}
	assert.Equal(t, domain.Easy, byID["a"])
	assert.Equal(t, domain.Medium, byID["b"])
	assert.Equal(t, domain.Hard, byID["c"])
}
