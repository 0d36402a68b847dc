package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsIndependent(t *testing.T) {
	var g Grid
	g[0][0] = 5
	cp := g.Clone()
	cp[0][0] = 9
	cp[8][8] = 1
	assert.Equal(t, uint8(5), g[0][0])
	assert.Equal(t, uint8(0), g[8][8])
}

func TestParseGridRoundTrip(t *testing.T) {
	const s = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	g, err := ParseGrid(s)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), g[0][0])
	assert.Equal(t, uint8(9), g[8][8])
	assert.Equal(t, 30, g.CountFilled())

	// String uses '.' for empties; re-parsing restores the same grid
	back, err := ParseGrid(g.String())
	require.NoError(t, err)
	if diff := cmp.Diff(g, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGridRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"too short", "123"},
		{"too long", "530070000600195000098000060800060003400803001700020006060000280000419005000080079" + "1"},
		{"bad rune", "x30070000600195000098000060800060003400803001700020006060000280000419005000080079"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseGrid(tc.in)
			assert.ErrorIs(t, err, ErrInvalidGrid)
		})
	}
}

func TestCheckRejectsOutOfRangeValues(t *testing.T) {
	var g Grid
	require.NoError(t, g.Check())
	g[3][4] = 12
	assert.ErrorIs(t, g.Check(), ErrInvalidGrid)
}

func TestDifficultyTable(t *testing.T) {
	assert.Equal(t, 35, Difficulties[Easy].FilledCells)
	assert.Equal(t, 28, Difficulties[Medium].FilledCells)
	assert.Equal(t, 22, Difficulties[Hard].FilledCells)
	assert.Equal(t, "Hard", Difficulties[Hard].Label)
}

func TestParseDifficulty(t *testing.T) {
	d, ok := ParseDifficulty(" Easy ")
	assert.True(t, ok)
	assert.Equal(t, Easy, d)

	d, ok = ParseDifficulty("nightmare")
	assert.False(t, ok)
	assert.Equal(t, Medium, d)
}
