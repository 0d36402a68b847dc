package domain

import "strings"

// Difficulty labels the target filled-cell count of generated puzzles.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DifficultyConfig holds the display label and the filled-cell target a
// generated puzzle is carved down to.
type DifficultyConfig struct {
	Label       string `json:"label"`
	FilledCells int    `json:"filledCells"`
}

// Difficulties is read-only process-wide configuration; no code mutates it.
var Difficulties = map[Difficulty]DifficultyConfig{
	Easy:   {Label: "Easy", FilledCells: 35},
	Medium: {Label: "Medium", FilledCells: 28},
	Hard:   {Label: "Hard", FilledCells: 22},
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a user-supplied name to a Difficulty; unknown names
// fall back to Medium with ok=false.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	default:
		return Medium, false
	}
}
