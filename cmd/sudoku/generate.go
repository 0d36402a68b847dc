package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
)

// printGrid renders a grid with box separators for terminal output.
func printGrid(g domain.Grid) {
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			fmt.Println("------+-------+------")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				fmt.Print("| ")
			}
			if g[r][c] == 0 {
				fmt.Print(". ")
			} else {
				fmt.Printf("%d ", g[r][c])
			}
		}
		fmt.Println()
	}
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle at the given difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		diffName, _ := cmd.Flags().GetString("difficulty")
		seed, _ := cmd.Flags().GetInt64("seed")
		showSolution, _ := cmd.Flags().GetBool("solution")

		diff, known := domain.ParseDifficulty(diffName)
		if !known {
			log.Warnf("unknown difficulty %q, using %s", diffName, diff)
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		uc := buildService("backtrack", "")
		p, st, err := uc.Generate(cmd.Context(), seed, diff)
		if err != nil {
			return err
		}
		log.Debugf("generated in %v, %d nodes, seed %d", st.Duration, st.Nodes, seed)

		fmt.Printf("%s puzzle, %d filled cells (seed %d)\n\n", domain.Difficulties[p.Difficulty].Label, p.FilledCells, seed)
		printGrid(p.Puzzle)
		if showSolution {
			fmt.Println("\nsolution:")
			printGrid(p.Solution)
		}
		fmt.Printf("\n%s\n", p.Puzzle)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("difficulty", "d", "medium", "easy|medium|hard")
	generateCmd.Flags().Int64P("seed", "s", 0, "generation seed (0 = time-based)")
	generateCmd.Flags().Bool("solution", false, "also print the solution")
}
