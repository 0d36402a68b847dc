package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
)

var hintCmd = &cobra.Command{
	Use:   "hint <grid>",
	Short: "Suggest one safe move for a grid",
	Long: "Suggest one safe move: the first naked single if one exists, " +
		"otherwise a random empty cell revealed from the solved grid.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := domain.ParseGrid(args[0])
		if err != nil {
			return err
		}
		uc := buildService("dlx", "")
		// the engine wants the known solution alongside the current grid
		solution, st, err := uc.Solve(cmd.Context(), g)
		if err != nil {
			return err
		}
		log.Debugf("solved for hint in %v, %d nodes", st.Duration, st.Nodes)
		h, ok, err := uc.Hint(cmd.Context(), g, solution)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("grid is already full")
			return nil
		}
		fmt.Printf("place %d at row %d, column %d\n", h.Number, h.Row+1, h.Col+1)
		return nil
	},
}
