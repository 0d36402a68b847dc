package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
)

var solveCmd = &cobra.Command{
	Use:   "solve <grid>",
	Short: "Solve an 81-character grid string ('.' or '0' for empty cells)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := domain.ParseGrid(args[0])
		if err != nil {
			return err
		}
		solverKind, _ := cmd.Flags().GetString("solver")
		uc := buildService(solverKind, "")
		out, st, err := uc.Solve(cmd.Context(), g)
		if err != nil {
			return err
		}
		log.Debugf("solved in %v, %d nodes", st.Duration, st.Nodes)
		printGrid(out)
		fmt.Printf("\n%s\n", out)
		return nil
	},
}

func init() {
	solveCmd.Flags().String("solver", "dlx", "dlx|backtrack")
}
