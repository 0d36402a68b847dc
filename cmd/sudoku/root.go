package main

import (
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/generator"
	"svw.info/sudoku-engine/internal/hint"
	"svw.info/sudoku-engine/internal/infrastructure/storage"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

var log = logrus.New()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Sudoku puzzle engine: generate, solve, hint, or serve over HTTP",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd, generateCmd, solveCmd, hintCmd)
}

func pickSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver(nil)
	default:
		return solver.NewDLXSolver()
	}
}

// buildService wires providers into the engine facade. persistDir may be
// empty for commands that never touch storage.
func buildService(solverKind, persistDir string) *usecase.Service {
	s := pickSolver(solverKind)
	g := generator.NewPuzzleGenerator(solver.NewBacktrackingSolver(nil))
	v := validator.New()
	hin := hint.NewStrategist(rand.New(rand.NewSource(time.Now().UnixNano())))
	var st ports.Storage
	if persistDir != "" {
		st = storage.NewFS(persistDir)
	}
	return usecase.NewService(s, g, v, hin, st)
}
