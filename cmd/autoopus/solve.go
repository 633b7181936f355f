package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bzhhan/autoopus/internal/adapters/progress"
	"github.com/bzhhan/autoopus/internal/config"
	"github.com/bzhhan/autoopus/internal/ports"
	"github.com/bzhhan/autoopus/internal/solver"
	"github.com/bzhhan/autoopus/internal/usecase"
	"github.com/bzhhan/autoopus/internal/validator"
)

var (
	solveConfigPath string
	solveEngine     string
	solveMaxIter    int
	solveMaxSecs    float64
	solveQuiet      bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <board.json>",
	Short: "Find a clearing sequence for a board file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBoard(args[0])
		if err != nil {
			return err
		}

		cfg := config.Defaults()
		if solveConfigPath != "" {
			var warn error
			if cfg, warn = config.Load(solveConfigPath); warn != nil {
				log.Warn().Err(warn).Msg("solver config degraded")
			}
		}
		applyBoundFlags(&cfg)

		var sink ports.ProgressSink
		if !solveQuiet {
			sink = progress.NewZerologSink(log, 200*time.Millisecond)
		}
		var s ports.Solver
		switch solveEngine {
		case "dfs":
			s = solver.NewDFS()
		default:
			s = solver.NewAStar(solver.Config{
				Weights:   cfg.HeuristicWeights,
				Interrupt: cfg.Interrupt,
				Sink:      sink,
			})
		}
		uc := usecase.NewService(s, nil, validator.New())

		if ok, problems, _ := uc.Validate(cmd.Context(), b); !ok {
			for _, p := range problems {
				log.Warn().Str("problem", p).Msg("board census check failed")
			}
		}

		path, st, err := uc.Solve(cmd.Context(), b)
		switch {
		case errors.Is(err, solver.ErrInterrupted):
			log.Error().Int("iterations", st.Iterations).Dur("elapsed", st.Duration).
				Msg("search interrupted by configured condition")
			return err
		case errors.Is(err, solver.ErrNoSolution):
			log.Error().Int("iterations", st.Iterations).Dur("elapsed", st.Duration).
				Msg("no solution found")
			return err
		case err != nil:
			return err
		}
		log.Info().Int("moves", len(path)).Int("expanded", st.Expanded).
			Dur("elapsed", st.Duration).Msg("solved")
		for i, m := range path {
			fmt.Printf("%3d: remove %d and %d\n", i+1, m.A, m.B)
		}
		return nil
	},
}

// applyBoundFlags folds the iteration/time shortcuts into the interrupt tree
// so the CLI needs no separate config file for simple bounds.
func applyBoundFlags(cfg *config.Solver) {
	var leaves []solver.Rule
	if solveMaxIter > 0 {
		leaves = append(leaves, solver.Rule{Variable: "iteration", Operator: ">=", Value: float64(solveMaxIter)})
	}
	if solveMaxSecs > 0 {
		leaves = append(leaves, solver.Rule{Variable: "elapsed_time", Operator: ">=", Value: solveMaxSecs})
	}
	if len(leaves) == 0 {
		return
	}
	if cfg.Interrupt.Enabled {
		leaves = append(leaves, cfg.Interrupt.ConditionSet)
	}
	cfg.Interrupt = solver.Interrupt{
		Enabled:      true,
		ConditionSet: solver.Rule{Logic: "OR", Conditions: leaves},
	}
}

func init() {
	solveCmd.Flags().StringVar(&solveConfigPath, "config", "", "solver config YAML (weights + interrupt tree)")
	solveCmd.Flags().StringVar(&solveEngine, "solver", "astar", "search engine: astar|dfs")
	solveCmd.Flags().IntVar(&solveMaxIter, "max-iterations", 0, "interrupt after this many iterations (0 = unbounded)")
	solveCmd.Flags().Float64Var(&solveMaxSecs, "max-seconds", 0, "interrupt after this much wall time (0 = unbounded)")
	solveCmd.Flags().BoolVar(&solveQuiet, "quiet", false, "suppress progress logging")
	rootCmd.AddCommand(solveCmd)
}
