package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bzhhan/autoopus/internal/generator"
	"github.com/bzhhan/autoopus/internal/grid"
)

var (
	genSeed   int64
	genRadius int
	genOut    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a solvable board",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := genSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g, err := grid.New(genRadius)
		if err != nil {
			return err
		}
		b, moves, st, err := generator.New().Generate(cmd.Context(), seed, g)
		if err != nil {
			return err
		}
		log.Info().Int64("seed", seed).Int("cells", b.Len()).
			Int("moves", len(moves)).Dur("elapsed", st.Duration).Msg("generated")
		if genOut != "" {
			if err := saveBoard(genOut, b); err != nil {
				return err
			}
			log.Info().Str("path", genOut).Msg("board written")
			return nil
		}
		for i := 0; i < b.Len(); i++ {
			fmt.Printf("%3d: %s\n", i, b.Cell(i).Class)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "rng seed (0 = time-based)")
	generateCmd.Flags().IntVar(&genRadius, "radius", 5, "grid radius")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "write board JSON here instead of stdout")
	rootCmd.AddCommand(generateCmd)
}
