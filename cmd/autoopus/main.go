package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	log      zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "autoopus",
	Short: "Solver for the hexagonal marble-matching puzzle",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lvl := zerolog.InfoLevel
		switch strings.ToLower(logLevel) {
		case "debug":
			lvl = zerolog.DebugLevel
		case "warn":
			lvl = zerolog.WarnLevel
		case "error":
			lvl = zerolog.ErrorLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(lvl).With().Timestamp().Logger()
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
