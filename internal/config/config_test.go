package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bzhhan/autoopus/internal/solver"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.Equal(t, solver.DefaultWeights(), cfg.HeuristicWeights)
	require.False(t, cfg.Interrupt.Enabled)
}

func TestLoadMissingFileDegrades(t *testing.T) {
	cfg, warn := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, warn, ErrDegraded)
	require.Equal(t, Defaults(), cfg)
}

func TestLoadMalformedFileDegrades(t *testing.T) {
	cfg, warn := Load(write(t, "heuristic_weights: ["))
	require.ErrorIs(t, warn, ErrDegraded)
	require.Equal(t, Defaults(), cfg)
}

func TestLoadPartialOverlaysDefaults(t *testing.T) {
	cfg, warn := Load(write(t, `
heuristic_weights:
  salt_marbles_reward: 2.5
`))
	require.NoError(t, warn)
	require.Equal(t, 2.5, cfg.HeuristicWeights.SaltReward)
	require.Equal(t, 0.5, cfg.HeuristicWeights.RemainingFactor)
	require.False(t, cfg.Interrupt.Enabled)
}

func TestLoadInterruptTree(t *testing.T) {
	cfg, warn := Load(write(t, `
interrupt:
  enabled: true
  condition_set:
    logic: OR
    conditions:
      - variable: iteration
        operator: ">="
        value: 1000
      - logic: AND
        conditions:
          - variable: elapsed_time
            operator: ">"
            value: 30
          - variable: open_set_size
            operator: ">"
            value: 50000
`))
	require.NoError(t, warn)
	require.True(t, cfg.Interrupt.Enabled)
	root := cfg.Interrupt.ConditionSet
	require.Equal(t, "OR", root.Logic)
	require.Len(t, root.Conditions, 2)
	require.Equal(t, "iteration", root.Conditions[0].Variable)
	require.Equal(t, ">=", root.Conditions[0].Operator)
	require.Equal(t, 1000.0, root.Conditions[0].Value)
	require.Equal(t, "AND", root.Conditions[1].Logic)
	require.Len(t, root.Conditions[1].Conditions, 2)
}
