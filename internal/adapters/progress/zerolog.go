// Package progress adapts the engine's ProgressSink port onto zerolog.
package progress

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/bzhhan/autoopus/internal/ports"
)

// ZerologSink logs search progress. Snapshots arrive every iteration; the
// sink throttles them to one log line per interval so long searches stay
// readable. Expansion events log at debug level only.
type ZerologSink struct {
	log      zerolog.Logger
	interval time.Duration
	lastLog  time.Time
}

// NewZerologSink builds a sink logging at most one snapshot per interval.
// A non-positive interval logs every fifth of a second.
func NewZerologSink(log zerolog.Logger, interval time.Duration) *ZerologSink {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return &ZerologSink{log: log, interval: interval}
}

func (s *ZerologSink) Snapshot(snap ports.Snapshot) {
	now := time.Now()
	if snap.Iteration != 1 && now.Sub(s.lastLog) < s.interval {
		return
	}
	s.lastLog = now
	s.log.Info().
		Int("iteration", snap.Iteration).
		Int("open_set_size", snap.OpenSetSize).
		Int("best_g_cost", snap.BestGCost).
		Dur("elapsed", snap.Elapsed).
		Msg("searching")
}

func (s *ZerologSink) Expanded(e ports.Expansion) {
	ev := s.log.Debug().
		Uint64("node", e.Node).
		Int("g_cost", e.GCost).
		Float64("h_cost", e.HCost).
		Bool("initial", e.Initial)
	if e.HasParent {
		ev = ev.Uint64("parent", e.Parent)
	}
	ev.Msg("expanded")
}

func (s *ZerologSink) Solved(path []uint64) {
	s.log.Info().Int("moves", len(path)-1).Msg("solution found")
}
