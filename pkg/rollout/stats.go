package rollout

import (
	"fmt"
	"sync/atomic"

	"github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"
)

// Result of a single probability estimation
type Estimate struct {
	Side   dograbbit.Entity
	Wins   int
	Trials int // playouts actually run, may be lower than requested if the search was stopped
}

// Fraction of the playouts won by the side, 0 if no playout finished
func (e Estimate) WinRate() float64 {
	if e.Trials == 0 {
		return 0
	}
	return float64(e.Wins) / float64(e.Trials)
}

// Whether at least one playout finished, an estimate without any carries no information
func (e Estimate) Completed() bool {
	return e.Trials > 0
}

func (e *Estimate) Add(outcome dograbbit.Outcome) {
	e.Trials++
	if outcome.IsWinFor(e.Side) {
		e.Wins++
	}
}

func (e Estimate) String() string {
	return fmt.Sprintf("Estimate={Side=%v, Wins=%d, Trials=%d}", e.Side, e.Wins, e.Trials)
}

// Counters shared by every thread of a search
type SearchStats struct {
	playouts atomic.Uint64
	plies    atomic.Uint64
}

func (s *SearchStats) reset() {
	s.playouts.Store(0)
	s.plies.Store(0)
}

func (s *SearchStats) addPlayout(plies int) {
	s.playouts.Add(1)
	s.plies.Add(uint64(plies))
}

// Total number of playouts (both random and lookahead ones) since the last search started
func (s *SearchStats) Playouts() uint64 {
	return s.playouts.Load()
}

// Total number of moves played inside playouts
func (s *SearchStats) Plies() uint64 {
	return s.plies.Load()
}
