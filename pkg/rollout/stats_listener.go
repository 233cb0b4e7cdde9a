package rollout

import "github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"

// Evaluation of a single top level move
type CandidateStats struct {
	Index int // position of the move in generation order
	Total int // number of candidate moves
	Move  dograbbit.Move
	Board dograbbit.Board
	Prob  float64 // estimated winning probability of the side to move after playing 'Move'

	// Lookahead playouts completed for this move, 0 if the search stopped before
	// reaching it, such a candidate is never chosen
	Playouts int
}

type ListenerSearchStats struct {
	Candidates int
	Playouts   uint64
	Plies      uint64
	TimeMs     int
	Pps        uint32 // playouts per second
	StopReason StopReason
}

// Convert engine's state to 'ListenerSearchStats' struct
func toListenerStats(e *Engine, candidates int) ListenerSearchStats {
	elapsed := e.Limiter.Elapsed()
	return ListenerSearchStats{
		Candidates: candidates,
		Playouts:   e.stats.Playouts(),
		Plies:      e.stats.Plies(),
		TimeMs:     int(elapsed),
		Pps:        uint32(e.stats.Playouts() * 1000 / uint64(elapsed)),
		StopReason: e.Limiter.StopReason(),
	}
}

type CandidateFunc func(CandidateStats)

// Listener function callback, will recieve search statistics
type ListenerFunc func(ListenerSearchStats)

type StatsListener struct {
	// called once per candidate move, always in generation order
	onCandidate CandidateFunc

	// called when the search stops (either all candidates are evaluated or 'stop' signal)
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach new candidate evaluated callback. With multiple threads the calls are
// delayed until every candidate is evaluated, so they are still made from a single
// goroutine and in order
func (listener *StatsListener) OnCandidate(onCandidate CandidateFunc) *StatsListener {
	listener.onCandidate = onCandidate
	return listener
}

// Attach 'on search end' callback, makes 'StopReason' available in the stats
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeCandidate(stats CandidateStats) {
	if listener.onCandidate != nil {
		listener.onCandidate(stats)
	}
}

func (listener *StatsListener) invokeStop(e *Engine, candidates int) {
	if listener.onStop != nil {
		listener.onStop(toListenerStats(e, candidates))
	}
}
