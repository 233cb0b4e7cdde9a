package rollout

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"
)

type Engine struct {
	Limiter  LimiterLike
	listener *StatsListener
	rand     *rand.Rand
	stats    SearchStats
}

// Create new engine with default limits and a random generator seeded by SeedGeneratorFn
func NewEngine() *Engine {
	return &Engine{
		Limiter:  NewLimiter(),
		listener: &StatsListener{},
		rand:     rand.New(rand.NewSource(SeedGeneratorFn())),
	}
}

// New engine with the same limits, but its own random generator, listener and counters
func (e *Engine) Clone() *Engine {
	limits := *e.Limiter.Limits()
	clone := NewEngine()
	clone.SetLimits(&limits)
	return clone
}

func (e *Engine) SetLimits(limits *Limits) {
	e.Limiter.SetLimits(limits)
}

func (e *Engine) Limits() *Limits {
	return e.Limiter.Limits()
}

// Adds custom context to the limiter, enabling cancellation through it
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
//	defer cancel()
//
//	engine.SetContext(ctx)
//	result := engine.Solve(board, dograbbit.Dog)
func (e *Engine) SetContext(ctx context.Context) {
	e.Limiter.SetContext(ctx)
}

func (e *Engine) SetListener(listener StatsListener) {
	*e.listener = listener
}

func (e *Engine) ResetListener() {
	e.listener.OnCandidate(nil).OnStop(nil)
}

// Replace the random generator, it also seeds the per-candidate generators of a parallel search
func (e *Engine) SetRand(rng *rand.Rand) {
	if rng != nil {
		e.rand = rng
	}
}

func (e *Engine) Rand() *rand.Rand {
	return e.rand
}

// Stop the search, playouts already running are finished and discarded
func (e *Engine) Stop() {
	e.Limiter.SetStop(true)
}

func (e *Engine) Stats() *SearchStats {
	return &e.stats
}

type Candidate struct {
	Move     dograbbit.Move
	Board    dograbbit.Board
	Prob     float64
	Playouts int // completed lookahead playouts, Prob is 0 and meaningless without any
}

type SearchResult struct {
	Best       dograbbit.Board
	BestMove   dograbbit.Move
	Prob       float64
	OK         bool // false if there is no move to play
	Candidates []Candidate
	StopReason StopReason
}

func (r SearchResult) String() string {
	if !r.OK {
		return fmt.Sprintf("SearchResult={OK=false, Candidates=%d, StopReason=%v}", len(r.Candidates), r.StopReason)
	}
	return fmt.Sprintf("SearchResult={OK=true, BestMove=%v, Prob=%.3f, Best=%s, Candidates=%d, StopReason=%v}",
		r.BestMove, r.Prob, r.Best.Notation(), len(r.Candidates), r.StopReason)
}

func (e *Engine) evaluate(b dograbbit.Board, side dograbbit.Entity, m dograbbit.Move, rng *rand.Rand) Candidate {
	h := b.Play(m)
	est := e.estimate(h, side.Opposite(), e.Limiter.Limits().Trials, e.goodPolicy, rng)

	c := Candidate{Move: m, Board: h, Playouts: est.Trials}
	if est.Completed() {
		c.Prob = 1.0 - est.WinRate()
	}
	log.Debug().Stringer("move", m).Float64("prob", c.Prob).Int("playouts", c.Playouts).Msg("candidate-evaluated")
	return c
}

// Evaluate candidates concurrently, each one with its own random generator,
// seeded from the engine's generator plus the candidate index
func (e *Engine) evaluateParallel(b dograbbit.Board, side dograbbit.Entity, moves []dograbbit.Move, candidates []Candidate, threads int) {
	g := errgroup.Group{}
	g.SetLimit(threads)
	seed := e.rand.Int63()

	for i, m := range moves {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(i)))
			candidates[i] = e.evaluate(b, side, m, rng)
			return nil
		})
	}

	_ = g.Wait()
}

// Pick the move for 'side' that maximizes its winning chances, estimated with
// lookahead playouts. Moves are compared strictly against the best so far, starting
// from 0, so the first of equally good moves is chosen, and if every move is
// estimated as a certain loss, there is no best move. Candidates the search
// stopped before evaluating are skipped
func (e *Engine) Solve(b dograbbit.Board, side dograbbit.Entity) SearchResult {
	e.Limiter.Reset()
	e.stats.reset()

	moves := b.GenerateMoves(side)
	threads := e.Limiter.Limits().NThreads
	log.Debug().
		Str("board", b.Notation()).
		Stringer("side", side).
		Int("candidates", len(moves)).
		Int("threads", threads).
		Msg("solve-start")

	candidates := make([]Candidate, len(moves))
	if threads > 1 && len(moves) > 1 {
		e.evaluateParallel(b, side, moves, candidates, threads)
		for i := range candidates {
			e.listener.invokeCandidate(toCandidateStats(candidates, i))
		}
	} else {
		for i, m := range moves {
			candidates[i] = e.evaluate(b, side, m, e.rand)
			e.listener.invokeCandidate(toCandidateStats(candidates, i))
		}
	}

	result := SearchResult{Candidates: candidates}
	for _, c := range candidates {
		if c.Playouts == 0 {
			continue
		}
		if c.Prob > result.Prob {
			result.Prob = c.Prob
			result.Best = c.Board
			result.BestMove = c.Move
			result.OK = true
		}
	}

	e.Limiter.EvaluateStopReason()
	result.StopReason = e.Limiter.StopReason()
	if result.StopReason != StopNone {
		log.Warn().Stringer("reason", result.StopReason).Uint64("playouts", e.stats.Playouts()).Msg("search-stopped-early")
	}

	if result.OK {
		log.Info().
			Stringer("move", result.BestMove).
			Float64("prob", result.Prob).
			Uint64("playouts", e.stats.Playouts()).
			Uint32("ms", e.Limiter.Elapsed()).
			Msg("best-move")
	} else {
		log.Info().Int("candidates", len(moves)).Msg("no-move")
	}

	e.listener.invokeStop(e, len(moves))
	return result
}

func toCandidateStats(candidates []Candidate, i int) CandidateStats {
	c := candidates[i]
	return CandidateStats{
		Index: i,
		Total: len(candidates),
		Move:  c.Move,
		Board: c.Board,
		Prob:  c.Prob,

		Playouts: c.Playouts,
	}
}
