package rollout

import (
	"math/rand"

	"github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"
)

// Picks the next board for 'side', returns false if the side cannot move
type Policy func(b dograbbit.Board, side dograbbit.Entity, rng *rand.Rand) (dograbbit.Board, bool)

func trivialMove(b dograbbit.Board, side dograbbit.Entity, moves []dograbbit.Move) (dograbbit.Board, bool) {
	for _, m := range moves {
		h := b.Play(m)
		if dograbbit.Judge(h).IsWinFor(side) {
			return h, true
		}
	}
	return b, false
}

// Play the first move (in generation order) that wins immediately for 'side',
// returns false if there is no such move
func PlayTrivial(b dograbbit.Board, side dograbbit.Entity) (dograbbit.Board, bool) {
	return trivialMove(b, side, b.GenerateMoves(side))
}

// Take the immediate win if there is one, otherwise play a uniformly random move,
// returns false if the side cannot move
func PlayRandom(b dograbbit.Board, side dograbbit.Entity, rng *rand.Rand) (dograbbit.Board, bool) {
	moves := b.GenerateMoves(side)
	if len(moves) == 0 {
		return b, false
	}

	if h, ok := trivialMove(b, side, moves); ok {
		return h, true
	}

	return b.Play(moves[rng.Intn(len(moves))]), true
}

// Lookahead policy: take the immediate win if there is one, otherwise play the move
// that minimizes opponent's chances, estimated with random playouts.
// From the cutoff depth on it plays like PlayRandom
func (e *Engine) PlayGood(b dograbbit.Board, side dograbbit.Entity, depth int, rng *rand.Rand) (dograbbit.Board, bool) {
	limits := e.Limiter.Limits()
	if depth >= limits.Cutoff {
		return PlayRandom(b, side, rng)
	}

	moves := b.GenerateMoves(side)
	if len(moves) == 0 {
		return b, false
	}

	if h, ok := trivialMove(b, side, moves); ok {
		return h, true
	}

	// Stays on the first move if none of them could be estimated before the stop
	best := b.Play(moves[0])
	bestProb := -1.0
	for _, m := range moves {
		h := b.Play(m)
		est := e.estimate(h, side.Opposite(), limits.LookaheadTrials, e.randomPolicy, rng)
		if !est.Completed() {
			continue
		}

		// Strict comparison, so the first of equally good moves is kept
		if q := 1.0 - est.WinRate(); q > bestProb {
			bestProb = q
			best = h
		}
	}

	return best, true
}
