package rollout

import (
	"math/rand"

	"github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"
)

// Neutral probability, returned for the Empty side
const neutralProb = 0.5

func (e *Engine) estimate(b dograbbit.Board, side dograbbit.Entity, trials int, policy Policy, rng *rand.Rand) Estimate {
	est := Estimate{Side: side}
	maxPlies := e.Limiter.Limits().MaxPlies

	for range trials {
		if !e.Limiter.Ok() {
			break
		}

		outcome, plies := Playout(b, side, maxPlies, policy, rng)
		e.stats.addPlayout(plies)

		// Nested estimations return early once stopped, so a playout
		// interrupted half way is not counted
		if !e.Limiter.Ok() {
			break
		}
		est.Add(outcome)
	}

	return est
}

// Estimate the winning chances of 'side', moving first on board 'b',
// as the fraction of 'trials' random playouts it won
func (e *Engine) ProbToWin(b dograbbit.Board, side dograbbit.Entity, trials int, rng *rand.Rand) float64 {
	if side == dograbbit.Empty {
		return neutralProb
	}
	return e.estimate(b, side, trials, e.randomPolicy, rng).WinRate()
}

// Same as ProbToWin, but both sides play with the lookahead policy,
// far more expensive, used only to rank the top level candidates
func (e *Engine) ProbToWinGood(b dograbbit.Board, side dograbbit.Entity, trials int, rng *rand.Rand) float64 {
	if side == dograbbit.Empty {
		return neutralProb
	}
	return e.estimate(b, side, trials, e.goodPolicy, rng).WinRate()
}
