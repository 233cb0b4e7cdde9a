package rollout

import (
	"math/rand"

	"github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"
)

// Play a single game from 'b', with 'first' to move, sides alternate after every move.
// The game ends when the side to move has no legal move, then the board is judged.
// Reaching 'maxPlies' moves counts as an unfinished game.
// Returns the outcome and the number of moves played
func Playout(b dograbbit.Board, first dograbbit.Entity, maxPlies int, policy Policy, rng *rand.Rand) (dograbbit.Outcome, int) {
	next := first
	for ply := range maxPlies {
		h, ok := policy(b, next, rng)
		if !ok {
			return dograbbit.Judge(b), ply
		}
		b = h
		next = next.Opposite()
	}
	return dograbbit.InProgress, maxPlies
}

func (e *Engine) randomPolicy(b dograbbit.Board, side dograbbit.Entity, rng *rand.Rand) (dograbbit.Board, bool) {
	return PlayRandom(b, side, rng)
}

// Lookahead policy starting at depth 0 on every ply
func (e *Engine) goodPolicy(b dograbbit.Board, side dograbbit.Entity, rng *rand.Rand) (dograbbit.Board, bool) {
	return e.PlayGood(b, side, 0, rng)
}
