package rollout

import (
	"encoding/json"
	"strings"
)

type Limits struct {
	Trials          int
	LookaheadTrials int
	MaxPlies        int
	Cutoff          int
	Movetime        int
	NThreads        int
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return strings.TrimSpace(builder.String())
}

func DefaultLimits() *Limits {
	return &Limits{
		Trials:          DefaultTrials,
		LookaheadTrials: DefaultLookaheadTrials,
		MaxPlies:        DefaultMaxPlies,
		Cutoff:          DefaultCutoff,
		Movetime:        DefaultMovetimeLimit,
		NThreads:        1,
	}
}

// Set the number of lookahead playouts per candidate move
func (l *Limits) SetTrials(trials int) *Limits {
	l.Trials = max(1, trials)
	return l
}

// Set the number of random playouts the lookahead policy runs per move
func (l *Limits) SetLookaheadTrials(trials int) *Limits {
	l.LookaheadTrials = max(1, trials)
	return l
}

// Set the maximum length of a single playout
func (l *Limits) SetMaxPlies(plies int) *Limits {
	l.MaxPlies = max(0, plies)
	return l
}

func (l *Limits) SetCutoff(cutoff int) *Limits {
	l.Cutoff = max(0, cutoff)
	return l
}

// Set the maximum time for the solver to think, in milliseconds, negative means no limit
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	return l
}

func (l *Limits) SetThreads(threads int) *Limits {
	l.NThreads = max(threads, 1)
	return l
}
