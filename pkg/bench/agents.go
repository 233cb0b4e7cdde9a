package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"
	"github.com/IlikeChooros/go-dograbbit/pkg/rollout"
)

var ErrUnknownAgent = errors.New("unknown agent")

// Agent names accepted by NewAgent
var AgentNames = []string{"solver", "lookahead", "random", "greedy"}

// A move-choice strategy taking part in the arena.
// Agents are not safe for concurrent use, every worker plays with its own clone
type Agent interface {
	Name() string
	// Play a move for 'side', false if the side cannot move
	Play(ctx context.Context, b dograbbit.Board, side dograbbit.Entity) (dograbbit.Board, bool)
	Clone() Agent
	// Reseed the agent's random generator, no-op for deterministic agents
	Seed(seed int64)
}

// Create a new agent by name, limits are used by the rollout-based agents
func NewAgent(name string, limits *rollout.Limits) (Agent, error) {
	switch name {
	case "solver":
		return NewSolverAgent(limits), nil
	case "lookahead":
		return NewLookaheadAgent(limits), nil
	case "random":
		return NewRandomAgent(), nil
	case "greedy":
		return GreedyAgent{}, nil
	}
	return nil, fmt.Errorf("%w: %q, want one of %v", ErrUnknownAgent, name, AgentNames)
}

// Plays the top level solver's choice
type SolverAgent struct {
	engine *rollout.Engine
}

func NewSolverAgent(limits *rollout.Limits) *SolverAgent {
	engine := rollout.NewEngine()
	engine.SetLimits(limits)
	return &SolverAgent{engine: engine}
}

func (a *SolverAgent) Name() string {
	return "solver"
}

func (a *SolverAgent) Play(ctx context.Context, b dograbbit.Board, side dograbbit.Entity) (dograbbit.Board, bool) {
	a.engine.SetContext(ctx)
	result := a.engine.Solve(b, side)
	if result.OK {
		return result.Best, true
	}

	// Every move looks lost, but the rules still require a move
	if len(result.Candidates) != 0 {
		return result.Candidates[0].Board, true
	}
	return b, false
}

func (a *SolverAgent) Clone() Agent {
	return &SolverAgent{engine: a.engine.Clone()}
}

func (a *SolverAgent) Seed(seed int64) {
	a.engine.SetRand(rand.New(rand.NewSource(seed)))
}

// Plays the lookahead policy, cheaper than the solver
type LookaheadAgent struct {
	engine *rollout.Engine
}

func NewLookaheadAgent(limits *rollout.Limits) *LookaheadAgent {
	engine := rollout.NewEngine()
	engine.SetLimits(limits)
	return &LookaheadAgent{engine: engine}
}

func (a *LookaheadAgent) Name() string {
	return "lookahead"
}

func (a *LookaheadAgent) Play(ctx context.Context, b dograbbit.Board, side dograbbit.Entity) (dograbbit.Board, bool) {
	a.engine.SetContext(ctx)
	a.engine.Limiter.Reset()
	return a.engine.PlayGood(b, side, 0, a.engine.Rand())
}

func (a *LookaheadAgent) Clone() Agent {
	return &LookaheadAgent{engine: a.engine.Clone()}
}

func (a *LookaheadAgent) Seed(seed int64) {
	a.engine.SetRand(rand.New(rand.NewSource(seed)))
}

type RandomAgent struct {
	rand *rand.Rand
}

func NewRandomAgent() *RandomAgent {
	return &RandomAgent{rand: rand.New(rand.NewSource(rollout.SeedGeneratorFn()))}
}

func (a *RandomAgent) Name() string {
	return "random"
}

func (a *RandomAgent) Play(_ context.Context, b dograbbit.Board, side dograbbit.Entity) (dograbbit.Board, bool) {
	return rollout.PlayRandom(b, side, a.rand)
}

func (a *RandomAgent) Clone() Agent {
	return NewRandomAgent()
}

func (a *RandomAgent) Seed(seed int64) {
	a.rand = rand.New(rand.NewSource(seed))
}

// Deterministic baseline: immediate win if possible, otherwise the first legal move
type GreedyAgent struct{}

func (GreedyAgent) Name() string {
	return "greedy"
}

func (GreedyAgent) Play(_ context.Context, b dograbbit.Board, side dograbbit.Entity) (dograbbit.Board, bool) {
	if h, ok := rollout.PlayTrivial(b, side); ok {
		return h, true
	}

	moves := b.GenerateMoves(side)
	if len(moves) == 0 {
		return b, false
	}
	return b.Play(moves[0]), true
}

func (g GreedyAgent) Clone() Agent {
	return g
}

func (GreedyAgent) Seed(int64) {}
