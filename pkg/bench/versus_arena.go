package bench

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"
	"github.com/IlikeChooros/go-dograbbit/pkg/rollout"
)

/*
Arena benchmark subpackage, allows to play a series of Dog and Rabbit games
between two different agents. Player 1 plays the dogs in even games and the
rabbit in odd ones, so both agents get the same number of games on each side.
*/

const DefaultArenaMaxPlies = 100

type VersusArena struct {
	VersusArenaStats
	Player1  Agent
	Player2  Agent
	NGames   uint
	NThreads uint
	MaxPlies int              // games longer than this are drawn
	First    dograbbit.Entity // side to move first in every game
	Position dograbbit.Board
	group    *errgroup.Group
	listener ListenerLike
	ctx      context.Context
}

func NewVersusArena(position dograbbit.Board, p1, p2 Agent) *VersusArena {
	return &VersusArena{
		Player1:  p1,
		Player2:  p2,
		NGames:   100,
		NThreads: 2,
		MaxPlies: DefaultArenaMaxPlies,
		First:    dograbbit.Dog,
		Position: position,
		ctx:      context.Background(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) Setup(nGames uint, nThreads uint) {
	va.NGames = nGames
	va.NThreads = max(1, nThreads)
}

// Start equally distributed work between worker goroutines, returns immediately
func (va *VersusArena) Start(listener ListenerLike) {
	if listener == nil {
		listener = DefaultListener{}
	}
	va.listener = listener
	va.group = &errgroup.Group{}
	listener.OnStart()

	nThreads := max(1, va.NThreads)
	nGames := va.NGames / nThreads
	rest := va.NGames % nThreads
	offset := 0
	seed := rollout.SeedGeneratorFn()

	for i := range nThreads {
		n := int(nGames)
		if rest > 0 {
			n++
			rest--
		}

		// Always use a clone, agents keep their own random generators,
		// each one seeded differently so the workers don't replay the same games
		p1 := va.Player1.Clone()
		p2 := va.Player2.Clone()
		p1.Seed(seed + 2*int64(i))
		p2.Seed(seed + 2*int64(i) + 1)
		id, first := int(i), offset
		va.group.Go(func() error {
			va.worker(id, first, n, p1, p2)
			return nil
		})
		offset += n
	}
}

// Block until every worker is done, then report the summary
func (va *VersusArena) Wait() VersusSummaryInfo {
	if va.group != nil {
		_ = va.group.Wait()
	}

	summary := VersusSummaryInfo{
		TotalGames: va.Total(),
		P1Wins:     va.P1Wins(),
		P2Wins:     va.P2Wins(),
		DogWins:    va.DogWins(),
		RabbitWins: va.RabbitWins(),
		Draws:      va.Draws(),
		Workers:    int(max(1, va.NThreads)),
		P1Name:     va.Player1.Name(),
		P2Name:     va.Player2.Name(),
	}

	if va.listener != nil {
		va.listener.Summary(summary)
		va.listener.OnEnd()
	}
	return summary
}

func (va *VersusArena) Run(listener ListenerLike) VersusSummaryInfo {
	va.Start(listener)
	return va.Wait()
}

func (va *VersusArena) worker(id, first, nGames int, p1, p2 Agent) {
	log.Debug().Int("worker", id).Int("games", nGames).Msg("arena-worker-start")
	localStats := VersusArenaStats{}

	for i := range nGames {
		if va.ctx.Err() != nil {
			break
		}

		game := first + i
		p1Side := dograbbit.Dog
		if game%2 == 1 {
			p1Side = dograbbit.Rabbit
		}

		outcome, boards, ok := va.playGame(p1, p2, p1Side)
		if !ok {
			// Interrupted games are not counted
			break
		}

		result := toAgentResult(outcome, p1Side)
		va.add(result, outcome)
		localStats.add(result, outcome)

		va.listener.OnFinishedGame(VersusWorkerInfo{
			WorkerID:      id,
			NGames:        nGames,
			FinishedGames: i + 1,
			Game:          game,
			Boards:        boards,
			Outcome:       outcome,
			Result:        result,
			P1Side:        p1Side,
			P1Wins:        localStats.P1Wins(),
			P2Wins:        localStats.P2Wins(),
			Draws:         localStats.Draws(),
			P1Name:        p1.Name(),
			P2Name:        p2.Name(),
		})
	}

	va.listener.OnFinishedWork(VersusWorkerInfo{
		WorkerID:      id,
		NGames:        nGames,
		FinishedGames: localStats.Total(),
		P1Wins:        localStats.P1Wins(),
		P2Wins:        localStats.P2Wins(),
		Draws:         localStats.Draws(),
		P1Name:        p1.Name(),
		P2Name:        p2.Name(),
	})
	log.Debug().Int("worker", id).Int("finished", localStats.Total()).Msg("arena-worker-done")
}

// Play a single game from the arena's position, the board is judged before every move.
// Returns false if the game was interrupted by the context
func (va *VersusArena) playGame(p1, p2 Agent, p1Side dograbbit.Entity) (dograbbit.Outcome, []dograbbit.Board, bool) {
	b := va.Position
	boards := make([]dograbbit.Board, 1, va.MaxPlies+1)
	boards[0] = b
	side := va.First

	for range va.MaxPlies {
		if outcome := dograbbit.Judge(b); outcome.Terminated() {
			return outcome, boards, true
		}

		agent := p2
		if side == p1Side {
			agent = p1
		}

		next, ok := agent.Play(va.ctx, b, side)
		if va.ctx.Err() != nil {
			return dograbbit.InProgress, boards, false
		}
		if !ok {
			// Side to move is stuck, the frozen board decides
			break
		}

		b = next
		boards = append(boards, b)
		side = side.Opposite()
	}

	return dograbbit.Judge(b), boards, true
}
