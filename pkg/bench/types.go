package bench

import (
	"sync/atomic"

	"github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "Player1"
	case VersusPl2Win:
		return "Player2"
	}
	return "Draw"
}

type VersusArenaStats struct {
	p1Wins     uint32
	p2Wins     uint32
	draws      uint32
	dogWins    uint32
	rabbitWins uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) DogWins() int {
	return int(atomic.LoadUint32(&vas.dogWins))
}

func (vas *VersusArenaStats) RabbitWins() int {
	return int(atomic.LoadUint32(&vas.rabbitWins))
}

func (vas *VersusArenaStats) add(result VersusMatchResult, outcome dograbbit.Outcome) {
	switch result {
	case VersusPl1Win:
		atomic.AddUint32(&vas.p1Wins, 1)
	case VersusPl2Win:
		atomic.AddUint32(&vas.p2Wins, 1)
	default:
		atomic.AddUint32(&vas.draws, 1)
	}

	switch outcome {
	case dograbbit.DogWin:
		atomic.AddUint32(&vas.dogWins, 1)
	case dograbbit.RabbitWin:
		atomic.AddUint32(&vas.rabbitWins, 1)
	}
}

type VersusWorkerInfo struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	Game          int // global index of the game
	Boards        []dograbbit.Board
	Outcome       dograbbit.Outcome
	Result        VersusMatchResult
	P1Side        dograbbit.Entity
	P1Wins        int
	P2Wins        int
	Draws         int
	P1Name        string
	P2Name        string
}

// Number of moves played in the game
func (info VersusWorkerInfo) GameMoveNum() int {
	return max(0, len(info.Boards)-1)
}

type VersusSummaryInfo struct {
	TotalGames int    `json:"total_games"`
	P1Wins     int    `json:"player1_wins"`
	P2Wins     int    `json:"player2_wins"`
	DogWins    int    `json:"dog_wins"`
	RabbitWins int    `json:"rabbit_wins"`
	Draws      int    `json:"draws"`
	Workers    int    `json:"workers"`
	P1Name     string `json:"player1_name"`
	P2Name     string `json:"player2_name"`
}

// maps a game outcome to which agent won, given player 1's side
func toAgentResult(outcome dograbbit.Outcome, p1Side dograbbit.Entity) VersusMatchResult {
	if !outcome.Terminated() {
		return VersusDraw
	}

	if outcome.IsWinFor(p1Side) {
		return VersusPl1Win
	}
	return VersusPl2Win
}
