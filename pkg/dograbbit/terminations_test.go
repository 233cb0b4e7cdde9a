package dograbbit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJudge(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		want     Outcome
	}{
		{"startpos", StartingPosition, InProgress},
		{"empty board", "...../...../.....", InProgress},
		{"rabbit home top", ".R.../...../.....", RabbitWin},
		{"rabbit home gate", "...../R..../.....", RabbitWin},
		{"rabbit home bottom", "...../...../.R...", RabbitWin},
		{"rabbit through empty gate", "...../.R.../.....", RabbitWin},
		{"closed gate", "...../DR.../.....", InProgress},
		{"rabbit trapped", "...D./...DR/...D.", DogWin},
		{"pocket not closed", "...D./....R/...D.", InProgress},
		{"dogs without rabbit", "...D./...D./...D.", InProgress},
		// Home squares are checked before the trap
		{"home beats trap", ".R.D./...DR/...D.", RabbitWin},
		{"gate beats trap", "...D./.R.DR/...D.", RabbitWin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromNotation(tt.notation)
			require.NoError(t, err)
			require.Equal(t, tt.want, Judge(b))
		})
	}
}

func TestJudgeIsPure(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	boards := make([]Board, 500)
	outcomes := make([]Outcome, len(boards))
	for i := range boards {
		boards[i] = randomBoard(r)
		outcomes[i] = Judge(boards[i])
	}

	// Judge again in reverse order, nothing may depend on call history
	for i := len(boards) - 1; i >= 0; i-- {
		require.Equal(t, outcomes[i], Judge(boards[i]))
	}
}

func TestOutcome(t *testing.T) {
	require.Equal(t, Dog, DogWin.Winner())
	require.Equal(t, Rabbit, RabbitWin.Winner())
	require.Equal(t, Empty, InProgress.Winner())

	require.True(t, DogWin.IsWinFor(Dog))
	require.False(t, DogWin.IsWinFor(Rabbit))
	require.False(t, InProgress.IsWinFor(Empty))
	require.True(t, RabbitWin.Terminated())
	require.False(t, InProgress.Terminated())
	require.Equal(t, "RabbitWin", RabbitWin.String())
}
