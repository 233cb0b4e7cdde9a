package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"
)

// Called by the arena workers, implementations must be safe for concurrent use
type ListenerLike interface {
	OnStart()
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
	OnEnd()
}

type DefaultListener struct{}

func (DefaultListener) OnStart()                        {}
func (DefaultListener) OnFinishedGame(VersusWorkerInfo) {}
func (DefaultListener) OnFinishedWork(VersusWorkerInfo) {}
func (DefaultListener) Summary(VersusSummaryInfo)       {}
func (DefaultListener) OnEnd()                          {}

// Prints a line per finished game and a summary table
type TextListener struct {
	mu      sync.Mutex
	out     *termenv.Output
	Verbose bool // print every game, not only the summary
}

// Output profile is detected from 'w', pass termenv.Ascii to disable the colors
func NewTextListener(w io.Writer, opts ...termenv.OutputOption) *TextListener {
	return &TextListener{out: termenv.NewOutput(w, opts...)}
}

func (l *TextListener) styled(s, color string) string {
	if l.out.Profile == termenv.Ascii {
		return s
	}
	return l.out.String(s).Foreground(l.out.Color(color)).Bold().String()
}

func (l *TextListener) outcome(o dograbbit.Outcome) string {
	switch o {
	case dograbbit.DogWin:
		return l.styled(o.String(), "1")
	case dograbbit.RabbitWin:
		return l.styled(o.String(), "2")
	}
	return l.styled("Draw", "8")
}

func (l *TextListener) OnStart() {}

func (l *TextListener) OnFinishedGame(info VersusWorkerInfo) {
	if !l.Verbose {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[worker %d] game %d (%d/%d): %s (%v) vs %s (%v) -> %s in %d plies\n",
		info.WorkerID, info.Game, info.FinishedGames, info.NGames,
		info.P1Name, info.P1Side, info.P2Name, info.P1Side.Opposite(),
		l.outcome(info.Outcome), info.GameMoveNum())
}

func (l *TextListener) OnFinishedWork(info VersusWorkerInfo) {
	if !l.Verbose {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[worker %d] done: %d games, %s %d, %s %d, draws %d\n",
		info.WorkerID, info.FinishedGames, info.P1Name, info.P1Wins, info.P2Name, info.P2Wins, info.Draws)
}

func (l *TextListener) Summary(s VersusSummaryInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	percent := func(n int) float64 {
		if s.TotalGames == 0 {
			return 0
		}
		return 100 * float64(n) / float64(s.TotalGames)
	}

	fmt.Fprintf(l.out, "%s\n", l.styled(fmt.Sprintf("%s vs %s, %d games on %d workers", s.P1Name, s.P2Name, s.TotalGames, s.Workers), "4"))
	fmt.Fprintf(l.out, "%-10s %6d %6.1f%%\n", s.P1Name, s.P1Wins, percent(s.P1Wins))
	fmt.Fprintf(l.out, "%-10s %6d %6.1f%%\n", s.P2Name, s.P2Wins, percent(s.P2Wins))
	fmt.Fprintf(l.out, "%-10s %6d %6.1f%%\n", "draws", s.Draws, percent(s.Draws))
	fmt.Fprintf(l.out, "%-10s %6d %6.1f%%\n", l.outcome(dograbbit.DogWin), s.DogWins, percent(s.DogWins))
	fmt.Fprintf(l.out, "%-10s %6d %6.1f%%\n", l.outcome(dograbbit.RabbitWin), s.RabbitWins, percent(s.RabbitWins))
}

func (l *TextListener) OnEnd() {}

// Writes the summary as a single JSON object
type JSONListener struct {
	DefaultListener
	w io.Writer
}

func NewJSONListener(w io.Writer) *JSONListener {
	return &JSONListener{w: w}
}

func (l *JSONListener) Summary(s VersusSummaryInfo) {
	enc := json.NewEncoder(l.w)
	_ = enc.Encode(s)
}
