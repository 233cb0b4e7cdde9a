package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-dograbbit/pkg/bench"
	"github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"
	"github.com/IlikeChooros/go-dograbbit/pkg/rollout"
)

func TestMain(m *testing.M) {
	rollout.SetSeedGeneratorFn(func() int64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", rollout.SeedGeneratorFn())

	os.Exit(m.Run())
}

func solveConfig(next dograbbit.Entity) *SolveConfig {
	return &SolveConfig{
		CommonConfig: CommonConfig{
			Limits: rollout.DefaultLimits().SetTrials(12).SetLookaheadTrials(6),
		},
		Next: next,
	}
}

func runSolve(t *testing.T, cfg *SolveConfig, input string) string {
	t.Helper()
	out := &bytes.Buffer{}
	require.NoError(t, Solve(context.Background(), cfg, strings.NewReader(input), out))
	return out.String()
}

func mustParse(t *testing.T, output string) dograbbit.Board {
	t.Helper()
	b, err := dograbbit.ReadBoard(strings.NewReader(output))
	require.NoError(t, err, output)
	return b
}

func TestSolveStartpos(t *testing.T) {
	input := ".D...\nD...R\n.D...\n"
	out := runSolve(t, solveConfig(dograbbit.ParseSide("D")), input)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3, out)

	start := dograbbit.StartBoard()
	got := mustParse(t, out)
	require.Equal(t, start.Count(dograbbit.Dog), got.Count(dograbbit.Dog))
	require.Equal(t, start.Count(dograbbit.Rabbit), got.Count(dograbbit.Rabbit))
	require.Equal(t, start.At(dograbbit.Square{Row: 1, Col: 4}), got.At(dograbbit.Square{Row: 1, Col: 4}), "only a dog moves")

	found := false
	for _, m := range start.GenerateMoves(dograbbit.Dog) {
		found = found || start.Play(m) == got
	}
	require.True(t, found, "not a dog move: %s", got.Notation())
}

func TestSolveNoMove(t *testing.T) {
	// No dogs at all
	require.Equal(t, NoMove+"\n", runSolve(t, solveConfig(dograbbit.Dog), ".....\n....R\n.....\n"))

	// Fully blocked rabbit
	require.Equal(t, NoMove+"\n", runSolve(t, solveConfig(dograbbit.Rabbit), "...D.\n...DR\n...D.\n"))
}

func TestSolveRabbitHome(t *testing.T) {
	b, err := dograbbit.FromNotation(".R.../D..../.....")
	require.NoError(t, err)
	require.Equal(t, dograbbit.RabbitWin, dograbbit.Judge(b))

	// Every dog move is a certain loss
	require.Equal(t, NoMove+"\n", runSolve(t, solveConfig(dograbbit.Dog), b.String()))
}

func TestSolveMirrorSymmetry(t *testing.T) {
	start := dograbbit.StartBoard()
	direct := runSolve(t, solveConfig(dograbbit.Dog), start.String())

	cfg := solveConfig(dograbbit.Dog)
	cfg.Mirror = true
	mirrored := runSolve(t, cfg, start.Mirror().String())

	if direct == NoMove+"\n" {
		require.Equal(t, direct, mirrored)
		return
	}
	require.Equal(t, mustParse(t, direct).Mirror().String(), mirrored)
}

func TestSolveVerbose(t *testing.T) {
	cfg := solveConfig(dograbbit.Rabbit)
	cfg.Verbose = true

	out := runSolve(t, cfg, "..RD.\n..D..\n.....\n")
	want := "Choice (0, 2) => (0, 1)\n" +
		".R.D.\n..D..\n.....\n" +
		"Prob: 1.000\n" +
		"---\n" +
		".R.D.\n..D..\n.....\n"
	require.Equal(t, want, out)
}

func TestSolveBoardNotation(t *testing.T) {
	cfg := solveConfig(dograbbit.Rabbit)
	cfg.Board = "..RD./..D../....."

	// The input is not read
	require.Equal(t, ".R.D.\n..D..\n.....\n", runSolve(t, cfg, "garbage"))

	cfg.Board = "..RD./..D.."
	err := Solve(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{})
	require.ErrorIs(t, err, dograbbit.ErrInvalidNotation)
}

func TestSolveInputShape(t *testing.T) {
	cfg := solveConfig(dograbbit.Rabbit)
	out := &bytes.Buffer{}

	err := Solve(context.Background(), cfg, strings.NewReader("..RD\n..D..\n.....\n"), out)
	require.ErrorIs(t, err, dograbbit.ErrInvalidInputShape)
	require.Empty(t, out.String(), "nothing is printed before the board is valid")

	err = Solve(context.Background(), cfg, strings.NewReader("..RD.\n..D..\n"), out)
	require.ErrorIs(t, err, dograbbit.ErrInvalidInputShape)

	// Short rows are padded with empty cells
	cfg.Lenient = true
	require.Equal(t, ".R.D.\n..D..\n.....\n", runSolve(t, cfg, "..RD\n..D\n"))
}

func TestSolveThreads(t *testing.T) {
	cfg := solveConfig(dograbbit.Rabbit)
	cfg.Limits.SetThreads(4)
	require.Equal(t, ".R.D.\n..D..\n.....\n", runSolve(t, cfg, "..RD.\n..D..\n.....\n"))
}

func TestRenderer(t *testing.T) {
	b := dograbbit.StartBoard()
	plain := NewRenderer(&bytes.Buffer{}, false)
	require.Equal(t, b.String(), plain.Board(b))

	buf := &bytes.Buffer{}
	colored := &Renderer{out: termenv.NewOutput(buf, termenv.WithProfile(termenv.ANSI))}
	out := colored.Board(b)
	require.Contains(t, out, "\x1b[")
	require.Equal(t, 3, strings.Count(out, "\n"))
	require.Equal(t, 3, strings.Count(out, "D"))
	require.Equal(t, 1, strings.Count(out, "R"))

	colored.Candidate(rollout.CandidateStats{
		Move:  dograbbit.Move{From: dograbbit.Square{Row: 1, Col: 0}, To: dograbbit.Square{Row: 1, Col: 1}},
		Board: b,
		Prob:  0.25,
	})
	require.Contains(t, buf.String(), "Choice (1, 0) => (1, 1)\n")
	require.Contains(t, buf.String(), "Prob: 0.250")
	require.True(t, strings.HasSuffix(buf.String(), "---\n"))
}

func arenaConfig(p1, p2 string) *ArenaConfig {
	return &ArenaConfig{
		CommonConfig: CommonConfig{
			Limits: rollout.DefaultLimits().SetTrials(4).SetLookaheadTrials(2).SetThreads(2),
		},
		Player1:  p1,
		Player2:  p2,
		Games:    4,
		Board:    "startpos",
		First:    dograbbit.Dog,
		MaxPlies: 20,
	}
}

func TestRunArena(t *testing.T) {
	cfg := arenaConfig("greedy", "random")
	cfg.JSON = true

	out := &bytes.Buffer{}
	summary, err := RunArena(context.Background(), cfg, out)
	require.NoError(t, err)
	require.Equal(t, 4, summary.TotalGames)
	require.Equal(t, 2, summary.Workers)

	var decoded bench.VersusSummaryInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Equal(t, summary, decoded)

	cfg = arenaConfig("lookahead", "greedy")
	cfg.Verbose = true
	out.Reset()
	_, err = RunArena(context.Background(), cfg, out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "lookahead vs greedy, 4 games on 2 workers")
	require.Equal(t, 4, strings.Count(out.String(), "] game "))
}

func TestRunArenaErrors(t *testing.T) {
	_, err := RunArena(context.Background(), arenaConfig("alphazero", "random"), &bytes.Buffer{})
	require.ErrorIs(t, err, bench.ErrUnknownAgent)

	cfg := arenaConfig("random", "random")
	cfg.Board = "D"
	_, err = RunArena(context.Background(), cfg, &bytes.Buffer{})
	require.ErrorIs(t, err, dograbbit.ErrInvalidNotation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	summary, err := RunArena(ctx, arenaConfig("random", "random"), &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, summary.TotalGames)
}
