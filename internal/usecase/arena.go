package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-dograbbit/pkg/bench"
	"github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"
)

// RunArena plays cfg.Games games between the two configured agents and writes
// the per-game lines (verbose), the summary table, or the summary as JSON
func RunArena(ctx context.Context, cfg *ArenaConfig, w io.Writer) (bench.VersusSummaryInfo, error) {
	position, err := dograbbit.FromNotation(cfg.Board)
	if err != nil {
		return bench.VersusSummaryInfo{}, fmt.Errorf("arena position: %w", err)
	}

	// The agents search single threaded, the arena spreads the games instead
	threads := uint(max(1, cfg.Limits.NThreads))
	cfg.Limits.SetThreads(1)

	cfg.ApplySeed()
	p1, err := bench.NewAgent(cfg.Player1, cfg.Limits)
	if err != nil {
		return bench.VersusSummaryInfo{}, fmt.Errorf("player1: %w", err)
	}
	p2, err := bench.NewAgent(cfg.Player2, cfg.Limits)
	if err != nil {
		return bench.VersusSummaryInfo{}, fmt.Errorf("player2: %w", err)
	}

	arena := bench.NewVersusArena(position, p1, p2).WithContext(ctx)
	arena.Setup(cfg.Games, threads)
	arena.MaxPlies = cfg.MaxPlies
	arena.First = cfg.First

	listener := bench.NewArenaListener()
	if cfg.JSON {
		listener.Add(bench.NewJSONListener(w))
	} else {
		var opts []termenv.OutputOption
		if !cfg.Color {
			opts = append(opts, termenv.WithProfile(termenv.Ascii))
		}
		text := bench.NewTextListener(w, opts...)
		text.Verbose = cfg.Verbose
		listener.Add(text)
	}

	log.Info().
		Str("player1", p1.Name()).
		Str("player2", p2.Name()).
		Uint("games", cfg.Games).
		Uint("workers", threads).
		Str("position", position.Notation()).
		Msg("arena-start")

	summary := arena.Run(listener)
	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}
