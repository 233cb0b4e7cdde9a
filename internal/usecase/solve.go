package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"
	"github.com/IlikeChooros/go-dograbbit/pkg/rollout"
)

// Printed when the side to move has no best move
const NoMove = "-1"

func (cfg *SolveConfig) readBoard(r io.Reader) (dograbbit.Board, error) {
	switch {
	case cfg.Board != "":
		return dograbbit.FromNotation(cfg.Board)
	case cfg.Lenient:
		return dograbbit.ReadBoardLenient(r)
	}
	return dograbbit.ReadBoard(r)
}

// Solve reads the board, picks the best move for cfg.Next and writes the resulting
// board, or NoMove. With cfg.Mirror the search runs on the mirrored board, and the
// verbose diagnostics show that orientation
func Solve(ctx context.Context, cfg *SolveConfig, r io.Reader, w io.Writer) error {
	b, err := cfg.readBoard(r)
	if err != nil {
		return fmt.Errorf("reading board: %w", err)
	}

	if cfg.Mirror {
		b = b.Mirror()
	}

	cfg.ApplySeed()
	engine := rollout.NewEngine()
	if cfg.Limits != nil {
		engine.SetLimits(cfg.Limits)
	}
	engine.SetContext(ctx)

	if cfg.Verbose {
		renderer := NewRenderer(w, cfg.Color)
		listener := rollout.NewStatsListener()
		listener.OnCandidate(renderer.Candidate)
		engine.SetListener(listener)
	}

	log.Debug().Str("board", b.Notation()).Stringer("next", cfg.Next).Bool("mirror", cfg.Mirror).Msg("solve")
	result := engine.Solve(b, cfg.Next)
	if !result.OK {
		_, err = fmt.Fprintln(w, NoMove)
		return err
	}

	best := result.Best
	if cfg.Mirror {
		best = best.Mirror()
	}
	_, err = best.WriteTo(w)
	return err
}
