package usecase

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"
	"github.com/IlikeChooros/go-dograbbit/pkg/rollout"
)

// Writes boards and verbose diagnostics, colored only if asked for and supported by the output
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(w io.Writer, color bool) *Renderer {
	if !color {
		return &Renderer{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
	}
	return &Renderer{out: termenv.NewOutput(w)}
}

func (r *Renderer) colored() bool {
	return r.out.Profile != termenv.Ascii
}

func (r *Renderer) cell(e dograbbit.Entity) string {
	s := string(e.Byte())
	if !r.colored() {
		return s
	}

	switch e {
	case dograbbit.Dog:
		return r.out.String(s).Foreground(r.out.Color("1")).Bold().String()
	case dograbbit.Rabbit:
		return r.out.String(s).Foreground(r.out.Color("2")).Bold().String()
	}
	return r.out.String(s).Faint().String()
}

// Board as three lines
func (r *Renderer) Board(b dograbbit.Board) string {
	if !r.colored() {
		return b.String()
	}

	var sb strings.Builder
	for row := range dograbbit.Rows {
		for col := range dograbbit.Cols {
			sb.WriteString(r.cell(b[row][col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Verbose block of a single candidate move
func (r *Renderer) Candidate(stats rollout.CandidateStats) {
	prob := fmt.Sprintf("Prob: %.3f", stats.Prob)
	if r.colored() {
		prob = r.out.String(prob).Underline().String()
	}

	fmt.Fprintf(r.out, "Choice %v\n", stats.Move)
	fmt.Fprint(r.out, r.Board(stats.Board))
	fmt.Fprintln(r.out, prob)
	fmt.Fprintln(r.out, "---")
}
