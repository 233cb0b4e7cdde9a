package dograbbit

import (
	"fmt"
	"strings"
)

const StartingPosition = ".D.../D...R/.D..."

// Single line notation of the board, rows separated by '/'.
// Uses the same characters as the text encoding, for example the starting position:
//
//	.D.../D...R/.D...
//
// which is the board:
//
//	. D-.-. .
//	 /|\|/|\
//	D-.-.-.-R
//	 \|/|\|/
//	. D . . .
func (b Board) Notation() string {
	builder := strings.Builder{}
	for i := range Rows {
		if i != 0 {
			builder.WriteByte('/')
		}
		for j := range Cols {
			builder.WriteByte(b[i][j].Byte())
		}
	}
	return builder.String()
}

// Create the board from given notation, "startpos" is accepted as an alias of
// the starting position
func FromNotation(notation string) (Board, error) {
	notation = strings.TrimSpace(notation)
	if notation == "startpos" {
		notation = StartingPosition
	}

	rows := strings.Split(notation, "/")
	if len(rows) != Rows {
		return Board{}, fmt.Errorf("%w: %q has %d rows, want %d", ErrInvalidNotation, notation, len(rows), Rows)
	}

	var b Board
	for i, row := range rows {
		cells := []rune(row)
		if len(cells) != Cols {
			return Board{}, fmt.Errorf("%w: row %d of %q has %d cells, want %d", ErrInvalidNotation, i+1, notation, len(cells), Cols)
		}
		for j, c := range cells {
			b[i][j] = EntityFromRune(c)
		}
	}
	return b, nil
}

func StartBoard() Board {
	b, _ := FromNotation(StartingPosition)
	return b
}
