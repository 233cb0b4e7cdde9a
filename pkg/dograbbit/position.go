package dograbbit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// The board is a plain array, so assigning or passing it by value makes
// an independent copy, no board ever aliases another one
type Board [Rows][Cols]Entity

func (b Board) At(sq Square) Entity {
	if !sq.Valid() {
		panic(fmt.Sprintf("dograbbit: square %v is outside the board", sq))
	}
	return b[sq.Row][sq.Col]
}

// Number of cells holding given entity
func (b Board) Count(e Entity) int {
	n := 0
	for i := range Rows {
		for j := range Cols {
			if b[i][j] == e {
				n++
			}
		}
	}
	return n
}

// Return a copy of the board with the move applied, the move is not
// validated, use GenerateMoves to get legal ones
func (b Board) Play(m Move) Board {
	if !m.From.Valid() || !m.To.Valid() {
		panic(fmt.Sprintf("dograbbit: move %v is outside the board", m))
	}

	b[m.To.Row][m.To.Col] = b[m.From.Row][m.From.Col]
	b[m.From.Row][m.From.Col] = Empty
	return b
}

// Reverse the column order of each row
func (b Board) Mirror() Board {
	var m Board
	for i := range Rows {
		for j := range Cols {
			m[i][Cols-1-j] = b[i][j]
		}
	}
	return m
}

// Write the board in the text encoding, one newline-terminated line per row
func (b Board) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (b Board) String() string {
	builder := strings.Builder{}
	builder.Grow(Rows * (Cols + 1))
	for i := range Rows {
		for j := range Cols {
			builder.WriteByte(b[i][j].Byte())
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

// Cells are counted in characters, not bytes
func parseRow(line string, lenient bool) ([Cols]Entity, error) {
	var row [Cols]Entity
	line = strings.TrimSpace(line)
	cells := []rune(line)
	if !lenient && len(cells) != Cols {
		return row, fmt.Errorf("%w: row %q has width %d, want %d", ErrInvalidInputShape, line, len(cells), Cols)
	}

	for j := 0; j < Cols && j < len(cells); j++ {
		row[j] = EntityFromRune(cells[j])
	}
	return row, nil
}

func parseBoard(lines []string, lenient bool) (Board, error) {
	var b Board
	if !lenient && len(lines) < Rows {
		return b, fmt.Errorf("%w: got %d lines, want %d", ErrInvalidInputShape, len(lines), Rows)
	}

	for i := 0; i < Rows && i < len(lines); i++ {
		row, err := parseRow(lines[i], lenient)
		if err != nil {
			return b, fmt.Errorf("line %d: %w", i+1, err)
		}
		b[i] = row
	}
	return b, nil
}

// Build the board from the first 3 lines, each must be exactly 5 characters
// wide after trimming surrounding whitespace. Lines after the third are ignored
func ParseBoard(lines []string) (Board, error) {
	return parseBoard(lines, false)
}

// Same as ParseBoard, but never fails: rows are padded with Empty or truncated
// to 5 columns, and missing lines become empty rows
func ParseBoardLenient(lines []string) Board {
	b, _ := parseBoard(lines, true)
	return b
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)
	lines := make([]string, 0, Rows)
	for len(lines) < Rows && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// Read the board from 3 lines of text, see ParseBoard
func ReadBoard(r io.Reader) (Board, error) {
	lines, err := readLines(r)
	if err != nil {
		return Board{}, err
	}
	return ParseBoard(lines)
}

// Read the board from 3 lines of text, see ParseBoardLenient
func ReadBoardLenient(r io.Reader) (Board, error) {
	lines, err := readLines(r)
	if err != nil {
		return Board{}, err
	}
	return ParseBoardLenient(lines), nil
}
