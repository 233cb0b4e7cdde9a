package dograbbit

import "fmt"

const (
	Rows = 3
	Cols = 5
)

type Entity uint8

const (
	Empty  Entity = 0
	Dog    Entity = 1
	Rabbit Entity = 2
)

// Get the other side, Empty stays Empty
func (e Entity) Opposite() Entity {
	switch e {
	case Dog:
		return Rabbit
	case Rabbit:
		return Dog
	}
	return Empty
}

// Character used in the text encoding of the board
func (e Entity) Byte() byte {
	switch e {
	case Dog:
		return 'D'
	case Rabbit:
		return 'R'
	}
	return '.'
}

func (e Entity) String() string {
	switch e {
	case Dog:
		return "Dog"
	case Rabbit:
		return "Rabbit"
	}
	return "Empty"
}

// Map a single character to the entity, anything other than 'D' or 'R' is Empty
func EntityFromRune(c rune) Entity {
	switch c {
	case 'D':
		return Dog
	case 'R':
		return Rabbit
	}
	return Empty
}

// Parse the side to move, "D", "Dog", "dog" and "d" select Dog,
// everything else selects Rabbit
func ParseSide(s string) Entity {
	switch s {
	case "D", "Dog", "dog", "d":
		return Dog
	}
	return Rabbit
}

type Square struct {
	Row int
	Col int
}

func (sq Square) Valid() bool {
	return sq.Row >= 0 && sq.Row < Rows && sq.Col >= 0 && sq.Col < Cols
}

// Reflect the square left-right
func (sq Square) Mirror() Square {
	return Square{Row: sq.Row, Col: Cols - 1 - sq.Col}
}

func (sq Square) String() string {
	return fmt.Sprintf("(%d, %d)", sq.Row, sq.Col)
}

type Move struct {
	From Square
	To   Square
}

func (m Move) Mirror() Move {
	return Move{From: m.From.Mirror(), To: m.To.Mirror()}
}

func (m Move) String() string {
	return m.From.String() + " => " + m.To.String()
}
