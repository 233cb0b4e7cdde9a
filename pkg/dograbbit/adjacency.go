package dograbbit

import "fmt"

// The board graph, cells marked with a letter or '.' are playable:
//
//	. D-.-. .
//	 /|\|/|\
//	D-.-.-.-R
//	 \|/|\|/
//	. D . . .
//
// (0,0), (0,4), (2,0) and (2,4) are not part of the graph.
// Dogs and rabbits walk different edges, so each side has its own table,
// destinations are listed in the order the move generator emits them.

var _dogNeighbors = [Rows][Cols][]Square{
	{
		nil,
		{{1, 1}, {1, 2}, {0, 2}},
		{{1, 2}, {0, 3}},
		{{1, 3}},
		nil,
	},
	{
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 1}, {1, 2}, {2, 1}},
		{{0, 2}, {0, 3}, {1, 3}, {2, 2}, {2, 3}},
		{{0, 3}, {2, 3}},
		nil,
	},
	{
		nil,
		{{1, 1}, {1, 2}, {2, 2}},
		{{1, 2}, {2, 3}},
		{{1, 3}},
		nil,
	},
}

var _rabbitNeighbors = [Rows][Cols][]Square{
	{
		nil,
		nil,
		{{0, 1}, {1, 2}, {0, 3}},
		{{0, 2}, {1, 2}, {1, 3}, {1, 4}},
		nil,
	},
	{
		nil,
		{{0, 1}, {1, 0}, {1, 2}, {2, 1}},
		{{0, 1}, {0, 2}, {0, 3}, {1, 1}, {1, 3}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 3}, {1, 2}, {1, 4}, {2, 3}},
		{{0, 3}, {1, 3}, {2, 3}},
	},
	{
		nil,
		nil,
		{{2, 1}, {1, 2}, {2, 3}},
		{{2, 2}, {1, 2}, {1, 3}, {1, 4}},
		nil,
	},
}

// Squares reachable in one step by given entity from 'sq'.
// The returned slice is shared, callers must not modify it
func Neighbors(e Entity, sq Square) []Square {
	if !sq.Valid() {
		panic(fmt.Sprintf("dograbbit: square %v is outside the board", sq))
	}

	switch e {
	case Dog:
		return _dogNeighbors[sq.Row][sq.Col]
	case Rabbit:
		return _rabbitNeighbors[sq.Row][sq.Col]
	}
	return nil
}

// Whether 'to' is reachable in one step by given entity from 'from'
func Adjacent(e Entity, from, to Square) bool {
	for _, n := range Neighbors(e, from) {
		if n == to {
			return true
		}
	}
	return false
}
