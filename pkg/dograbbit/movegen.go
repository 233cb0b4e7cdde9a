package dograbbit

// Generate all legal moves for 'side', scanning source cells row by row and
// destinations in adjacency table order. Empty side has no moves
func (b Board) GenerateMoves(side Entity) []Move {
	if side == Empty {
		return nil
	}

	moves := make([]Move, 0, 8)
	for i := range Rows {
		for j := range Cols {
			if b[i][j] != side {
				continue
			}

			from := Square{Row: i, Col: j}
			for _, to := range Neighbors(side, from) {
				if b[to.Row][to.Col] != Empty {
					continue
				}
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}

	return moves
}

// Whether 'm' is a legal move for 'side' on this board
func (b Board) IsLegal(side Entity, m Move) bool {
	if side == Empty || !m.From.Valid() || !m.To.Valid() {
		return false
	}
	return b.At(m.From) == side && b.At(m.To) == Empty && Adjacent(side, m.From, m.To)
}

func (b Board) CanMove(side Entity) bool {
	return len(b.GenerateMoves(side)) != 0
}
