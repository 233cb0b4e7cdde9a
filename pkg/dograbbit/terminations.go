package dograbbit

type Outcome int

const (
	InProgress Outcome = 0
	DogWin     Outcome = 1
	RabbitWin  Outcome = 2
)

var (
	// Rabbit wins by standing on any of these
	_homeSquares = [...]Square{{0, 1}, {1, 0}, {2, 1}}

	// Rabbit also wins when the gate is empty and it stands next to it
	_gateSquare   = Square{1, 0}
	_gateNeighbor = Square{1, 1}

	// Dogs win by closing the pocket around the rabbit
	_trapSquares = [...]Square{{0, 3}, {1, 3}, {2, 3}, {1, 4}}
	_trapPattern = [...]Entity{Dog, Dog, Dog, Rabbit}
)

func (o Outcome) String() string {
	switch o {
	case DogWin:
		return "DogWin"
	case RabbitWin:
		return "RabbitWin"
	}
	return "InProgress"
}

// The winning side, Empty if the game is still in progress
func (o Outcome) Winner() Entity {
	switch o {
	case DogWin:
		return Dog
	case RabbitWin:
		return Rabbit
	}
	return Empty
}

func (o Outcome) IsWinFor(side Entity) bool {
	return side != Empty && o.Winner() == side
}

func (o Outcome) Terminated() bool {
	return o != InProgress
}

// Classify the board, rules are checked in order and the first match wins:
//
// 1. rabbit on a home square
//
// 2. rabbit next to an empty gate
//
// 3. rabbit trapped in the right-hand pocket by three dogs
func Judge(b Board) Outcome {
	for _, sq := range _homeSquares {
		if b.At(sq) == Rabbit {
			return RabbitWin
		}
	}

	if b.At(_gateSquare) == Empty && b.At(_gateNeighbor) == Rabbit {
		return RabbitWin
	}

	trapped := true
	for i, sq := range _trapSquares {
		if b.At(sq) != _trapPattern[i] {
			trapped = false
			break
		}
	}
	if trapped {
		return DogWin
	}

	return InProgress
}
