package models

// Tile is one cell of the board. Boards hand out copies, so mutating a
// returned Tile has no effect on the game.
type Tile struct {
	IsMine        bool
	AdjacentMines uint8
	Revealed      bool
	Flagged       bool
}

// Outcome reports what a reveal or chord did to the board.
type Outcome int

const (
	// OutcomeIgnored means the action did not apply and nothing changed.
	OutcomeIgnored Outcome = iota
	// OutcomeRevealed means safe tiles were revealed and the board is not yet cleared.
	OutcomeRevealed
	// OutcomeDetonated means the action hit a mine.
	OutcomeDetonated
	// OutcomeCleared means every non-mine tile is now revealed.
	OutcomeCleared
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRevealed:
		return "revealed"
	case OutcomeDetonated:
		return "detonated"
	case OutcomeCleared:
		return "cleared"
	default:
		return "ignored"
	}
}
