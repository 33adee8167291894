package game

import (
	"time"

	"github.com/dimaq12/minesweeper/models"
)

// TileView is the per-tile state handed to renderers. IsMine is always
// filled in; hiding it outside terminal phases is the renderer's job.
type TileView struct {
	Revealed      bool
	Flagged       bool
	IsMine        bool
	AdjacentMines uint8
}

// State is a read-only snapshot of a session.
type State struct {
	Phase          Phase
	Width          int
	Height         int
	Tiles          []TileView
	RemainingMines int
	Elapsed        time.Duration
	// Timed is false while the stopwatch is idle.
	Timed bool
}

// At returns the view for a row and column.
func (st State) At(row, col int) TileView {
	return st.Tiles[row*st.Width+col]
}

// Snapshot copies the current state out of the session.
func (s *Session) Snapshot() State {
	tiles := make([]TileView, s.board.Len())
	for i := range tiles {
		t, _ := s.board.Tile(i)
		tiles[i] = viewOf(t)
	}
	elapsed, timed := s.watch.Elapsed()
	return State{
		Phase:          s.phase,
		Width:          s.board.Width(),
		Height:         s.board.Height(),
		Tiles:          tiles,
		RemainingMines: s.board.RemainingMines(),
		Elapsed:        elapsed,
		Timed:          timed,
	}
}

func viewOf(t models.Tile) TileView {
	return TileView{
		Revealed:      t.Revealed,
		Flagged:       t.Flagged,
		IsMine:        t.IsMine,
		AdjacentMines: t.AdjacentMines,
	}
}
