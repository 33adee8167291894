package models

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrIndexOutOfRange is returned when a tile index falls outside [0, width*height).
	ErrIndexOutOfRange = errors.New("tile index out of range")
	// ErrInvalidSize is returned for boards with a non-positive width or height.
	ErrInvalidSize = errors.New("board dimensions must be positive")
)

// Board owns a row-major grid of tiles: index = row*width + col.
type Board struct {
	width       int
	height      int
	tiles       []Tile
	probability float64
	totalMines  int
	// revealedSafe and flagged are kept in step with tiles so that the win
	// check and the mine counter do not rescan the grid.
	revealedSafe int
	flagged      int
}

// GenerateBoard samples an independent Bernoulli trial with the given
// probability for every tile and then computes adjacency counts.
// The probability is expected to lie in [0, 1].
func GenerateBoard(width, height int, probability float64, rng *rand.Rand) *Board {
	b := newBoard(width, height)
	b.probability = probability
	for i := range b.tiles {
		// Float64 is in [0, 1), so probability 0 never places a mine and 1 always does.
		if rng.Float64() < probability {
			b.tiles[i].IsMine = true
		}
	}
	b.finish()
	return b
}

// NewBoardWithMines builds a board with mines on exactly the given indices.
// Duplicate indices are counted once.
func NewBoardWithMines(width, height int, mines []int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	b := newBoard(width, height)
	for _, idx := range mines {
		if !b.inRange(idx) {
			return nil, fmt.Errorf("mine at %d: %w", idx, ErrIndexOutOfRange)
		}
		b.tiles[idx].IsMine = true
	}
	b.finish()
	b.probability = float64(b.totalMines) / float64(len(b.tiles))
	return b, nil
}

func newBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// finish counts the mines and fills in AdjacentMines for every tile.
func (b *Board) finish() {
	b.totalMines = 0
	for i := range b.tiles {
		if b.tiles[i].IsMine {
			b.totalMines++
		}
	}
	for i := range b.tiles {
		var count uint8
		for _, n := range b.Neighbors(i) {
			if b.tiles[n].IsMine {
				count++
			}
		}
		b.tiles[i].AdjacentMines = count
	}
}

func (b *Board) inRange(idx int) bool {
	return idx >= 0 && idx < len(b.tiles)
}

func (b *Board) checkIndex(idx int) error {
	if !b.inRange(idx) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, len(b.tiles))
	}
	return nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Len returns the number of tiles.
func (b *Board) Len() int { return len(b.tiles) }

// MineProbability returns the per-tile mine probability the board was generated with.
func (b *Board) MineProbability() float64 { return b.probability }

// TotalMines returns the number of mines placed on the board.
func (b *Board) TotalMines() int { return b.totalMines }

// FlaggedCount returns the number of flagged tiles.
func (b *Board) FlaggedCount() int { return b.flagged }

// RemainingMines is the mine counter shown to the player. It goes negative
// when more tiles are flagged than there are mines.
func (b *Board) RemainingMines() int { return b.totalMines - b.flagged }

// Cleared reports whether every non-mine tile is revealed.
func (b *Board) Cleared() bool {
	return b.revealedSafe == len(b.tiles)-b.totalMines
}

// Index converts a row and column into a tile index.
func (b *Board) Index(row, col int) (int, error) {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return 0, fmt.Errorf("%w: row %d col %d on %dx%d board", ErrIndexOutOfRange, row, col, b.width, b.height)
	}
	return row*b.width + col, nil
}

// Tile returns a copy of the tile at idx.
func (b *Board) Tile(idx int) (Tile, error) {
	if err := b.checkIndex(idx); err != nil {
		return Tile{}, err
	}
	return b.tiles[idx], nil
}

// Neighbors returns the indices of the up to eight tiles around idx, clipped
// at the grid edges, ordered top-left to bottom-right. It returns nil for an
// out-of-range index.
func (b *Board) Neighbors(idx int) []int {
	if !b.inRange(idx) {
		return nil
	}
	row, col := idx/b.width, idx%b.width
	neighbors := make([]int, 0, 8)
	for deltaRow := -1; deltaRow <= 1; deltaRow++ {
		for deltaCol := -1; deltaCol <= 1; deltaCol++ {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}
			r, c := row+deltaRow, col+deltaCol
			if r < 0 || r >= b.height || c < 0 || c >= b.width {
				continue
			}
			neighbors = append(neighbors, r*b.width+c)
		}
	}
	return neighbors
}

// Reveal opens a single tile. Revealed and flagged tiles are ignored. A mine
// is reported as OutcomeDetonated and left unrevealed; there is no flood fill
// through zero-count tiles.
func (b *Board) Reveal(idx int) (Outcome, error) {
	if err := b.checkIndex(idx); err != nil {
		return OutcomeIgnored, err
	}
	tile := &b.tiles[idx]
	if tile.Revealed || tile.Flagged {
		return OutcomeIgnored, nil
	}
	if tile.IsMine {
		return OutcomeDetonated, nil
	}
	b.markRevealed(idx)
	if b.Cleared() {
		return OutcomeCleared, nil
	}
	return OutcomeRevealed, nil
}

// ToggleFlag flips the flag on an unrevealed tile and reports whether it did.
func (b *Board) ToggleFlag(idx int) (bool, error) {
	if err := b.checkIndex(idx); err != nil {
		return false, err
	}
	tile := &b.tiles[idx]
	if tile.Revealed {
		return false, nil
	}
	tile.Flagged = !tile.Flagged
	if tile.Flagged {
		b.flagged++
	} else {
		b.flagged--
	}
	return true, nil
}

// Chord reveals every unflagged neighbor of a revealed, unflagged, safe tile
// once the number of flagged neighbors equals its adjacency count. Flagged
// neighbors are skipped without looking at them. The pass always visits all
// neighbors, so safe tiles next to a hit mine are still revealed. Chord does
// not cascade.
func (b *Board) Chord(idx int) (Outcome, error) {
	if err := b.checkIndex(idx); err != nil {
		return OutcomeIgnored, err
	}
	tile := b.tiles[idx]
	if !tile.Revealed || tile.Flagged || tile.IsMine {
		return OutcomeIgnored, nil
	}

	neighbors := b.Neighbors(idx)
	var flags uint8
	for _, n := range neighbors {
		if b.tiles[n].Flagged {
			flags++
		}
	}
	if flags != tile.AdjacentMines {
		return OutcomeIgnored, nil
	}

	detonated := false
	for _, n := range neighbors {
		neighbor := b.tiles[n]
		switch {
		case neighbor.Flagged:
			continue
		case neighbor.IsMine:
			detonated = true
		case !neighbor.Revealed:
			b.markRevealed(n)
		}
	}

	switch {
	case detonated:
		return OutcomeDetonated, nil
	case b.Cleared():
		return OutcomeCleared, nil
	default:
		return OutcomeRevealed, nil
	}
}

func (b *Board) markRevealed(idx int) {
	b.tiles[idx].Revealed = true
	b.revealedSafe++
}
