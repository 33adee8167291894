package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/dimaq12/minesweeper/game"
)

type Renderer struct {
	boardTable *tview.Table
	header     *tview.TextView
	root       *tview.Flex
}

func NewRenderer() *Renderer {
	r := &Renderer{
		boardTable: tview.NewTable(),
		header:     tview.NewTextView(),
	}
	r.header.SetTextAlign(tview.AlignCenter)
	r.boardTable.SetSelectable(true, true)
	r.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(r.header, 3, 0, false).
		AddItem(r.boardTable, 0, 1, true)
	return r
}

// Root is the primitive to mount in the application.
func (r *Renderer) Root() tview.Primitive { return r.root }

func (r *Renderer) DrawBoard(st game.State) {
	r.DrawHeader(st)
	for row := 0; row < st.Height; row++ {
		for col := 0; col < st.Width; col++ {
			r.RenderCell(st, row, col)
		}
	}
}

func (r *Renderer) DrawHeader(st game.State) {
	r.header.SetText(headerText(st))
}

func (r *Renderer) RenderCell(st game.State, row, col int) {
	text, color := cellContent(st.At(row, col), st.Phase.Over())
	r.boardTable.SetCell(row, col, tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(color))
}

// cellContent picks the glyph for a tile. Mines stay hidden until the game
// is over.
func cellContent(v game.TileView, over bool) (string, tcell.Color) {
	switch {
	case v.Revealed && !v.Flagged:
		return fmt.Sprintf("%d", v.AdjacentMines), tcell.ColorWhite
	case v.Flagged && v.IsMine && over:
		return "@", tcell.ColorGreen
	case v.Flagged:
		return "F", tcell.ColorBlue
	case v.IsMine && over:
		return "@", tcell.ColorRed
	default:
		return ".", tcell.ColorGray
	}
}

func headerText(st game.State) string {
	var banner string
	switch st.Phase {
	case game.PhaseMenu:
		banner = "Menu! press s to start"
	case game.PhaseLose:
		banner = "You Lost, press r to play again"
	case game.PhaseWin:
		banner = "You Win, press r to play again"
	default:
		banner = "enter reveal, f flag, c chord, r reset, q quit"
	}
	clock := "-:--"
	if st.Timed {
		clock = formatElapsed(st.Elapsed)
	}
	return fmt.Sprintf("%s\nMinecount: %d    %s", banner, st.RemainingMines, clock)
}

// formatElapsed renders whole seconds as m:ss.
func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
