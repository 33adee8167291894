package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/dimaq12/minesweeper/game"
	"github.com/dimaq12/minesweeper/models"
)

func newSession(t *testing.T, width, height int, mines ...int) *game.Session {
	t.Helper()
	logger, _ := test.NewNullLogger()
	factory := func(cfg game.Config) *models.Board {
		b, err := models.NewBoardWithMines(cfg.Width, cfg.Height, mines)
		if err != nil {
			t.Fatalf("NewBoardWithMines: %v", err)
		}
		return b
	}
	s, err := game.New(game.Config{Width: width, Height: height, MineProbability: 0.2},
		game.WithBoardFactory(factory), game.WithLogger(logger))
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	return s
}

func TestCellContent(t *testing.T) {
	cases := []struct {
		name  string
		view  game.TileView
		over  bool
		text  string
		color tcell.Color
	}{
		{"hidden", game.TileView{}, false, ".", tcell.ColorGray},
		{"revealed count", game.TileView{Revealed: true, AdjacentMines: 3}, false, "3", tcell.ColorWhite},
		{"flag", game.TileView{Flagged: true}, false, "F", tcell.ColorBlue},
		{"mine hidden while running", game.TileView{IsMine: true}, false, ".", tcell.ColorGray},
		{"flagged mine hidden while running", game.TileView{IsMine: true, Flagged: true}, false, "F", tcell.ColorBlue},
		{"mine shown when over", game.TileView{IsMine: true}, true, "@", tcell.ColorRed},
		{"flagged mine when over", game.TileView{IsMine: true, Flagged: true}, true, "@", tcell.ColorGreen},
		{"wrong flag when over", game.TileView{Flagged: true}, true, "F", tcell.ColorBlue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, color := cellContent(tc.view, tc.over)
			if text != tc.text || color != tc.color {
				t.Fatalf("cellContent(%+v, %v) = %q, %v; want %q, %v", tc.view, tc.over, text, color, tc.text, tc.color)
			}
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{9*time.Second + 900*time.Millisecond, "0:09"},
		{75 * time.Second, "1:15"},
		{61 * time.Minute, "61:00"},
	}
	for _, tc := range cases {
		if got := formatElapsed(tc.d); got != tc.want {
			t.Errorf("formatElapsed(%v) = %q; want %q", tc.d, got, tc.want)
		}
	}
}

func TestHeaderText(t *testing.T) {
	st := game.State{Phase: game.PhaseLose, RemainingMines: 4, Elapsed: 83 * time.Second, Timed: true}
	got := headerText(st)
	for _, want := range []string{"You Lost", "Minecount: 4", "1:23"} {
		if !strings.Contains(got, want) {
			t.Errorf("headerText() = %q; missing %q", got, want)
		}
	}
	if got := headerText(game.State{Phase: game.PhaseMenu}); !strings.Contains(got, "-:--") {
		t.Errorf("idle header = %q; want placeholder clock", got)
	}
}

func TestTaskForKey(t *testing.T) {
	cases := []struct {
		event *tcell.EventKey
		want  game.TaskType
		ok    bool
	}{
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), game.RevealTaskType, true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), game.RevealTaskType, true},
		{tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), game.FlagTaskType, true},
		{tcell.NewEventKey(tcell.KeyRune, 'C', tcell.ModNone), game.ChordTaskType, true},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), game.StartTaskType, true},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), game.ResetTaskType, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), 0, false},
	}
	for _, tc := range cases {
		task, ok := TaskForKey(tc.event, 7)
		if ok != tc.ok {
			t.Fatalf("TaskForKey(%v) ok = %v; want %v", tc.event.Name(), ok, tc.ok)
		}
		if ok && (task.Type != tc.want || task.Index != 7) {
			t.Fatalf("TaskForKey(%v) = %+v; want %v at 7", tc.event.Name(), task, tc.want)
		}
	}
}

func TestTaskForMouse(t *testing.T) {
	cases := []struct {
		phase  game.Phase
		action tview.MouseAction
		want   game.TaskType
		ok     bool
	}{
		{game.PhaseRunning, tview.MouseLeftClick, game.RevealTaskType, true},
		{game.PhaseRunning, tview.MouseRightClick, game.FlagTaskType, true},
		{game.PhaseRunning, tview.MouseMiddleClick, game.ChordTaskType, true},
		{game.PhaseMenu, tview.MouseMiddleClick, game.StartTaskType, true},
		{game.PhaseWin, tview.MouseMiddleClick, game.ResetTaskType, true},
		{game.PhaseLose, tview.MouseMiddleClick, game.ResetTaskType, true},
		{game.PhaseRunning, tview.MouseMove, 0, false},
	}
	for _, tc := range cases {
		task, ok := TaskForMouse(tc.phase, tc.action, 2)
		if ok != tc.ok || (ok && task.Type != tc.want) {
			t.Fatalf("TaskForMouse(%v, %v) = %+v, %v; want %v, %v", tc.phase, tc.action, task, ok, tc.want, tc.ok)
		}
	}
}

func TestControllerHandleKey(t *testing.T) {
	s := newSession(t, 3, 3, 0)
	r := NewRenderer()
	quit := false
	logger, _ := test.NewNullLogger()
	c := NewGameController(s, r, logger, func() { quit = true })
	r.DrawBoard(s.Snapshot())

	press := func(key tcell.Key, ch rune) *tcell.EventKey {
		return c.HandleKey(tcell.NewEventKey(key, ch, tcell.ModNone))
	}

	if ev := press(tcell.KeyRune, 's'); ev != nil {
		t.Fatal("start key not consumed")
	}
	if s.Phase() != game.PhaseRunning {
		t.Fatalf("phase = %v; want running", s.Phase())
	}

	r.boardTable.Select(1, 1)
	press(tcell.KeyEnter, 0)
	if tile, _ := s.Tile(4); !tile.Revealed {
		t.Fatal("enter did not reveal the selected tile")
	}
	if text := r.boardTable.GetCell(1, 1).Text; text != "1" {
		t.Fatalf("cell (1,1) = %q; want %q", text, "1")
	}

	r.boardTable.Select(0, 0)
	press(tcell.KeyRune, 'f')
	if tile, _ := s.Tile(0); !tile.Flagged {
		t.Fatal("f did not flag the selected tile")
	}
	if text := r.boardTable.GetCell(0, 0).Text; text != "F" {
		t.Fatalf("cell (0,0) = %q; want F", text)
	}

	r.boardTable.Select(1, 1)
	press(tcell.KeyRune, 'c')
	if s.Phase() != game.PhaseWin {
		t.Fatalf("phase after chord = %v; want win", s.Phase())
	}
	if text := r.boardTable.GetCell(0, 0).Text; text != "@" {
		t.Fatalf("flagged mine after win = %q; want @", text)
	}

	if ev := press(tcell.KeyDown, 0); ev == nil {
		t.Fatal("navigation key was swallowed")
	}
	press(tcell.KeyRune, 'q')
	if !quit {
		t.Fatal("q did not quit")
	}
}
