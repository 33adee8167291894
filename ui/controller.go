package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/game"
)

// GameController turns terminal events into session tasks.
type GameController struct {
	session  *game.Session
	renderer *Renderer
	log      logrus.FieldLogger
	quit     func()
}

func NewGameController(session *game.Session, renderer *Renderer, log logrus.FieldLogger, quit func()) *GameController {
	if quit == nil {
		quit = func() {}
	}
	return &GameController{session: session, renderer: renderer, log: log, quit: quit}
}

// TaskForKey maps a key press on the tile at index to a task.
func TaskForKey(event *tcell.EventKey, index int) (game.Task, bool) {
	switch event.Key() {
	case tcell.KeyEnter:
		return game.NewTask(game.RevealTaskType, index), true
	case tcell.KeyRune:
		switch event.Rune() {
		case ' ':
			return game.NewTask(game.RevealTaskType, index), true
		case 'f', 'F':
			return game.NewTask(game.FlagTaskType, index), true
		case 'c', 'C':
			return game.NewTask(game.ChordTaskType, index), true
		case 's', 'S':
			return game.NewTask(game.StartTaskType, index), true
		case 'r', 'R':
			return game.NewTask(game.ResetTaskType, index), true
		}
	}
	return game.Task{}, false
}

// TaskForMouse maps a click on the tile at index to a task. The middle
// button starts from the menu, chords while running and resets a finished game.
func TaskForMouse(phase game.Phase, action tview.MouseAction, index int) (game.Task, bool) {
	switch action {
	case tview.MouseLeftClick:
		return game.NewTask(game.RevealTaskType, index), true
	case tview.MouseRightClick:
		return game.NewTask(game.FlagTaskType, index), true
	case tview.MouseMiddleClick:
		switch {
		case phase == game.PhaseMenu:
			return game.NewTask(game.StartTaskType, index), true
		case phase.Over():
			return game.NewTask(game.ResetTaskType, index), true
		default:
			return game.NewTask(game.ChordTaskType, index), true
		}
	}
	return game.Task{}, false
}

// Apply dispatches a task and redraws the board.
func (c *GameController) Apply(task game.Task) {
	changed, err := c.session.Dispatch(task)
	if err != nil {
		c.log.WithError(err).WithField("task", task.Type).Error("dispatch failed")
		return
	}
	if !changed {
		return
	}
	c.log.WithFields(logrus.Fields{
		"task":  task.Type,
		"index": task.Index,
		"phase": c.session.Phase(),
	}).Debug("task applied")
	c.renderer.DrawBoard(c.session.Snapshot())
}

func (c *GameController) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyRune && (event.Rune() == 'q' || event.Rune() == 'Q') {
		c.quit()
		return nil
	}

	row, col := c.renderer.boardTable.GetSelection()
	index, err := c.session.Index(row, col)
	if err != nil {
		return event
	}
	task, ok := TaskForKey(event, index)
	if !ok {
		// Arrow keys and the like move the selection.
		return event
	}
	c.Apply(task)
	return nil
}

func (c *GameController) HandleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if event == nil {
		return action, event
	}
	row, col := c.renderer.boardTable.CellAt(event.Position())
	index, err := c.session.Index(row, col)
	if err != nil {
		return action, event
	}
	if task, ok := TaskForMouse(c.session.Phase(), action, index); ok {
		c.Apply(task)
	}
	return action, event
}
