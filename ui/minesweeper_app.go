package ui

import (
	"context"
	"time"

	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/game"
)

const defaultRefresh = 500 * time.Millisecond

// MinesweeperApp runs a session inside a tview application. All session
// access happens on the tview event loop; the refresh ticker only queues
// header redraws onto it.
type MinesweeperApp struct {
	session    *game.Session
	renderer   *Renderer
	controller *GameController
	app        *tview.Application
	log        logrus.FieldLogger
	refresh    time.Duration
}

func NewMinesweeperApp(session *game.Session, log logrus.FieldLogger) *MinesweeperApp {
	a := &MinesweeperApp{
		session:  session,
		renderer: NewRenderer(),
		app:      tview.NewApplication(),
		log:      log,
		refresh:  defaultRefresh,
	}
	a.controller = NewGameController(session, a.renderer, log, a.app.Stop)
	return a
}

// Run blocks until the player quits or ctx is cancelled.
func (a *MinesweeperApp) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.renderer.DrawBoard(a.session.Snapshot())
	a.renderer.boardTable.SetInputCapture(a.controller.HandleKey)
	a.renderer.boardTable.SetMouseCapture(a.controller.HandleMouse)
	a.app.SetRoot(a.renderer.Root(), true).EnableMouse(true)

	go a.tick(ctx)

	cfg := a.session.Config()
	a.log.WithFields(logrus.Fields{
		"width":   cfg.Width,
		"height":  cfg.Height,
		"density": cfg.MineProbability,
	}).Info("starting game")
	err := a.app.Run()
	a.log.WithField("phase", a.session.Phase()).Info("game closed")
	return err
}

// tick keeps the stopwatch display moving.
func (a *MinesweeperApp) tick(ctx context.Context) {
	ticker := time.NewTicker(a.refresh)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			a.app.Stop()
			return
		case <-ticker.C:
			a.app.QueueUpdateDraw(func() {
				a.renderer.DrawHeader(a.session.Snapshot())
			})
		}
	}
}
