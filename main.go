package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/config"
	"github.com/dimaq12/minesweeper/game"
	"github.com/dimaq12/minesweeper/logging"
	"github.com/dimaq12/minesweeper/ui"
)

var errQuit = errors.New("quit")

// chooseLevel prompts until the player picks a level (1-5), 'c' for the
// configured custom board (returned as 0), or 'q'.
func chooseLevel(in io.Reader, out io.Writer) (int, error) {
	var input string
	for {
		fmt.Fprint(out, "Enter the level (1-5), 'c' for a custom board or 'q' to quit: ")
		if _, err := fmt.Fscan(in, &input); err != nil {
			return 0, fmt.Errorf("reading input: %w", err)
		}

		switch strings.ToLower(input) {
		case "q":
			return 0, errQuit
		case "c":
			return 0, nil
		}

		level, err := strconv.Atoi(input)
		if err == nil {
			if _, ok := config.PresetFor(level); ok {
				return level, nil
			}
		}

		fmt.Fprintln(out, "Invalid input. Please enter a level between 1 and 5, 'c' or 'q'.")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	closer, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfg.Level == 0 {
		if cfg.Level, err = chooseLevel(os.Stdin, os.Stdout); err != nil {
			return err
		}
	}
	board := cfg.Board()
	fmt.Printf("Board: %dx%d, mine density %.2f\n", board.Width, board.Height, board.Density)

	session, err := game.New(game.Config{
		Width:           board.Width,
		Height:          board.Height,
		MineProbability: board.Density,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return ui.NewMinesweeperApp(session, logrus.StandardLogger()).Run(ctx)
}

func main() {
	if err := run(); err != nil {
		if errors.Is(err, errQuit) {
			fmt.Println("Quitting...")
			return
		}
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(1)
	}
}
