package game

import (
	"fmt"

	"github.com/dimaq12/minesweeper/models"
)

type TaskType int

const (
	StartTaskType TaskType = iota
	ResetTaskType
	RevealTaskType
	FlagTaskType
	ChordTaskType
)

func (t TaskType) String() string {
	switch t {
	case StartTaskType:
		return "start"
	case ResetTaskType:
		return "reset"
	case RevealTaskType:
		return "reveal"
	case FlagTaskType:
		return "flag"
	case ChordTaskType:
		return "chord"
	default:
		return fmt.Sprintf("TaskType(%d)", int(t))
	}
}

// Task is one player action. Index is ignored for start and reset.
type Task struct {
	Type  TaskType
	Index int
}

func NewTask(taskType TaskType, index int) Task {
	return Task{Type: taskType, Index: index}
}

// Dispatch applies a task to the session and reports whether anything changed.
func (s *Session) Dispatch(t Task) (bool, error) {
	switch t.Type {
	case StartTaskType:
		return s.Start(), nil
	case ResetTaskType:
		return s.Reset(), nil
	case RevealTaskType:
		out, err := s.Reveal(t.Index)
		return out != models.OutcomeIgnored, err
	case FlagTaskType:
		return s.ToggleFlag(t.Index)
	case ChordTaskType:
		out, err := s.Chord(t.Index)
		return out != models.OutcomeIgnored, err
	default:
		return false, fmt.Errorf("unknown task type %v", t.Type)
	}
}
