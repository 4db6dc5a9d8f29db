package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"duke/internal/command"
	"duke/internal/task"
)

type TaskStore interface {
	FetchTasks() ([]task.Task, error)
	SaveTasks(tasks []task.Task) error
}

// Reply is the text shown to the user for one input line.
type Reply struct {
	Text string
	Exit bool
}

// Session runs input lines against the task list and keeps the store in sync.
type Session struct {
	store TaskStore
	log   logrus.FieldLogger
	today command.Clock
	tasks *task.List
}

func New(store TaskStore, log logrus.FieldLogger, today command.Clock) (*Session, error) {
	tasks, err := store.FetchTasks()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	log.WithField("count", len(tasks)).Debug("tasks loaded")
	return &Session{
		store: store,
		log:   log,
		today: today,
		tasks: task.NewList(tasks),
	}, nil
}

func (s *Session) Tasks() []task.Task {
	return s.tasks.All()
}

// Handle parses and executes one line. Command errors become the reply text.
func (s *Session) Handle(line string) Reply {
	word, _, _ := strings.Cut(strings.TrimSpace(line), " ")
	entry := s.log.WithField("command", word)
	entry.Debug("handling command")

	cmd, err := command.Parse(line, s.today)
	if err != nil {
		return s.failed(entry, err)
	}
	res, err := cmd.Execute(s.tasks)
	if err != nil {
		return s.failed(entry, err)
	}
	if res.Changed {
		if err := s.store.SaveTasks(s.tasks.All()); err != nil {
			entry.WithError(err).Error("failed to save tasks")
			return Reply{Text: res.Message + "\nfailed to save tasks: " + err.Error(), Exit: res.Exit}
		}
	}
	return Reply{Text: res.Message, Exit: res.Exit}
}

func (s *Session) failed(entry *logrus.Entry, err error) Reply {
	switch {
	case errors.Is(err, command.ErrInvalidArgument):
		entry.WithError(err).Info("invalid argument")
	case errors.Is(err, command.ErrUnknownCommand):
		entry.Info("unknown command")
	default:
		entry.WithError(err).Warn("command failed")
	}
	return Reply{Text: err.Error()}
}
