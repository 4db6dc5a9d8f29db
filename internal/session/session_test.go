package session

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duke/internal/command"
	"duke/internal/logging"
	"duke/internal/storage"
	"duke/internal/task"
)

type memStore struct {
	tasks   []task.Task
	saves   int
	saveErr error
	loadErr error
}

func (m *memStore) FetchTasks() ([]task.Task, error) {
	return m.tasks, m.loadErr
}

func (m *memStore) SaveTasks(tasks []task.Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.tasks = tasks
	return nil
}

func jan10() time.Time {
	return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
}

func TestHandleSavesOnlyChanges(t *testing.T) {
	store := &memStore{}
	s, err := New(store, logging.Discard(), jan10)
	require.NoError(t, err)

	r := s.Handle("deadline submit report /by 2024-01-11")
	assert.Contains(t, r.Text, "Got it.")
	assert.Equal(t, 1, store.saves)

	r = s.Handle("reminder")
	assert.Equal(t, "Upcoming deadline(s): \n1. [D][ ] submit report (by: Jan 11 2024)\n", r.Text)
	assert.False(t, r.Exit)
	assert.Equal(t, 1, store.saves)

	r = s.Handle("bye")
	assert.True(t, r.Exit)
	assert.Equal(t, command.ByeMessage, r.Text)
}

func TestHandleErrorsBecomeReplies(t *testing.T) {
	var buf bytes.Buffer
	store := &memStore{}
	s, err := New(store, logging.NewWithWriter(&buf), jan10)
	require.NoError(t, err)

	r := s.Handle("reminder extra text")
	assert.Equal(t, "There should be no description after 'reminder'", r.Text)
	assert.False(t, r.Exit)

	r = s.Handle("blah")
	assert.Equal(t, command.ErrUnknownCommand.Error(), r.Text)

	r = s.Handle("done 3")
	assert.Equal(t, "There is no task number 3", r.Text)

	assert.Zero(t, store.saves)
	assert.Contains(t, buf.String(), "invalid argument")
	assert.Contains(t, buf.String(), "command=reminder")
}

func TestHandleReportsSaveFailure(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	s, err := New(store, logging.Discard(), jan10)
	require.NoError(t, err)

	r := s.Handle("todo read book")
	assert.Contains(t, r.Text, "Got it.")
	assert.Contains(t, r.Text, "failed to save tasks: disk full")
	assert.Len(t, s.Tasks(), 1)
}

func TestNewLoadFailure(t *testing.T) {
	_, err := New(&memStore{loadErr: errors.New("locked")}, logging.Discard(), jan10)
	assert.ErrorContains(t, err, "locked")
}

func TestSessionPersistsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duke.db")

	store, err := storage.Open(path)
	require.NoError(t, err)
	s, err := New(store, logging.Discard(), jan10)
	require.NoError(t, err)
	s.Handle("todo buy milk")
	s.Handle("deadline pay bill /by 2024-01-12")
	s.Handle("done 1")
	require.NoError(t, store.Close())

	store, err = storage.Open(path)
	require.NoError(t, err)
	defer store.Close()
	s, err = New(store, logging.Discard(), jan10)
	require.NoError(t, err)

	r := s.Handle("list")
	assert.Equal(t, "Here are the tasks in your list:\n"+
		"1. [T][X] buy milk\n"+
		"2. [D][ ] pay bill (by: Jan 12 2024)\n", r.Text)

	r = s.Handle("reminder")
	assert.Equal(t, "Upcoming deadline(s): \n1. [D][ ] pay bill (by: Jan 12 2024)\n", r.Text)
}
