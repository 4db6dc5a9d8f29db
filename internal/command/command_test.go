package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duke/internal/task"
)

func TestParse(t *testing.T) {
	clock := fixedClock(2024, 1, 10)
	tests := []struct {
		in   string
		want Command
	}{
		{"reminder", &ReminderCommand{start: day(10), end: day(12)}},
		{"  reminder  ", &ReminderCommand{start: day(10), end: day(12)}},
		{"list", &ListCommand{}},
		{"todo read book", &AddCommand{task: task.NewTodo("read book")}},
		{"deadline submit report /by 2024-01-11", &AddCommand{task: task.NewDeadline("submit report", day(11))}},
		{"event party /at 2024-01-13", &AddCommand{task: task.NewEvent("party", day(13))}},
		{"done 2", &DoneCommand{index: 2}},
		{"delete 1", &DeleteCommand{index: 1}},
		{"find book", &FindCommand{keyword: "book"}},
		{"bye", &ByeCommand{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in, clock)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	clock := fixedClock(2024, 1, 10)
	tests := []struct {
		in      string
		message string
	}{
		{"", "Please enter a command"},
		{"reminder extra text", "There should be no description after 'reminder'"},
		{"list all", "There should be no description after 'list'"},
		{"bye now", "There should be no description after 'bye'"},
		{"todo", "The description of a todo cannot be empty"},
		{"deadline /by 2024-01-11", "The description of a deadline cannot be empty"},
		{"deadline report", "Please specify a date for the deadline with '/by YYYY-MM-DD'"},
		{"deadline report /by", "Please specify a date for the deadline with '/by YYYY-MM-DD'"},
		{"deadline report /by tomorrow", "Invalid date 'tomorrow', expected YYYY-MM-DD"},
		{"event party", "Please specify a date for the event with '/at YYYY-MM-DD'"},
		{"done", "Please specify a task number after 'done'"},
		{"delete x", "'x' is not a valid task number"},
		{"delete 0", "'0' is not a valid task number"},
		{"find", "Please specify a keyword to find"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cmd, err := Parse(tt.in, clock)
			require.Error(t, err)
			assert.Nil(t, cmd)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestParseUnknown(t *testing.T) {
	for _, in := range []string{"blah", "reminders", "TODO read"} {
		_, err := Parse(in, time.Now)
		assert.ErrorIs(t, err, ErrUnknownCommand, in)
		assert.NotErrorIs(t, err, ErrInvalidArgument, in)
	}
}

func run(t *testing.T, list *task.List, line string) Result {
	t.Helper()
	cmd, err := Parse(line, fixedClock(2024, 1, 10))
	require.NoError(t, err)
	res, err := cmd.Execute(list)
	require.NoError(t, err)
	return res
}

func TestTaskCommands(t *testing.T) {
	list := task.NewList(nil)

	res := run(t, list, "list")
	assert.Equal(t, ListEmpty, res.Message)

	res = run(t, list, "todo read book")
	assert.True(t, res.Changed)
	assert.Equal(t, "Got it. I've added this task:\n  [T][ ] read book\nNow you have 1 task(s) in the list.", res.Message)

	run(t, list, "deadline return book /by 2024-01-11")
	run(t, list, "event party /at 2024-01-20")

	res = run(t, list, "list")
	assert.False(t, res.Changed)
	assert.Equal(t, "Here are the tasks in your list:\n"+
		"1. [T][ ] read book\n"+
		"2. [D][ ] return book (by: Jan 11 2024)\n"+
		"3. [E][ ] party (at: Jan 20 2024)\n", res.Message)

	res = run(t, list, "done 2")
	assert.True(t, res.Changed)
	assert.Equal(t, "Nice! I've marked this task as done:\n  [D][X] return book (by: Jan 11 2024)", res.Message)

	res = run(t, list, "find BOOK")
	assert.Equal(t, "Here are the matching tasks in your list:\n"+
		"1. [T][ ] read book\n"+
		"2. [D][X] return book (by: Jan 11 2024)\n", res.Message)

	res = run(t, list, "find dinner")
	assert.Equal(t, FindNoMatch, res.Message)

	res = run(t, list, "delete 1")
	assert.True(t, res.Changed)
	assert.Equal(t, "Noted. I've removed this task:\n  [T][ ] read book\nNow you have 2 task(s) in the list.", res.Message)

	res = run(t, list, "bye")
	assert.True(t, res.Exit)
	assert.Equal(t, ByeMessage, res.Message)
}

func TestOutOfRangeIndex(t *testing.T) {
	list := task.NewList([]task.Task{task.NewTodo("only")})
	for _, line := range []string{"done 2", "delete 5"} {
		cmd, err := Parse(line, time.Now)
		require.NoError(t, err)
		_, err = cmd.Execute(list)
		assert.ErrorIs(t, err, ErrInvalidArgument, line)
		assert.Contains(t, err.Error(), "There is no task number")
	}
	assert.Equal(t, 1, list.Len())
}
