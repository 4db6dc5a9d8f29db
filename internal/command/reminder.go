package command

import (
	"strconv"
	"strings"
	"time"

	"duke/internal/task"
)

const (
	ReminderWord = "reminder"

	ReminderSuccess = "Upcoming deadline(s): \n"
	ReminderNoMatch = "No upcoming deadlines"

	// ReminderDays is how many days past today the reminder looks ahead.
	ReminderDays = 2
)

// ReminderCommand lists deadlines due between today and ReminderDays from
// today, both ends included. The window is fixed when the command is built.
type ReminderCommand struct {
	start time.Time
	end   time.Time
}

func NewReminderCommand(fullCommand string, today Clock) (*ReminderCommand, error) {
	if err := requireBare(fullCommand, ReminderWord); err != nil {
		return nil, err
	}
	start := task.DateOf(today())
	return &ReminderCommand{
		start: start,
		end:   start.AddDate(0, 0, ReminderDays),
	}, nil
}

// Window returns the inclusive date range the command checks against.
func (c *ReminderCommand) Window() (start, end time.Time) {
	return c.start, c.end
}

func (c *ReminderCommand) Execute(tasks *task.List) (Result, error) {
	deadlines := c.upcoming(tasks.All())
	// An empty rendering means nothing matched.
	if len(deadlines) == 0 {
		return Result{Message: ReminderNoMatch}, nil
	}
	return Result{Message: ReminderSuccess + deadlines}, nil
}

func (c *ReminderCommand) upcoming(tasks []task.Task) string {
	var b strings.Builder
	count := 1
	for _, t := range tasks {
		if !c.withinRange(t) {
			continue
		}
		b.WriteString(strconv.Itoa(count))
		b.WriteString(". ")
		b.WriteString(t.String())
		b.WriteString("\n")
		count++
	}
	return b.String()
}

func (c *ReminderCommand) withinRange(t task.Task) bool {
	due, ok := t.DueDate()
	if !ok {
		return false
	}
	return !due.Before(c.start) && !due.After(c.end)
}
