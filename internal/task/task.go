package task

import (
	"fmt"
	"time"
)

// DateLayout is the layout used for dates typed by the user and stored on disk.
const DateLayout = "2006-01-02"

const displayLayout = "Jan 2 2006"

type Kind int

const (
	KindTodo Kind = iota
	KindDeadline
	KindEvent
)

func (k Kind) Tag() string {
	switch k {
	case KindTodo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "todo":
		return KindTodo, nil
	case "deadline":
		return KindDeadline, nil
	case "event":
		return KindEvent, nil
	default:
		return 0, fmt.Errorf("unknown task kind %q", s)
	}
}

// Task is a single entry in the list. Date is only meaningful for deadlines
// and events and is always a calendar date at midnight UTC.
type Task struct {
	Kind        Kind
	Description string
	Done        bool
	Date        time.Time
}

func NewTodo(description string) Task {
	return Task{Kind: KindTodo, Description: description}
}

func NewDeadline(description string, by time.Time) Task {
	return Task{Kind: KindDeadline, Description: description, Date: DateOf(by)}
}

func NewEvent(description string, at time.Time) Task {
	return Task{Kind: KindEvent, Description: description, Date: DateOf(at)}
}

// DueDate reports the date a task is due. Only deadlines have one.
func (t Task) DueDate() (time.Time, bool) {
	switch t.Kind {
	case KindDeadline:
		return t.Date, true
	case KindTodo, KindEvent:
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func (t Task) String() string {
	checkbox := "[ ]"
	if t.Done {
		checkbox = "[X]"
	}
	body := fmt.Sprintf("[%s]%s %s", t.Kind.Tag(), checkbox, t.Description)
	switch t.Kind {
	case KindDeadline:
		body += " (by: " + t.Date.Format(displayLayout) + ")"
	case KindEvent:
		body += " (at: " + t.Date.Format(displayLayout) + ")"
	}
	return body
}

// DateOf drops the time of day, keeping the calendar date as seen in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}
