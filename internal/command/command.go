package command

import (
	"strings"
	"time"

	"duke/internal/task"
)

// Result is what a command hands back to the caller. Changed is set when the
// task list was modified and needs saving.
type Result struct {
	Message string
	Changed bool
	Exit    bool
}

type Command interface {
	Execute(tasks *task.List) (Result, error)
}

// Clock returns the current time. Commands that depend on "today" take one so
// tests can pin the date.
type Clock func() time.Time

// Parse turns a raw input line into a command. The first word selects the
// command; the full trimmed line is handed to its constructor.
func Parse(fullCommand string, today Clock) (Command, error) {
	fullCommand = strings.TrimSpace(fullCommand)
	if fullCommand == "" {
		return nil, invalidArgument("Please enter a command")
	}
	word, _, _ := strings.Cut(fullCommand, " ")

	switch word {
	case ReminderWord:
		return build(NewReminderCommand(fullCommand, today))
	case ListWord:
		return build(NewListCommand(fullCommand))
	case TodoWord:
		return build(NewTodoCommand(fullCommand))
	case DeadlineWord:
		return build(NewDeadlineCommand(fullCommand))
	case EventWord:
		return build(NewEventCommand(fullCommand))
	case DoneWord:
		return build(NewDoneCommand(fullCommand))
	case DeleteWord:
		return build(NewDeleteCommand(fullCommand))
	case FindWord:
		return build(NewFindCommand(fullCommand))
	case ByeWord:
		return build(NewByeCommand(fullCommand))
	default:
		return nil, ErrUnknownCommand
	}
}

func build[C Command](c C, err error) (Command, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}

// argument returns the text after the command word.
func argument(fullCommand, word string) string {
	return strings.TrimSpace(strings.TrimPrefix(fullCommand, word))
}

func requireBare(fullCommand, word string) error {
	if fullCommand != word {
		return invalidArgument("There should be no description after '" + word + "'")
	}
	return nil
}
