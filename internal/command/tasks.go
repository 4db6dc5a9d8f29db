package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"duke/internal/task"
)

const (
	ListWord     = "list"
	TodoWord     = "todo"
	DeadlineWord = "deadline"
	EventWord    = "event"
	DoneWord     = "done"
	DeleteWord   = "delete"
	FindWord     = "find"
	ByeWord      = "bye"

	ListSuccess  = "Here are the tasks in your list:\n"
	ListEmpty    = "There are no tasks in your list"
	FindSuccess  = "Here are the matching tasks in your list:\n"
	FindNoMatch  = "No matching tasks"
	ByeMessage   = "Bye. Hope to see you again soon!"
	byDelimiter  = "/by"
	atDelimiter  = "/at"
	addedMessage = "Got it. I've added this task:\n  %s\nNow you have %d task(s) in the list."
)

type ListCommand struct{}

func NewListCommand(fullCommand string) (*ListCommand, error) {
	if err := requireBare(fullCommand, ListWord); err != nil {
		return nil, err
	}
	return &ListCommand{}, nil
}

func (c *ListCommand) Execute(tasks *task.List) (Result, error) {
	if tasks.Len() == 0 {
		return Result{Message: ListEmpty}, nil
	}
	return Result{Message: ListSuccess + numbered(tasks.All())}, nil
}

// AddCommand appends one task to the list. todo, deadline and event all build one.
type AddCommand struct {
	task task.Task
}

func NewTodoCommand(fullCommand string) (*AddCommand, error) {
	desc := argument(fullCommand, TodoWord)
	if desc == "" {
		return nil, invalidArgument("The description of a todo cannot be empty")
	}
	return &AddCommand{task: task.NewTodo(desc)}, nil
}

func NewDeadlineCommand(fullCommand string) (*AddCommand, error) {
	desc, date, err := splitDated(argument(fullCommand, DeadlineWord), DeadlineWord, byDelimiter)
	if err != nil {
		return nil, err
	}
	return &AddCommand{task: task.NewDeadline(desc, date)}, nil
}

func NewEventCommand(fullCommand string) (*AddCommand, error) {
	desc, date, err := splitDated(argument(fullCommand, EventWord), EventWord, atDelimiter)
	if err != nil {
		return nil, err
	}
	return &AddCommand{task: task.NewEvent(desc, date)}, nil
}

func (c *AddCommand) Task() task.Task {
	return c.task
}

func (c *AddCommand) Execute(tasks *task.List) (Result, error) {
	tasks.Add(c.task)
	return Result{
		Message: fmt.Sprintf(addedMessage, c.task, tasks.Len()),
		Changed: true,
	}, nil
}

type DoneCommand struct {
	index int
}

func NewDoneCommand(fullCommand string) (*DoneCommand, error) {
	n, err := parseIndex(argument(fullCommand, DoneWord), DoneWord)
	if err != nil {
		return nil, err
	}
	return &DoneCommand{index: n}, nil
}

func (c *DoneCommand) Execute(tasks *task.List) (Result, error) {
	t, err := tasks.MarkDone(c.index)
	if err != nil {
		return Result{}, noSuchTask(c.index, err)
	}
	return Result{
		Message: "Nice! I've marked this task as done:\n  " + t.String(),
		Changed: true,
	}, nil
}

type DeleteCommand struct {
	index int
}

func NewDeleteCommand(fullCommand string) (*DeleteCommand, error) {
	n, err := parseIndex(argument(fullCommand, DeleteWord), DeleteWord)
	if err != nil {
		return nil, err
	}
	return &DeleteCommand{index: n}, nil
}

func (c *DeleteCommand) Execute(tasks *task.List) (Result, error) {
	t, err := tasks.Remove(c.index)
	if err != nil {
		return Result{}, noSuchTask(c.index, err)
	}
	return Result{
		Message: fmt.Sprintf("Noted. I've removed this task:\n  %s\nNow you have %d task(s) in the list.", t, tasks.Len()),
		Changed: true,
	}, nil
}

type FindCommand struct {
	keyword string
}

func NewFindCommand(fullCommand string) (*FindCommand, error) {
	kw := argument(fullCommand, FindWord)
	if kw == "" {
		return nil, invalidArgument("Please specify a keyword to find")
	}
	return &FindCommand{keyword: kw}, nil
}

func (c *FindCommand) Execute(tasks *task.List) (Result, error) {
	matches := tasks.Find(c.keyword)
	if len(matches) == 0 {
		return Result{Message: FindNoMatch}, nil
	}
	return Result{Message: FindSuccess + numbered(matches)}, nil
}

type ByeCommand struct{}

func NewByeCommand(fullCommand string) (*ByeCommand, error) {
	if err := requireBare(fullCommand, ByeWord); err != nil {
		return nil, err
	}
	return &ByeCommand{}, nil
}

func (c *ByeCommand) Execute(*task.List) (Result, error) {
	return Result{Message: ByeMessage, Exit: true}, nil
}

func numbered(tasks []task.Task) string {
	var b strings.Builder
	for i, t := range tasks {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return b.String()
}

func splitDated(arg, word, delim string) (string, time.Time, error) {
	desc, date, found := strings.Cut(arg, delim)
	desc = strings.TrimSpace(desc)
	date = strings.TrimSpace(date)
	if desc == "" {
		return "", time.Time{}, invalidArgument("The description of a " + word + " cannot be empty")
	}
	if !found || date == "" {
		return "", time.Time{}, invalidArgument("Please specify a date for the " + word + " with '" + delim + " YYYY-MM-DD'")
	}
	parsed, err := task.ParseDate(date)
	if err != nil {
		return "", time.Time{}, invalidArgument("Invalid date '" + date + "', expected YYYY-MM-DD")
	}
	return desc, parsed, nil
}

func parseIndex(arg, word string) (int, error) {
	if arg == "" {
		return 0, invalidArgument("Please specify a task number after '" + word + "'")
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, invalidArgument("'" + arg + "' is not a valid task number")
	}
	return n, nil
}

func noSuchTask(n int, err error) error {
	if errors.Is(err, task.ErrNoSuchTask) {
		return invalidArgument(fmt.Sprintf("There is no task number %d", n))
	}
	return err
}
