package task

import (
	"errors"
	"strings"
)

var ErrNoSuchTask = errors.New("no such task")

// List is the ordered task list. Positions are 1-based in every method that takes one.
type List struct {
	tasks []Task
}

func NewList(tasks []Task) *List {
	l := &List{tasks: make([]Task, len(tasks))}
	copy(l.tasks, tasks)
	return l
}

func (l *List) Len() int {
	return len(l.tasks)
}

// All returns a copy of the tasks in list order.
func (l *List) All() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) Add(t Task) {
	l.tasks = append(l.tasks, t)
}

func (l *List) Get(n int) (Task, error) {
	if n < 1 || n > len(l.tasks) {
		return Task{}, ErrNoSuchTask
	}
	return l.tasks[n-1], nil
}

func (l *List) Remove(n int) (Task, error) {
	t, err := l.Get(n)
	if err != nil {
		return Task{}, err
	}
	l.tasks = append(l.tasks[:n-1], l.tasks[n:]...)
	return t, nil
}

func (l *List) MarkDone(n int) (Task, error) {
	if _, err := l.Get(n); err != nil {
		return Task{}, err
	}
	l.tasks[n-1].Done = true
	return l.tasks[n-1], nil
}

// Find returns tasks whose description contains keyword, ignoring case.
func (l *List) Find(keyword string) []Task {
	keyword = strings.ToLower(keyword)
	var out []Task
	for _, t := range l.tasks {
		if strings.Contains(strings.ToLower(t.Description), keyword) {
			out = append(out, t)
		}
	}
	return out
}
