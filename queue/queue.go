package queue

import (
	"fmt"
)

/*
Stack holds the tasks pending to grow a tree. Tasks are pulled in the
reverse order in which they were pushed.

A Stack is not safe for concurrent use: trees are grown by a single
goroutine.
*/
type Stack struct {
	tasks []*Task
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{}
}

// Push adds a task on top of the stack.
func (s *Stack) Push(t *Task) {
	s.tasks = append(s.tasks, t)
}

// PushAll adds the given tasks so that the first of them is pulled first.
func (s *Stack) PushAll(tasks []*Task) {
	for i := len(tasks) - 1; i >= 0; i-- {
		s.Push(tasks[i])
	}
}

// Pull removes the task on top of the stack and returns it, or nil if the
// stack is empty.
func (s *Stack) Pull() *Task {
	n := len(s.tasks)
	if n == 0 {
		return nil
	}
	t := s.tasks[n-1]
	s.tasks[n-1] = nil
	s.tasks = s.tasks[:n-1]
	return t
}

// Count returns the number of pending tasks.
func (s *Stack) Count() int {
	return len(s.tasks)
}

func (s *Stack) String() string {
	return fmt.Sprintf("{Stack pending: %d}", len(s.tasks))
}
