package containers

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RunMsg carries a scheduled function back onto the bubbletea loop.
type RunMsg struct {
	fn func()
}

// Loop is a navigation.Scheduler for bubbletea programs. Scheduled functions
// are turned into commands; the root model returns Flush() from every Update
// and passes every message through Handle, which runs the function on the
// loop in a later Update.
type Loop struct {
	queued []tea.Cmd
}

func (l *Loop) Defer(fn func()) {
	l.queued = append(l.queued, func() tea.Msg { return RunMsg{fn: fn} })
}

func (l *Loop) After(d time.Duration, fn func()) {
	l.queued = append(l.queued, tea.Tick(d, func(time.Time) tea.Msg { return RunMsg{fn: fn} }))
}

// Flush returns the commands scheduled since the last Flush, or nil.
func (l *Loop) Flush() tea.Cmd {
	if len(l.queued) == 0 {
		return nil
	}
	cmds := l.queued
	l.queued = nil
	return tea.Batch(cmds...)
}

// Pending returns the number of commands waiting for Flush.
func (l *Loop) Pending() int {
	return len(l.queued)
}

// Handle runs msg if it is a RunMsg and reports whether it did.
func (l *Loop) Handle(msg tea.Msg) bool {
	run, ok := msg.(RunMsg)
	if !ok {
		return false
	}
	if run.fn != nil {
		run.fn()
	}
	return true
}
