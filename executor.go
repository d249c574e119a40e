package main

import (
	"runtime/debug"
	"time"
)

// Task is a handle to scheduled background work
type Task interface {
	// Cancel is currently a no-op: scheduled work always runs
	Cancel()
}

// Executor runs work off the caller's goroutine after a delay
type Executor interface {
	Schedule(delay time.Duration, fn func()) Task
}

type noopTask struct{}

func (noopTask) Cancel() {}

// goExecutor runs every task on its own goroutine. Tasks are independent and
// unordered; a panicking task is logged and dropped.
type goExecutor struct {
	logManager *LogManager
}

// NewExecutor creates the default background executor
func NewExecutor(logManager *LogManager) Executor {
	return &goExecutor{logManager: logManager}
}

func (e *goExecutor) Schedule(delay time.Duration, fn func()) Task {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				e.logManager.LogError("Background task recovered from panic", nil,
					"panic", r,
					"stack", string(debug.Stack()),
				)
			}
		}()
		if delay > 0 {
			timer := time.NewTimer(delay)
			<-timer.C
		}
		fn()
	}()
	return noopTask{}
}
