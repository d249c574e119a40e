package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// DefaultResolveTimeout bounds process enumeration, which runs on the hook thread
const DefaultResolveTimeout = 50 * time.Millisecond

// TargetWindow is a window handle plus the process name it was resolved from
type TargetWindow struct {
	Handle      uintptr
	ProcessName string
}

// ProcessFinder lists the PIDs of running processes with a given name
type ProcessFinder interface {
	FindPIDs(ctx context.Context, name string) ([]int32, error)
}

// WindowFinder queries top-level windows
type WindowFinder interface {
	// MainWindow returns the main window of a process, or 0 when it has none
	MainWindow(pid int32) uintptr
	// Foreground returns the window currently receiving keyboard input
	Foreground() uintptr
}

// Resolver finds the window to redirect media actions to
type Resolver struct {
	processes ProcessFinder
	windows   WindowFinder
	timeout   time.Duration
}

// NewResolver creates a window target resolver
func NewResolver(processes ProcessFinder, windows WindowFinder, timeout time.Duration) *Resolver {
	return &Resolver{
		processes: processes,
		windows:   windows,
		timeout:   timeout,
	}
}

// Resolve returns the first main window among processes named processName.
// It waits at most the resolver timeout; an enumeration still running after
// that finishes in the background and is discarded. PIDs matched before an
// enumeration error or deadline are still used. The handle may be stale by
// the time it is used.
func (r *Resolver) Resolve(processName string) (TargetWindow, bool) {
	pids := r.findPIDs(processName)

	for _, pid := range pids {
		if hwnd := r.windows.MainWindow(pid); hwnd != 0 {
			return TargetWindow{Handle: hwnd, ProcessName: processName}, true
		}
	}
	return TargetWindow{}, false
}

func (r *Resolver) findPIDs(processName string) []int32 {
	if r.timeout <= 0 {
		pids, _ := r.processes.FindPIDs(context.Background(), processName)
		return pids
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	// Some platforms enumerate the whole process table without checking ctx
	resultCh := make(chan []int32, 1)
	go func() {
		// An error can come with the matches found before it
		pids, _ := r.processes.FindPIDs(ctx, processName)
		resultCh <- pids
	}()

	select {
	case pids := <-resultCh:
		return pids
	case <-ctx.Done():
		select {
		case pids := <-resultCh:
			return pids
		default:
			return nil
		}
	}
}

// Foreground returns the current foreground window handle
func (r *Resolver) Foreground() uintptr {
	return r.windows.Foreground()
}

// gopsutilFinder enumerates processes through gopsutil
type gopsutilFinder struct{}

// NewProcessFinder creates the default process finder
func NewProcessFinder() ProcessFinder {
	return gopsutilFinder{}
}

func (gopsutilFinder) FindPIDs(ctx context.Context, name string) ([]int32, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	want := normalizeProcessName(name)
	var pids []int32
	for _, p := range procs {
		if ctx.Err() != nil {
			return pids, ctx.Err()
		}
		procName, err := p.NameWithContext(ctx)
		if err != nil {
			// Process exited or is not accessible
			continue
		}
		if normalizeProcessName(procName) == want {
			pids = append(pids, p.Pid)
		}
	}
	return pids, nil
}

// normalizeProcessName lowercases a process name and strips a trailing ".exe"
func normalizeProcessName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimSuffix(name, ".exe")
}
