package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// errAlreadyRunning is returned when another instance holds the lock
var errAlreadyRunning = errors.New("another instance is already running")

// SingleInstance prevents two hooks from remapping the same keys twice
type SingleInstance struct {
	lockFile *os.File
	lockPath string

	// isRunning reports whether a PID belongs to a live process
	isRunning func(pid int) bool
}

// NewSingleInstance creates a new SingleInstance manager with its lock file in dir
func NewSingleInstance(dir, appName string) *SingleInstance {
	return &SingleInstance{
		lockPath:  filepath.Join(dir, fmt.Sprintf("%s.lock", appName)),
		isRunning: processExists,
	}
}

// TryLock acquires the lock. It returns errAlreadyRunning if a live
// instance holds it; stale lock files are removed.
func (si *SingleInstance) TryLock() error {
	return si.tryLock(true)
}

func (si *SingleInstance) tryLock(retryStale bool) error {
	file, err := os.OpenFile(si.lockPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		if !os.IsExist(err) {
			return fmt.Errorf("failed to create lock file: %w", err)
		}
		if !retryStale || si.holderAlive() {
			return errAlreadyRunning
		}
		os.Remove(si.lockPath)
		return si.tryLock(false)
	}

	if _, err := file.WriteString(strconv.Itoa(os.Getpid())); err != nil {
		file.Close()
		os.Remove(si.lockPath)
		return fmt.Errorf("failed to write PID to lock file: %w", err)
	}

	si.lockFile = file
	return nil
}

// holderAlive checks whether the PID recorded in the lock file is still running
func (si *SingleInstance) holderAlive() bool {
	data, err := os.ReadFile(si.lockPath)
	if err != nil {
		return false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return false
	}
	return si.isRunning(pid)
}

// Release releases the lock when the application is shutting down
func (si *SingleInstance) Release() {
	if si.lockFile == nil {
		return
	}
	si.lockFile.Close()
	si.lockFile = nil
	os.Remove(si.lockPath)
}

// processExists works on Windows, where os.FindProcess always succeeds
func processExists(pid int) bool {
	if pid == os.Getpid() {
		return true
	}
	exists, err := process.PidExists(int32(pid))
	return err == nil && exists
}
