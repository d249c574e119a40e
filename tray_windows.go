//go:build windows

package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/tadvi/systray"
	"golang.org/x/sys/windows"
)

type trayReady struct {
	threadID uint32
	err      error
}

// runTray shows the tray icon on its own OS thread until ctx is done
func runTray(ctx context.Context, items []trayMenuItem, logManager *LogManager) error {
	readyCh := make(chan trayReady, 1)
	go runTrayLoop(items, readyCh, logManager)

	ready := <-readyCh
	if ready.err != nil {
		return fmt.Errorf("failed to create tray icon: %w", ready.err)
	}

	go func() {
		<-ctx.Done()
		procPostThreadMessage.Call(uintptr(ready.threadID), wmQuit, 0, 0)
	}()
	return nil
}

// runTrayLoop creates the icon and pumps its window messages; menu callbacks run on this thread
func runTrayLoop(items []trayMenuItem, readyCh chan<- trayReady, logManager *LogManager) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	tray, err := systray.New()
	if err != nil {
		readyCh <- trayReady{err: err}
		return
	}
	defer func() {
		if err := tray.Stop(); err != nil {
			logManager.LogWarning("Failed to remove tray icon", "error", err)
		}
	}()

	for _, item := range items {
		tray.AppendMenu(item.Label, item.OnClick)
	}
	// No icon resource is embedded; Show falls back to the stock application icon
	if err := tray.Show(0, appTitle); err != nil {
		readyCh <- trayReady{err: err}
		return
	}

	readyCh <- trayReady{threadID: windows.GetCurrentThreadId()}

	if err := tray.Run(); err != nil {
		logManager.LogWarning("Tray message loop failed", "error", err)
	}
}
