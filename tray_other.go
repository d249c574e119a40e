//go:build !windows

package main

import "context"

func runTray(context.Context, []trayMenuItem, *LogManager) error {
	return errUnsupportedPlatform
}
