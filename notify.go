package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gen2brain/beeep"
	"github.com/skratchdot/open-golang/open"
)

const appTitle = "Media Global Hotkeys"

// NotificationManager surfaces messages to the user through desktop notifications
type NotificationManager struct {
	enabled    bool
	showErrors bool
	logManager *LogManager

	// notify and alert are swapped out in tests
	notify func(title, message, icon string) error
	alert  func(title, message, icon string) error
}

// NewNotificationManager creates a new notification manager
func NewNotificationManager(config *Config, logManager *LogManager) *NotificationManager {
	return &NotificationManager{
		enabled:    config.Notifications.Enabled,
		showErrors: config.Notifications.ShowErrors,
		logManager: logManager,
		notify:     beeep.Notify,
		alert:      beeep.Alert,
	}
}

// NotifyError shows an error alert
func (nm *NotificationManager) NotifyError(message string) {
	if !nm.enabled || !nm.showErrors {
		return
	}

	if err := nm.alert(appTitle+" Error", message, ""); err != nil {
		nm.logManager.LogWarning("Failed to send error notification", "error", err)
	}
}

// NotifyInfo sends an informational notification
func (nm *NotificationManager) NotifyInfo(message string) {
	if !nm.enabled {
		return
	}

	if err := nm.notify(appTitle, message, ""); err != nil {
		nm.logManager.LogWarning("Failed to send info notification", "error", err)
	}
}

// OpenLogsFolder opens the log directory in the system file browser
func OpenLogsFolder(logsDir string) error {
	absPath, err := filepath.Abs(logsDir)
	if err != nil {
		return err
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("log folder %s is not available: %w", absPath, err)
	}
	return open.Run(absPath)
}
