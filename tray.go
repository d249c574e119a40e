package main

// trayMenuItem is one entry of the notification-area menu
type trayMenuItem struct {
	Label   string
	OnClick func()
}

// trayMenu builds the tray menu. exit ends the run the same way a signal does.
func trayMenu(logsDir string, exit func(), logManager *LogManager) []trayMenuItem {
	return []trayMenuItem{
		{
			Label: "Open logs",
			OnClick: func() {
				if err := OpenLogsFolder(logsDir); err != nil {
					logManager.LogWarning("Failed to open log folder", "error", err)
				}
			},
		},
		{
			Label: "Exit",
			OnClick: func() {
				logManager.LogInfo("Exit requested from tray")
				exit()
			},
		},
	}
}
