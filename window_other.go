//go:build !windows

package main

// nullWindows reports no windows and delivers nothing
type nullWindows struct{}

// NewWindowFinder creates the platform window finder
func NewWindowFinder() WindowFinder {
	return nullWindows{}
}

// NewWindowMessenger creates the platform window messenger
func NewWindowMessenger() WindowMessenger {
	return nullWindows{}
}

func (nullWindows) MainWindow(int32) uintptr { return 0 }

func (nullWindows) Foreground() uintptr { return 0 }

func (nullWindows) SendKeyDown(uintptr, uint16, Payload) error {
	return errUnsupportedPlatform
}
