//go:build windows

package main

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32Window    = windows.NewLazySystemDLL("user32.dll")
	procGetWindow   = user32Window.NewProc("GetWindow")
	procSendMessage = user32Window.NewProc("SendMessageW")
	procIsWindow    = user32Window.NewProc("IsWindow")
)

const gwOwner = 4

// win32Windows implements WindowFinder and WindowMessenger over user32
type win32Windows struct{}

// NewWindowFinder creates the platform window finder
func NewWindowFinder() WindowFinder {
	return win32Windows{}
}

// NewWindowMessenger creates the platform window messenger
func NewWindowMessenger() WindowMessenger {
	return win32Windows{}
}

type enumWindowsState struct {
	pid  uint32
	hwnd windows.HWND
}

var enumWindowsCallback = windows.NewCallback(func(hwnd windows.HWND, lParam uintptr) uintptr {
	state := (*enumWindowsState)(unsafe.Pointer(lParam))

	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(hwnd, &pid); err != nil || pid != state.pid {
		return 1
	}
	if !windows.IsWindowVisible(hwnd) {
		return 1
	}
	// A main window is a top-level window without an owner
	if owner, _, _ := procGetWindow.Call(uintptr(hwnd), gwOwner); owner != 0 {
		return 1
	}

	state.hwnd = hwnd
	return 0
})

func (win32Windows) MainWindow(pid int32) uintptr {
	state := &enumWindowsState{pid: uint32(pid)}
	// EnumWindows reports an error when the callback stops enumeration early
	_ = windows.EnumWindows(enumWindowsCallback, unsafe.Pointer(state))
	return uintptr(state.hwnd)
}

func (win32Windows) Foreground() uintptr {
	return uintptr(windows.GetForegroundWindow())
}

func (win32Windows) SendKeyDown(hwnd uintptr, virtualKey uint16, payload Payload) error {
	if hwnd == 0 {
		return fmt.Errorf("no window handle")
	}
	if err := procSendMessage.Find(); err != nil {
		return fmt.Errorf("SendMessageW is unavailable: %w", err)
	}
	if ok, _, _ := procIsWindow.Call(hwnd); ok == 0 {
		return fmt.Errorf("window %#x no longer exists", hwnd)
	}
	procSendMessage.Call(hwnd, wmKeyDownMsg, uintptr(virtualKey), keyDownLParam(payload))
	return nil
}
