//go:build windows

package main

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32Hook              = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookEx    = user32Hook.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32Hook.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32Hook.NewProc("CallNextHookEx")
	procGetMessage          = user32Hook.NewProc("GetMessageW")
	procPostThreadMessage   = user32Hook.NewProc("PostThreadMessageW")
)

const (
	whKeyboardLL = 13
	wmQuit       = 0x0012

	uninstallTimeout = 2 * time.Second
)

// kbdLLHookStruct mirrors KBDLLHOOKSTRUCT
type kbdLLHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

// winMsg mirrors the Win32 MSG struct
type winMsg struct {
	hWnd     uintptr
	message  uint32
	wParam   uintptr
	lParam   uintptr
	time     uint32
	pt       struct{ x, y int32 }
	lPrivate uint32
}

type hookReady struct {
	threadID uint32
	err      error
}

// The low-level hook callback has no user data pointer, so the active
// handler lives in a package variable. Only one hook can be installed.
var (
	activeHookHandle  uintptr
	activeHookHandler func(KeyEvent) bool
	hookCallback      = windows.NewCallback(lowLevelKeyboardProc)
)

// windowsKeyboardHook installs a WH_KEYBOARD_LL hook on a dedicated OS thread
type windowsKeyboardHook struct {
	mu       sync.Mutex
	threadID uint32
	doneCh   chan struct{}
}

// NewKeyboardHook creates the keyboard hook for Windows
func NewKeyboardHook() KeyboardHook {
	return &windowsKeyboardHook{}
}

func (h *windowsKeyboardHook) Install(handler func(KeyEvent) bool) error {
	if handler == nil {
		return errors.New("keyboard handler is required")
	}
	if err := user32Hook.Load(); err != nil {
		return fmt.Errorf("user32.dll is unavailable: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.doneCh != nil {
		return errors.New("keyboard hook already installed")
	}

	readyCh := make(chan hookReady, 1)
	doneCh := make(chan struct{})
	go runHookLoop(handler, readyCh, doneCh)

	ready := <-readyCh
	if ready.err != nil {
		return fmt.Errorf("failed to install keyboard hook: %w", ready.err)
	}

	h.threadID = ready.threadID
	h.doneCh = doneCh
	return nil
}

func (h *windowsKeyboardHook) Uninstall() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.doneCh == nil {
		return nil
	}
	doneCh := h.doneCh
	h.doneCh = nil

	r, _, err := procPostThreadMessage.Call(uintptr(h.threadID), wmQuit, 0, 0)
	if r == 0 {
		return fmt.Errorf("failed to stop keyboard hook thread: %w", err)
	}

	timer := time.NewTimer(uninstallTimeout)
	defer timer.Stop()
	select {
	case <-doneCh:
		return nil
	case <-timer.C:
		return fmt.Errorf("keyboard hook thread did not stop within %v", uninstallTimeout)
	}
}

// runHookLoop installs the hook and pumps messages; the hook is delivered on this thread
func runHookLoop(handler func(KeyEvent) bool, readyCh chan<- hookReady, doneCh chan struct{}) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(doneCh)

	activeHookHandler = handler
	handle, _, err := procSetWindowsHookEx.Call(whKeyboardLL, hookCallback, 0, 0)
	if handle == 0 {
		activeHookHandler = nil
		readyCh <- hookReady{err: err}
		return
	}
	activeHookHandle = handle
	defer func() {
		procUnhookWindowsHookEx.Call(handle)
		activeHookHandle = 0
		activeHookHandler = nil
	}()

	readyCh <- hookReady{threadID: windows.GetCurrentThreadId()}

	var msg winMsg
	for {
		ret, _, _ := procGetMessage.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		// 0 is WM_QUIT, -1 is an error
		if int32(ret) <= 0 {
			return
		}
	}
}

func lowLevelKeyboardProc(nCode int, wParam uintptr, lParam uintptr) uintptr {
	if nCode >= 0 && activeHookHandler != nil {
		raw := (*kbdLLHookStruct)(unsafe.Pointer(lParam))
		payload := Payload{
			VirtualKey: raw.VkCode,
			ScanCode:   raw.ScanCode,
			Flags:      raw.Flags,
			Time:       raw.Time,
			ExtraInfo:  raw.DwExtraInfo,
		}
		if activeHookHandler(eventFromRaw(wParam, payload)) {
			return 1
		}
	}

	ret, _, _ := procCallNextHookEx.Call(activeHookHandle, uintptr(nCode), wParam, lParam)
	return ret
}
