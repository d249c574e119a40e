package main

import "time"

// DefaultRedirectDelay is the wait before a redirected key message is delivered.
// Delivering immediately is unreliable right after a foreground change.
const DefaultRedirectDelay = 200 * time.Millisecond

// WindowMessenger delivers a key-down message straight to a window
type WindowMessenger interface {
	SendKeyDown(hwnd uintptr, virtualKey uint16, payload Payload) error
}

// DelayedSender schedules delayed key-down delivery to a window
type DelayedSender struct {
	executor   Executor
	messenger  WindowMessenger
	delay      time.Duration
	logManager *LogManager
}

// NewDelayedSender creates a delayed sender
func NewDelayedSender(executor Executor, messenger WindowMessenger, delay time.Duration, logManager *LogManager) *DelayedSender {
	return &DelayedSender{
		executor:   executor,
		messenger:  messenger,
		delay:      delay,
		logManager: logManager,
	}
}

// SendDelayed schedules the message and returns immediately. Delivery failures,
// including a window that disappeared during the delay, are only logged.
func (ds *DelayedSender) SendDelayed(hwnd uintptr, virtualKey uint16, payload Payload) Task {
	return ds.executor.Schedule(ds.delay, func() {
		if err := ds.messenger.SendKeyDown(hwnd, virtualKey, payload); err != nil {
			ds.logManager.LogDebug("Redirected key message not delivered",
				"hwnd", hwnd, "vk", virtualKey, "error", err)
			return
		}
		ds.logManager.LogDebug("Sent key message to window", "hwnd", hwnd, "vk", virtualKey)
	})
}

// keyDownLParam builds the WM_KEYDOWN lParam for a payload: repeat count 1,
// scan code in bits 16-23 and the extended-key flag in bit 24.
func keyDownLParam(payload Payload) uintptr {
	const llkhfExtended = 0x01
	lParam := uintptr(1)
	lParam |= uintptr(payload.ScanCode&0xFF) << 16
	if payload.Flags&llkhfExtended != 0 {
		lParam |= 1 << 24
	}
	return lParam
}
