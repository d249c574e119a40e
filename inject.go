package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/micmonay/keybd_event"
)

var errUnsupportedPlatform = errors.New("global keyboard interception is only supported on Windows")

// Injector raises a synthetic global key-down for a media action
type Injector interface {
	KeyDown(action MediaAction) error
}

// keybdInjector presses media keys through keybd_event
type keybdInjector struct {
	mu sync.Mutex
	kb keybd_event.KeyBonding
}

// NewInjector creates the keyboard injector
func NewInjector() (Injector, error) {
	if err := checkInjectionSupport(); err != nil {
		return nil, err
	}
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize keyboard: %w", err)
	}
	return &keybdInjector{kb: kb}, nil
}

// KeyDown presses the action's media key without releasing it
func (ki *keybdInjector) KeyDown(action MediaAction) error {
	code, ok := mediaKeyCode(action)
	if !ok {
		return fmt.Errorf("no media key for %s: %w", action, errUnsupportedPlatform)
	}

	ki.mu.Lock()
	defer ki.mu.Unlock()

	ki.kb.Clear()
	ki.kb.SetKeys(code)
	return ki.kb.Press()
}
