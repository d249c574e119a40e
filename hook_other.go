//go:build !windows

package main

// unsupportedKeyboardHook fails installation on platforms without a low-level hook
type unsupportedKeyboardHook struct{}

// NewKeyboardHook creates the keyboard hook for this platform
func NewKeyboardHook() KeyboardHook {
	return unsupportedKeyboardHook{}
}

func (unsupportedKeyboardHook) Install(func(KeyEvent) bool) error {
	return errUnsupportedPlatform
}

func (unsupportedKeyboardHook) Uninstall() error {
	return nil
}
