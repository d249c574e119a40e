//go:build !windows

package main

// checkInjectionSupport fails before keybd_event tries to open /dev/uinput
func checkInjectionSupport() error {
	return errUnsupportedPlatform
}

func mediaKeyCode(MediaAction) (int, bool) {
	return 0, false
}
