//go:build windows

package main

import "github.com/micmonay/keybd_event"

var mediaKeyCodes = map[MediaAction]int{
	ActionPlayPause:     keybd_event.VK_MEDIA_PLAY_PAUSE,
	ActionStop:          keybd_event.VK_MEDIA_STOP,
	ActionPreviousTrack: keybd_event.VK_MEDIA_PREV_TRACK,
	ActionNextTrack:     keybd_event.VK_MEDIA_NEXT_TRACK,
	ActionVolumeUp:      keybd_event.VK_VOLUME_UP,
	ActionVolumeDown:    keybd_event.VK_VOLUME_DOWN,
}

func checkInjectionSupport() error {
	return nil
}

func mediaKeyCode(action MediaAction) (int, bool) {
	code, ok := mediaKeyCodes[action]
	return code, ok
}
