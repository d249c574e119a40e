package main

import "fmt"

// Key is a logical key identity, resolved from a Windows virtual-key code
type Key int

const (
	KeyUnknown Key = iota
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyMediaPlayPause
	KeyMediaStop
	KeyMediaPreviousTrack
	KeyMediaNextTrack
	KeyVolumeUp
	KeyVolumeDown
)

// Windows virtual-key codes
const (
	vkPrior          = 0x21 // Page Up
	vkNext           = 0x22 // Page Down
	vkEnd            = 0x23
	vkHome           = 0x24
	vkUp             = 0x26
	vkDown           = 0x28
	vkLControl       = 0xA2
	vkRControl       = 0xA3
	vkLMenu          = 0xA4 // Left Alt
	vkRMenu          = 0xA5 // Right Alt
	vkVolumeDown     = 0xAE
	vkVolumeUp       = 0xAF
	vkMediaNextTrack = 0xB0
	vkMediaPrevTrack = 0xB1
	vkMediaStop      = 0xB2
	vkMediaPlayPause = 0xB3
)

var keyNames = map[Key]string{
	KeyUnknown:            "unknown",
	KeyLeftControl:        "lctrl",
	KeyRightControl:       "rctrl",
	KeyLeftAlt:            "lalt",
	KeyRightAlt:           "ralt",
	KeyHome:               "home",
	KeyEnd:                "end",
	KeyPageUp:             "pageup",
	KeyPageDown:           "pagedown",
	KeyUp:                 "up",
	KeyDown:               "down",
	KeyMediaPlayPause:     "media_play_pause",
	KeyMediaStop:          "media_stop",
	KeyMediaPreviousTrack: "media_prev_track",
	KeyMediaNextTrack:     "media_next_track",
	KeyVolumeUp:           "volume_up",
	KeyVolumeDown:         "volume_down",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// KeyFromVirtualKey maps a raw virtual-key code to a logical key.
// Codes outside the handled set map to KeyUnknown.
func KeyFromVirtualKey(vk uint32) Key {
	switch vk {
	case vkLControl:
		return KeyLeftControl
	case vkRControl:
		return KeyRightControl
	case vkLMenu:
		return KeyLeftAlt
	case vkRMenu:
		return KeyRightAlt
	case vkHome:
		return KeyHome
	case vkEnd:
		return KeyEnd
	case vkPrior:
		return KeyPageUp
	case vkNext:
		return KeyPageDown
	case vkUp:
		return KeyUp
	case vkDown:
		return KeyDown
	case vkMediaPlayPause:
		return KeyMediaPlayPause
	case vkMediaStop:
		return KeyMediaStop
	case vkMediaPrevTrack:
		return KeyMediaPreviousTrack
	case vkMediaNextTrack:
		return KeyMediaNextTrack
	case vkVolumeUp:
		return KeyVolumeUp
	case vkVolumeDown:
		return KeyVolumeDown
	default:
		return KeyUnknown
	}
}

// MediaAction is a media-control command produced by classification
type MediaAction int

const (
	ActionPlayPause MediaAction = iota
	ActionStop
	ActionPreviousTrack
	ActionNextTrack
	ActionVolumeUp
	ActionVolumeDown
)

var actionNames = map[MediaAction]string{
	ActionPlayPause:     "PlayPause",
	ActionStop:          "Stop",
	ActionPreviousTrack: "PreviousTrack",
	ActionNextTrack:     "NextTrack",
	ActionVolumeUp:      "VolumeUp",
	ActionVolumeDown:    "VolumeDown",
}

func (a MediaAction) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// VirtualKey returns the media virtual-key code that carries the action
func (a MediaAction) VirtualKey() uint16 {
	switch a {
	case ActionPlayPause:
		return vkMediaPlayPause
	case ActionStop:
		return vkMediaStop
	case ActionPreviousTrack:
		return vkMediaPrevTrack
	case ActionNextTrack:
		return vkMediaNextTrack
	case ActionVolumeUp:
		return vkVolumeUp
	case ActionVolumeDown:
		return vkVolumeDown
	default:
		return 0
	}
}

// chordTable holds the keys that act as media controls while Control and Alt are held
var chordTable = map[Key]MediaAction{
	KeyHome:     ActionPlayPause,
	KeyEnd:      ActionStop,
	KeyPageUp:   ActionPreviousTrack,
	KeyPageDown: ActionNextTrack,
	KeyUp:       ActionVolumeUp,
	KeyDown:     ActionVolumeDown,
}

// mediaKeyTable holds the dedicated media keys eligible for redirection
var mediaKeyTable = map[Key]MediaAction{
	KeyMediaPlayPause:     ActionPlayPause,
	KeyMediaStop:          ActionStop,
	KeyMediaPreviousTrack: ActionPreviousTrack,
	KeyMediaNextTrack:     ActionNextTrack,
}
