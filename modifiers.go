package main

// Transition is the direction of a raw key event
type Transition int

const (
	TransitionOther Transition = iota
	TransitionDown
	TransitionUp
)

func (t Transition) String() string {
	switch t {
	case TransitionDown:
		return "down"
	case TransitionUp:
		return "up"
	default:
		return "other"
	}
}

// Payload is a by-value copy of the low-level event data. The OS only
// guarantees the original structure for the duration of the callback.
type Payload struct {
	VirtualKey uint32
	ScanCode   uint32
	Flags      uint32
	Time       uint32
	ExtraInfo  uintptr
}

// KeyEvent is one observed keyboard event
type KeyEvent struct {
	Key        Key
	Transition Transition
	Payload    Payload
}

// ModifierState tracks the chording modifiers. The zero value has both released.
// It is only touched from the hook thread.
type ModifierState struct {
	ControlDown bool
	AltDown     bool
}

// Observe updates the state from a key event and reports whether the key
// was a tracked modifier. Right Alt is deliberately not tracked.
func (s *ModifierState) Observe(key Key, transition Transition) bool {
	down := transition == TransitionDown
	switch key {
	case KeyLeftControl, KeyRightControl:
		s.ControlDown = down
		return true
	case KeyLeftAlt:
		s.AltDown = down
		return true
	default:
		return false
	}
}

// Chorded reports whether both Control and Alt are held
func (s *ModifierState) Chorded() bool {
	return s.ControlDown && s.AltDown
}
