package main

// KeyboardHook is the interface for the system-wide keyboard interception
type KeyboardHook interface {
	// Install starts intercepting keyboard events. handler runs on the hook
	// thread for every event and returns true to consume it.
	Install(handler func(KeyEvent) bool) error

	// Uninstall releases the interception
	Uninstall() error
}

// Windows low-level keyboard messages
const (
	wmKeyDownMsg    = 0x0100
	wmKeyUpMsg      = 0x0101
	wmSysKeyDownMsg = 0x0104
	wmSysKeyUpMsg   = 0x0105
)

// transitionFromMessage maps a hook wParam to a key transition
func transitionFromMessage(wParam uintptr) Transition {
	switch wParam {
	case wmKeyDownMsg, wmSysKeyDownMsg:
		return TransitionDown
	case wmKeyUpMsg, wmSysKeyUpMsg:
		return TransitionUp
	default:
		return TransitionOther
	}
}

// eventFromRaw builds a KeyEvent from the hook message and a copied payload
func eventFromRaw(wParam uintptr, payload Payload) KeyEvent {
	return KeyEvent{
		Key:        KeyFromVirtualKey(payload.VirtualKey),
		Transition: transitionFromMessage(wParam),
		Payload:    payload,
	}
}

// Interceptor owns the modifier state and turns each event into a verdict.
// Process must only be called from the hook thread.
type Interceptor struct {
	state      ModifierState
	dispatcher *Dispatcher
	chords     bool
}

// NewInterceptor creates an interceptor. When chords is false, chord
// triggers are ignored and pass through.
func NewInterceptor(dispatcher *Dispatcher, chords bool) *Interceptor {
	return &Interceptor{
		dispatcher: dispatcher,
		chords:     chords,
	}
}

// Process classifies and dispatches one event and reports whether to consume it
func (i *Interceptor) Process(event KeyEvent) bool {
	decision := Classify(event, &i.state)
	if decision.Target == TargetGlobal && !i.chords {
		return false
	}
	i.dispatcher.Dispatch(decision, event.Payload)
	return decision.Consume
}

// State returns a copy of the current modifier state
func (i *Interceptor) State() ModifierState {
	return i.state
}
