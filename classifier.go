package main

// TargetMode says where a recognized action is delivered
type TargetMode int

const (
	TargetNone TargetMode = iota
	// TargetGlobal injects a synthetic media key for whichever window has focus
	TargetGlobal
	// TargetRedirect delivers the action to the configured process window
	TargetRedirect
)

func (m TargetMode) String() string {
	switch m {
	case TargetGlobal:
		return "global"
	case TargetRedirect:
		return "redirect"
	default:
		return "none"
	}
}

// Decision is the classifier's verdict for one event
type Decision struct {
	// Consume removes the event from the hook chain
	Consume   bool
	HasAction bool
	Action    MediaAction
	Target    TargetMode
}

var passThrough = Decision{}

// Classify decides what to do with a single key event. Modifier events update
// state and pass through. Chords are consumed and dispatched globally; dedicated
// media keys are never consumed and are redirected. Everything else passes through.
func Classify(event KeyEvent, state *ModifierState) Decision {
	if state.Observe(event.Key, event.Transition) {
		return passThrough
	}

	if event.Transition != TransitionDown {
		return passThrough
	}

	if state.Chorded() {
		if action, ok := chordTable[event.Key]; ok {
			return Decision{
				Consume:   true,
				HasAction: true,
				Action:    action,
				Target:    TargetGlobal,
			}
		}
	}

	if action, ok := mediaKeyTable[event.Key]; ok {
		return Decision{
			HasAction: true,
			Action:    action,
			Target:    TargetRedirect,
		}
	}

	return passThrough
}
