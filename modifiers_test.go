package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifierState_Observe(t *testing.T) {
	tests := []struct {
		name        string
		events      []KeyEvent
		wantControl bool
		wantAlt     bool
	}{
		{
			name:        "initial state",
			events:      nil,
			wantControl: false,
			wantAlt:     false,
		},
		{
			name: "left control down",
			events: []KeyEvent{
				{Key: KeyLeftControl, Transition: TransitionDown},
			},
			wantControl: true,
		},
		{
			name: "right control counts as control",
			events: []KeyEvent{
				{Key: KeyRightControl, Transition: TransitionDown},
			},
			wantControl: true,
		},
		{
			name: "control released by the other side",
			events: []KeyEvent{
				{Key: KeyLeftControl, Transition: TransitionDown},
				{Key: KeyRightControl, Transition: TransitionUp},
			},
			wantControl: false,
		},
		{
			name: "last write wins per modifier",
			events: []KeyEvent{
				{Key: KeyLeftAlt, Transition: TransitionDown},
				{Key: KeyLeftControl, Transition: TransitionDown},
				{Key: KeyLeftAlt, Transition: TransitionUp},
				{Key: KeyLeftAlt, Transition: TransitionDown},
			},
			wantControl: true,
			wantAlt:     true,
		},
		{
			name: "right alt is not tracked",
			events: []KeyEvent{
				{Key: KeyRightAlt, Transition: TransitionDown},
			},
			wantAlt: false,
		},
		{
			name: "other transition clears a modifier",
			events: []KeyEvent{
				{Key: KeyLeftAlt, Transition: TransitionDown},
				{Key: KeyLeftAlt, Transition: TransitionOther},
			},
			wantAlt: false,
		},
		{
			name: "non-modifier keys do not change state",
			events: []KeyEvent{
				{Key: KeyLeftControl, Transition: TransitionDown},
				{Key: KeyHome, Transition: TransitionUp},
				{Key: KeyMediaStop, Transition: TransitionDown},
			},
			wantControl: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var state ModifierState
			for _, evt := range tt.events {
				state.Observe(evt.Key, evt.Transition)
			}
			assert.Equal(t, tt.wantControl, state.ControlDown)
			assert.Equal(t, tt.wantAlt, state.AltDown)
			assert.Equal(t, tt.wantControl && tt.wantAlt, state.Chorded())
		})
	}
}

func TestModifierState_ObserveReportsModifiers(t *testing.T) {
	var state ModifierState
	assert.True(t, state.Observe(KeyLeftControl, TransitionDown))
	assert.True(t, state.Observe(KeyRightControl, TransitionUp))
	assert.True(t, state.Observe(KeyLeftAlt, TransitionDown))
	assert.False(t, state.Observe(KeyRightAlt, TransitionDown))
	assert.False(t, state.Observe(KeyHome, TransitionDown))
}
