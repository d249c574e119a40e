package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterceptor(resolver *fakeResolver, chords bool) (*Interceptor, *fakeInjector, *fakeSender) {
	d, injector, sender := newTestDispatcher(resolver, true)
	return NewInterceptor(d, chords), injector, sender
}

func feed(i *Interceptor, key Key, transition Transition) bool {
	return i.Process(KeyEvent{Key: key, Transition: transition})
}

func TestInterceptor_ChordPlayPause(t *testing.T) {
	resolver := &fakeResolver{window: firefoxWindow}
	i, injector, sender := newTestInterceptor(resolver, true)

	assert.False(t, feed(i, KeyLeftControl, TransitionDown))
	assert.False(t, feed(i, KeyLeftAlt, TransitionDown))
	assert.True(t, feed(i, KeyHome, TransitionDown))

	assert.Equal(t, []MediaAction{ActionPlayPause}, injector.Actions())
	assert.Empty(t, resolver.lookups)
	assert.Empty(t, sender.sends)
}

func TestInterceptor_ChordReleaseAndModifierRelease(t *testing.T) {
	i, injector, _ := newTestInterceptor(&fakeResolver{}, true)

	feed(i, KeyRightControl, TransitionDown)
	feed(i, KeyLeftAlt, TransitionDown)
	assert.True(t, feed(i, KeyPageDown, TransitionDown))
	assert.False(t, feed(i, KeyPageDown, TransitionUp))

	feed(i, KeyLeftAlt, TransitionUp)
	assert.False(t, feed(i, KeyPageDown, TransitionDown))

	assert.Equal(t, []MediaAction{ActionNextTrack}, injector.Actions())
	assert.Equal(t, ModifierState{ControlDown: true}, i.State())
}

func TestInterceptor_ChordAutoRepeat(t *testing.T) {
	i, injector, _ := newTestInterceptor(&fakeResolver{}, true)

	feed(i, KeyLeftControl, TransitionDown)
	feed(i, KeyLeftAlt, TransitionDown)
	for n := 0; n < 3; n++ {
		assert.True(t, feed(i, KeyUp, TransitionDown))
	}

	assert.Equal(t, []MediaAction{ActionVolumeUp, ActionVolumeUp, ActionVolumeUp}, injector.Actions())
}

func TestInterceptor_MediaNextTrackToBackgroundFirefox(t *testing.T) {
	resolver := &fakeResolver{window: firefoxWindow, foreground: 0x4242}
	i, injector, sender := newTestInterceptor(resolver, true)

	assert.False(t, feed(i, KeyMediaNextTrack, TransitionDown))

	require.Len(t, sender.sends, 1)
	assert.Equal(t, firefoxWindow, sender.sends[0].hwnd)
	assert.Equal(t, uint16(vkMediaNextTrack), sender.sends[0].virtualKey)
	assert.Empty(t, injector.Actions())
}

func TestInterceptor_MediaStopWithFirefoxInForeground(t *testing.T) {
	resolver := &fakeResolver{window: firefoxWindow, foreground: firefoxWindow}
	i, _, sender := newTestInterceptor(resolver, true)

	assert.False(t, feed(i, KeyMediaStop, TransitionDown))
	assert.Empty(t, sender.sends)
}

func TestInterceptor_ChordsDisabled(t *testing.T) {
	i, injector, _ := newTestInterceptor(&fakeResolver{}, false)

	feed(i, KeyLeftControl, TransitionDown)
	feed(i, KeyLeftAlt, TransitionDown)
	assert.False(t, feed(i, KeyHome, TransitionDown))
	assert.Empty(t, injector.Actions())
}

func TestEventFromRaw(t *testing.T) {
	tests := []struct {
		name           string
		wParam         uintptr
		vk             uint32
		wantKey        Key
		wantTransition Transition
	}{
		{"keydown", wmKeyDownMsg, vkHome, KeyHome, TransitionDown},
		{"syskeydown counts as down", wmSysKeyDownMsg, vkEnd, KeyEnd, TransitionDown},
		{"keyup", wmKeyUpMsg, vkLMenu, KeyLeftAlt, TransitionUp},
		{"syskeyup", wmSysKeyUpMsg, vkLControl, KeyLeftControl, TransitionUp},
		{"unknown message", 0x0200, vkMediaStop, KeyMediaStop, TransitionOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := Payload{VirtualKey: tt.vk, ScanCode: 0x47}
			evt := eventFromRaw(tt.wParam, payload)
			assert.Equal(t, tt.wantKey, evt.Key)
			assert.Equal(t, tt.wantTransition, evt.Transition)
			assert.Equal(t, payload, evt.Payload)
		})
	}
}
