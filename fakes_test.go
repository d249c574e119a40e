package main

import (
	"context"
	"io"
	"sync"
	"time"
)

func testLogManager() *LogManager {
	return newWriterLogManager(io.Discard, true)
}

type fakeInjector struct {
	mu      sync.Mutex
	actions []MediaAction
	err     error
}

func (f *fakeInjector) KeyDown(action MediaAction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, action)
	return f.err
}

func (f *fakeInjector) Actions() []MediaAction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]MediaAction(nil), f.actions...)
}

type fakeResolver struct {
	window     uintptr
	foreground uintptr
	lookups    []string
}

func (f *fakeResolver) Resolve(processName string) (TargetWindow, bool) {
	f.lookups = append(f.lookups, processName)
	if f.window == 0 {
		return TargetWindow{}, false
	}
	return TargetWindow{Handle: f.window, ProcessName: processName}, true
}

func (f *fakeResolver) Foreground() uintptr {
	return f.foreground
}

type sentMessage struct {
	hwnd       uintptr
	virtualKey uint16
	payload    Payload
}

type fakeSender struct {
	sends []sentMessage
}

func (f *fakeSender) SendDelayed(hwnd uintptr, virtualKey uint16, payload Payload) Task {
	f.sends = append(f.sends, sentMessage{hwnd: hwnd, virtualKey: virtualKey, payload: payload})
	return noopTask{}
}

type scheduledTask struct {
	delay time.Duration
	fn    func()
}

// fakeExecutor records scheduled work; tests run it explicitly
type fakeExecutor struct {
	tasks []scheduledTask
}

func (f *fakeExecutor) Schedule(delay time.Duration, fn func()) Task {
	f.tasks = append(f.tasks, scheduledTask{delay: delay, fn: fn})
	return noopTask{}
}

func (f *fakeExecutor) RunAll() {
	for _, task := range f.tasks {
		task.fn()
	}
}

type fakeMessenger struct {
	mu    sync.Mutex
	sends []sentMessage
	err   error
}

func (f *fakeMessenger) SendKeyDown(hwnd uintptr, virtualKey uint16, payload Payload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sends = append(f.sends, sentMessage{hwnd: hwnd, virtualKey: virtualKey, payload: payload})
	return nil
}

func (f *fakeMessenger) Sends() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.sends...)
}

type fakeProcessFinder struct {
	pids map[string][]int32
	// err is returned along with any matching pids
	err error
	// block waits for ctx to expire before returning
	block bool
	// stall sleeps without looking at ctx
	stall time.Duration
}

func (f *fakeProcessFinder) FindPIDs(ctx context.Context, name string) ([]int32, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.stall > 0 {
		time.Sleep(f.stall)
	}
	return f.pids[normalizeProcessName(name)], f.err
}

type fakeWindowFinder struct {
	windows    map[int32]uintptr
	foreground uintptr
}

func (f *fakeWindowFinder) MainWindow(pid int32) uintptr {
	return f.windows[pid]
}

func (f *fakeWindowFinder) Foreground() uintptr {
	return f.foreground
}

type fakeHook struct {
	handler     func(KeyEvent) bool
	installErr  error
	uninstalled bool
}

func (f *fakeHook) Install(handler func(KeyEvent) bool) error {
	if f.installErr != nil {
		return f.installErr
	}
	f.handler = handler
	return nil
}

func (f *fakeHook) Uninstall() error {
	f.uninstalled = true
	f.handler = nil
	return nil
}

// Feed pushes an event through the installed handler as the OS would
func (f *fakeHook) Feed(key Key, transition Transition) bool {
	return f.handler(KeyEvent{Key: key, Transition: transition})
}
