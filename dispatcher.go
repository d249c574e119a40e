package main

import "sync/atomic"

// WindowResolver finds redirect targets and the current foreground window
type WindowResolver interface {
	Resolve(processName string) (TargetWindow, bool)
	Foreground() uintptr
}

// KeySender hands a key-down message to a window asynchronously
type KeySender interface {
	SendDelayed(hwnd uintptr, virtualKey uint16, payload Payload) Task
}

// DispatchStats counts what the dispatcher did since start
type DispatchStats struct {
	Injected        uint64 `json:"injected"`
	InjectFailures  uint64 `json:"inject_failures"`
	Redirected      uint64 `json:"redirected"`
	RedirectMisses  uint64 `json:"redirect_misses"`
	ForegroundSkips uint64 `json:"foreground_skips"`
}

// Dispatcher delivers classified media actions
type Dispatcher struct {
	injector      Injector
	resolver      WindowResolver
	sender        KeySender
	targetProcess string
	redirect      bool
	logManager    *LogManager

	injected        atomic.Uint64
	injectFailures  atomic.Uint64
	redirected      atomic.Uint64
	redirectMisses  atomic.Uint64
	foregroundSkips atomic.Uint64
}

// DispatcherOptions configures a Dispatcher
type DispatcherOptions struct {
	TargetProcess   string
	RedirectEnabled bool
}

// NewDispatcher creates an action dispatcher
func NewDispatcher(injector Injector, resolver WindowResolver, sender KeySender, opts DispatcherOptions, logManager *LogManager) *Dispatcher {
	return &Dispatcher{
		injector:      injector,
		resolver:      resolver,
		sender:        sender,
		targetProcess: opts.TargetProcess,
		redirect:      opts.RedirectEnabled,
		logManager:    logManager,
	}
}

// Dispatch carries out a decision. It never blocks on delivery and never fails.
func (d *Dispatcher) Dispatch(decision Decision, payload Payload) {
	if !decision.HasAction {
		return
	}

	switch decision.Target {
	case TargetGlobal:
		d.dispatchGlobal(decision.Action)
	case TargetRedirect:
		if d.redirect {
			d.dispatchRedirect(decision.Action, payload)
		}
	}
}

func (d *Dispatcher) dispatchGlobal(action MediaAction) {
	if err := d.injector.KeyDown(action); err != nil {
		d.injectFailures.Add(1)
		d.logManager.LogDebug("Media key injection failed", "action", action.String(), "error", err)
		return
	}
	d.injected.Add(1)
	d.logManager.LogDispatch(action, TargetGlobal)
}

func (d *Dispatcher) dispatchRedirect(action MediaAction, payload Payload) {
	target, ok := d.resolver.Resolve(d.targetProcess)
	if !ok {
		// The un-consumed media key still reaches whoever handles it by default
		d.redirectMisses.Add(1)
		d.logManager.LogDebug("No redirect target window", "process", d.targetProcess, "action", action.String())
		return
	}

	if target.Handle == d.resolver.Foreground() {
		d.foregroundSkips.Add(1)
		d.logManager.LogDebug("Redirect target is in the foreground", "process", target.ProcessName, "action", action.String())
		return
	}

	d.sender.SendDelayed(target.Handle, action.VirtualKey(), payload)
	d.redirected.Add(1)
	d.logManager.LogDispatch(action, TargetRedirect, "process", target.ProcessName, "hwnd", target.Handle)
}

// Stats returns a snapshot of the dispatch counters
func (d *Dispatcher) Stats() DispatchStats {
	return DispatchStats{
		Injected:        d.injected.Load(),
		InjectFailures:  d.injectFailures.Load(),
		Redirected:      d.redirected.Load(),
		RedirectMisses:  d.redirectMisses.Load(),
		ForegroundSkips: d.foregroundSkips.Load(),
	}
}
