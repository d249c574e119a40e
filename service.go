package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Service is the application lifecycle around the keyboard hook
type Service interface {
	Start() error
	Wait(ctx context.Context)
	Stop()
	Stats() DispatchStats
}

// ServiceDependencies are the platform capabilities the service drives
type ServiceDependencies struct {
	Hook      KeyboardHook
	Injector  Injector
	Processes ProcessFinder
	Windows   WindowFinder
	Messenger WindowMessenger
	Executor  Executor
}

// NewPlatformDependencies wires the real OS capabilities
func NewPlatformDependencies(logManager *LogManager) (ServiceDependencies, error) {
	injector, err := NewInjector()
	if err != nil {
		return ServiceDependencies{}, err
	}
	return ServiceDependencies{
		Hook:      NewKeyboardHook(),
		Injector:  injector,
		Processes: NewProcessFinder(),
		Windows:   NewWindowFinder(),
		Messenger: NewWindowMessenger(),
		Executor:  NewExecutor(logManager),
	}, nil
}

type service struct {
	config              *Config
	deps                ServiceDependencies
	instance            *SingleInstance
	logManager          *LogManager
	notificationManager *NotificationManager

	mu          sync.Mutex
	running     bool
	dispatcher  *Dispatcher
	interceptor *Interceptor
}

// NewService creates the service. instance may be nil to skip the single-instance guard.
func NewService(config *Config, deps ServiceDependencies, instance *SingleInstance, logManager *LogManager, notificationManager *NotificationManager) Service {
	return &service{
		config:              config,
		deps:                deps,
		instance:            instance,
		logManager:          logManager,
		notificationManager: notificationManager,
	}
}

// Start builds the dispatch pipeline and installs the hook. Any failure
// releases what was acquired and is returned to the caller.
func (s *service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.New("service already running")
	}

	if s.instance != nil {
		if err := s.instance.TryLock(); err != nil {
			return err
		}
	}

	resolver := NewResolver(s.deps.Processes, s.deps.Windows, s.config.Redirect.ResolveTimeout)
	sender := NewDelayedSender(s.deps.Executor, s.deps.Messenger, s.config.Redirect.Delay, s.logManager)
	s.dispatcher = NewDispatcher(s.deps.Injector, resolver, sender, DispatcherOptions{
		TargetProcess:   s.config.Target.ProcessName,
		RedirectEnabled: s.config.Redirect.Enabled,
	}, s.logManager)
	s.interceptor = NewInterceptor(s.dispatcher, s.config.Chords.Enabled)

	if err := s.deps.Hook.Install(s.interceptor.Process); err != nil {
		s.logManager.LogError("Keyboard hook installation failed", err)
		if s.instance != nil {
			s.instance.Release()
		}
		return fmt.Errorf("failed to start keyboard interception: %w", err)
	}

	s.running = true
	s.logManager.LogInfo("Keyboard hook installed",
		"target", s.config.Target.ProcessName,
		"redirect", s.config.Redirect.Enabled,
		"delay", s.config.Redirect.Delay,
		"chords", s.config.Chords.Enabled,
	)
	if s.notificationManager != nil {
		s.notificationManager.NotifyInfo("Media hotkeys active")
	}
	return nil
}

// Wait blocks until ctx is done
func (s *service) Wait(ctx context.Context) {
	<-ctx.Done()
	s.logManager.LogInfo("Shutdown requested")
}

// Stop uninstalls the hook. In-flight delayed sends are abandoned.
func (s *service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	if err := s.deps.Hook.Uninstall(); err != nil {
		s.logManager.LogWarning("Keyboard hook uninstall failed", "error", err)
	}

	stats := s.dispatcher.Stats()
	s.logManager.LogInfo("Keyboard hook removed",
		"injected", stats.Injected,
		"inject_failures", stats.InjectFailures,
		"redirected", stats.Redirected,
		"redirect_misses", stats.RedirectMisses,
		"foreground_skips", stats.ForegroundSkips,
	)

	if s.instance != nil {
		s.instance.Release()
	}
}

func (s *service) Stats() DispatchStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dispatcher == nil {
		return DispatchStats{}
	}
	return s.dispatcher.Stats()
}
