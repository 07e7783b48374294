package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects hooks so tests can run OnStart and OnStop by hand.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records the hook without executing it.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called whenever Shutdown is invoked.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown sends on Called without blocking when the channel is full.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called == nil {
		return nil
	}
	select {
	case s.Called <- struct{}{}:
	default:
	}
	return nil
}
