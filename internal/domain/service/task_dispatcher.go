package service

import (
	"context"
	"errors"
)

var (
	// ErrDispatchQueueFull is returned when the background queue cannot accept more work.
	ErrDispatchQueueFull = errors.New("dispatch queue is full")
	// ErrDispatcherStopped is returned after shutdown has begun.
	ErrDispatcherStopped = errors.New("dispatcher is stopped")
)

// TaskDispatcher runs detached units of work on a bounded background queue.
// Task outcomes are observed through logs and metrics only.
type TaskDispatcher interface {
	Submit(name string, task func(ctx context.Context)) error
}
