package utils

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const defaultTeardownBudget = 15 * time.Second

// ShutdownManager cancels the run context on SIGINT/SIGTERM and executes the
// registered teardown tasks under a bounded budget. Teardown errors are
// collected and handed back to the caller rather than terminating the process
// from inside the manager.
type ShutdownManager struct {
	cancelFunc    context.CancelFunc
	timeout       time.Duration
	shutdownTasks []func(context.Context) error
	sigChan       chan os.Signal
	mu            sync.Mutex
}

// NewShutdownManager derives a cancellable context and starts listening for
// termination signals immediately. A zero timeout falls back to the default
// teardown budget.
func NewShutdownManager(ctx context.Context, timeout time.Duration) (context.Context, *ShutdownManager) {
	if timeout <= 0 {
		timeout = defaultTeardownBudget
	}

	ctx, cancel := context.WithCancel(ctx)
	manager := &ShutdownManager{
		cancelFunc: cancel,
		timeout:    timeout,
		sigChan:    make(chan os.Signal, 1),
	}
	signal.Notify(manager.sigChan, syscall.SIGINT, syscall.SIGTERM)

	return ctx, manager
}

func (sm *ShutdownManager) Register(task func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.shutdownTasks = append(sm.shutdownTasks, task)
}

// Wait blocks until a termination signal arrives, then runs teardown and
// returns the collected errors. Intended as the tail of main.
func (sm *ShutdownManager) Wait() []error {
	sig := <-sm.sigChan
	log.Printf("[SHUTDOWN] Received signal: %v", sig)
	return sm.Shutdown()
}

// Shutdown cancels the run context and executes every registered task in
// registration order under the teardown budget. A failing task does not stop
// the ones after it.
func (sm *ShutdownManager) Shutdown() []error {
	sm.cancelFunc()

	ctx, cancel := context.WithTimeout(context.Background(), sm.timeout)
	defer cancel()

	sm.mu.Lock()
	defer sm.mu.Unlock()

	var errs []error
	for _, task := range sm.shutdownTasks {
		if err := task(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
