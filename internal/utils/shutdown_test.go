package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestShutdownManager_RunsAllTasksAndCollectsErrors(t *testing.T) {
	ctx, sm := NewShutdownManager(context.Background(), time.Second)

	var order []string
	sm.Register(func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	sm.Register(func(context.Context) error {
		order = append(order, "second")
		return errors.New("second failed")
	})
	sm.Register(func(context.Context) error {
		order = append(order, "third")
		return nil
	})

	errs := sm.Shutdown()

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Errorf("tasks ran as %v, want all three in registration order", order)
	}
	if len(errs) != 1 || errs[0].Error() != "second failed" {
		t.Errorf("collected errors = %v, want just the second task's", errs)
	}

	select {
	case <-ctx.Done():
	default:
		t.Error("run context must be cancelled after Shutdown")
	}
}

func TestShutdownManager_TeardownBudgetReachesTasks(t *testing.T) {
	_, sm := NewShutdownManager(context.Background(), 50*time.Millisecond)

	var deadlineSet bool
	sm.Register(func(ctx context.Context) error {
		_, deadlineSet = ctx.Deadline()
		return nil
	})

	if errs := sm.Shutdown(); len(errs) != 0 {
		t.Errorf("unexpected teardown errors: %v", errs)
	}
	if !deadlineSet {
		t.Error("teardown context must carry the configured budget deadline")
	}
}
