package shutdown

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"
)

func TestWithSignals_NotCanceledInitially(t *testing.T) {
	ctx, stop := WithSignals(context.Background())
	defer stop()

	select {
	case <-ctx.Done():
		t.Fatal("context should not be canceled before a signal")
	default:
	}
}

func TestWithSignals_Signal(t *testing.T) {
	ctx, stop := WithSignals(context.Background())
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGINT); err != nil {
		t.Fatalf("send signal: %v", err)
	}

	select {
	case <-ctx.Done():
		if !errors.Is(ctx.Err(), context.Canceled) {
			t.Errorf("ctx.Err() = %v, want context.Canceled", ctx.Err())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("context not canceled after SIGINT")
	}
}

func TestWithSignals_Stop(t *testing.T) {
	ctx, stop := WithSignals(context.Background())
	stop()

	if ctx.Err() == nil {
		t.Error("stop should cancel the context")
	}

	// Idempotent.
	stop()
}

func TestWithSignals_ParentCanceled(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := WithSignals(parent)
	defer stop()

	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not canceled with parent")
	}
}
