package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNew_WithNilConfig(t *testing.T) {
	retrier := New(nil)
	if retrier == nil {
		t.Fatal("New(nil) returned nil")
	}
	if retrier.config.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", retrier.config.MaxRetries)
	}
}

func TestNew_WithZeroValues(t *testing.T) {
	retrier := New(&Config{})

	if retrier.config.InitialInterval != 1*time.Second {
		t.Errorf("InitialInterval = %v, want 1s (default)", retrier.config.InitialInterval)
	}
	if retrier.config.MaxInterval != 30*time.Second {
		t.Errorf("MaxInterval = %v, want 30s (default)", retrier.config.MaxInterval)
	}
	if retrier.config.Multiplier != 2.0 {
		t.Errorf("Multiplier = %f, want 2.0 (default)", retrier.config.Multiplier)
	}
}

func TestDo_SuccessFirstAttempt(t *testing.T) {
	calls := 0
	result := Do(context.Background(), &Config{MaxRetries: 3, InitialInterval: time.Millisecond}, func(ctx context.Context) error {
		calls++
		return nil
	})

	if result.Err != nil {
		t.Errorf("Err = %v, want nil", result.Err)
	}
	if result.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", result.Attempts)
	}
	if calls != 1 {
		t.Errorf("operation called %d times, want 1", calls)
	}
}

func TestDo_RetriesTransientErrors(t *testing.T) {
	calls := 0
	transient := errors.New("transient")

	result := Do(context.Background(), &Config{MaxRetries: 5, InitialInterval: time.Millisecond, JitterFactor: 0}, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return transient
		}
		return nil
	})

	if result.Err != nil {
		t.Errorf("Err = %v, want nil", result.Err)
	}
	if result.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", result.Attempts)
	}
}

func TestDo_PermanentErrorStopsRetries(t *testing.T) {
	calls := 0
	permanent := errors.New("bad request")

	result := Do(context.Background(), &Config{MaxRetries: 5, InitialInterval: time.Millisecond}, func(ctx context.Context) error {
		calls++
		return Permanent(permanent)
	})

	if !errors.Is(result.Err, permanent) {
		t.Errorf("Err = %v, want %v", result.Err, permanent)
	}
	if calls != 1 {
		t.Errorf("operation called %d times, want 1", calls)
	}
}

func TestDo_MaxRetriesExceeded(t *testing.T) {
	transient := errors.New("transient")

	result := Do(context.Background(), &Config{MaxRetries: 2, InitialInterval: time.Millisecond, JitterFactor: 0}, func(ctx context.Context) error {
		return transient
	})

	if !errors.Is(result.Err, ErrMaxRetriesExceeded) {
		t.Errorf("Err = %v, want %v", result.Err, ErrMaxRetriesExceeded)
	}
	if !errors.Is(result.LastError, transient) {
		t.Errorf("LastError = %v, want %v", result.LastError, transient)
	}
	if result.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", result.Attempts)
	}
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := Do(ctx, DefaultConfig(), func(ctx context.Context) error {
		return errors.New("should not matter")
	})

	if !errors.Is(result.Err, ErrContextCanceled) {
		t.Errorf("Err = %v, want %v", result.Err, ErrContextCanceled)
	}
}

func TestPermanent_NilError(t *testing.T) {
	if Permanent(nil) != nil {
		t.Error("Permanent(nil) should be nil")
	}
}
