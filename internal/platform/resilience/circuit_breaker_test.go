package resilience

import (
	"errors"
	"testing"
	"time"
)

func newTestBreaker(threshold int, openTimeout time.Duration) (*CircuitBreaker, *time.Time) {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: threshold,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   1,
	})
	now := time.Date(2026, 3, 2, 3, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	return b, &now
}

func TestCircuitBreaker_OpensAfterThresholdAndRecovers(t *testing.T) {
	b, now := newTestBreaker(2, 5*time.Second)

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}
	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	*now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second probe to be rejected, got %v", err)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestCircuitBreaker_ExecuteIgnoresNonFailures(t *testing.T) {
	b, _ := newTestBreaker(1, time.Minute)
	errNotFound := errors.New("status=404")
	errTransient := errors.New("status=503")
	isTransient := func(err error) bool { return errors.Is(err, errTransient) }

	if err := b.Execute(func() error { return errNotFound }, isTransient); !errors.Is(err, errNotFound) {
		t.Fatalf("expected passthrough error, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("non-transient error must not open breaker, got %s", state)
	}

	_ = b.Execute(func() error { return errTransient }, isTransient)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after transient failure, got %s", state)
	}

	called := false
	err := b.Execute(func() error {
		called = true
		return nil
	}, isTransient)
	if !errors.Is(err, ErrCircuitOpen) || called {
		t.Fatalf("expected rejection without calling fn, err=%v called=%v", err, called)
	}
}

func TestCircuitBreakerConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	got := CircuitBreakerConfig{Enabled: true}.withDefaults()
	want := DefaultCircuitBreakerConfig()
	if got.FailureThreshold != want.FailureThreshold || got.OpenTimeout != want.OpenTimeout || got.HalfOpenMaxReq != want.HalfOpenMaxReq {
		t.Fatalf("unexpected defaulted config: got=%+v want=%+v", got, want)
	}
}

func TestCircuitBreakerConfig_WithDefaultsKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	in := CircuitBreakerConfig{FailureThreshold: 7, OpenTimeout: time.Second, HalfOpenMaxReq: 2}
	if got := in.withDefaults(); got != in {
		t.Fatalf("explicit values overwritten: got=%+v want=%+v", got, in)
	}
}
