package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func recordingSleep(slept *[]time.Duration) SleepFunc {
	return func(ctx context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		return nil
	}
}

func testPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		Backoff:     ExponentialBackoff(500 * time.Millisecond),
		Retryable:   TransientProviderError,
	}
}

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	var slept []time.Duration
	calls := 0

	err := testPolicy().Do(context.Background(), recordingSleep(&slept), func() error {
		calls++
		if calls < 3 {
			return errors.New("google: model is overloaded")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do() = %v, want nil", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	want := []time.Duration{500 * time.Millisecond, 1 * time.Second}
	if len(slept) != len(want) {
		t.Fatalf("slept %v, want %v", slept, want)
	}
	for i := range want {
		if slept[i] != want[i] {
			t.Errorf("sleep %d = %v, want %v", i, slept[i], want[i])
		}
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	var slept []time.Duration
	calls := 0

	err := testPolicy().Do(context.Background(), recordingSleep(&slept), func() error {
		calls++
		return errors.New("rpc error: code 503 unavailable")
	})
	if err == nil {
		t.Fatal("Do() = nil, want error after exhaustion")
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if len(slept) != 2 {
		t.Errorf("slept %d times, want 2 (no sleep after the final attempt)", len(slept))
	}
}

func TestDoNonRetryableAbortsImmediately(t *testing.T) {
	var slept []time.Duration
	calls := 0

	err := testPolicy().Do(context.Background(), recordingSleep(&slept), func() error {
		calls++
		return errors.New("invalid request")
	})
	if err == nil {
		t.Fatal("Do() = nil, want error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if len(slept) != 0 {
		t.Errorf("slept %d times, want 0", len(slept))
	}
}

func TestDoSleepCancellationAborts(t *testing.T) {
	calls := 0
	cancelled := errors.New("context canceled")

	err := testPolicy().Do(context.Background(), func(ctx context.Context, d time.Duration) error {
		return cancelled
	}, func() error {
		calls++
		return errors.New("503")
	})
	if !errors.Is(err, cancelled) {
		t.Fatalf("Do() = %v, want sleep cancellation error", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestTransientProviderError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("503 service unavailable"), true},
		{errors.New("The model is OVERLOADED"), true},
		{errors.New("permission denied"), false},
	}
	for _, tt := range tests {
		if got := TransientProviderError(tt.err); got != tt.want {
			t.Errorf("TransientProviderError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
