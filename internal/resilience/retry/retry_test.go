package retry

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   5 * time.Millisecond,
		MaxDelay:       50 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

func TestWithBackoff(t *testing.T) {
	t.Parallel()

	serverErr := &HTTPError{StatusCode: 500, Message: "Internal Server Error"}
	badRequest := &HTTPError{StatusCode: 400, Message: "Bad Request"}

	tests := []struct {
		name         string
		failures     int
		err          error
		wantAttempts int
		wantErr      error
	}{
		{
			name:         "first attempt succeeds",
			failures:     0,
			wantAttempts: 1,
		},
		{
			name:         "recovers on third attempt",
			failures:     2,
			err:          serverErr,
			wantAttempts: 3,
		},
		{
			name:         "exhausts attempts on persistent server error",
			failures:     5,
			err:          serverErr,
			wantAttempts: 3,
			wantErr:      serverErr,
		},
		{
			name:         "bad request fails without retry",
			failures:     5,
			err:          badRequest,
			wantAttempts: 1,
			wantErr:      badRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attempts := 0
			err := WithBackoff(context.Background(), fastConfig(), func() error {
				attempts++
				if attempts <= tt.failures {
					return tt.err
				}
				return nil
			})

			if attempts != tt.wantAttempts {
				t.Errorf("attempts = %d, want %d", attempts, tt.wantAttempts)
			}
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want it to wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestWithBackoff_ContextCanceledBetweenAttempts(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	err := WithBackoff(ctx, fastConfig(), func() error {
		attempts++
		if attempts == 2 {
			cancel()
		}
		return &HTTPError{StatusCode: 503, Message: "Service Unavailable"}
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if attempts < 2 {
		t.Errorf("attempts = %d, want at least 2", attempts)
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "context canceled", err: context.Canceled, want: false},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: false},
		{name: "server error", err: &HTTPError{StatusCode: 500}, want: true},
		{name: "bad gateway", err: &HTTPError{StatusCode: 502}, want: true},
		{name: "service unavailable", err: &HTTPError{StatusCode: 503}, want: true},
		{name: "rate limited", err: &HTTPError{StatusCode: 429}, want: true},
		{name: "request timeout", err: &HTTPError{StatusCode: 408}, want: true},
		{name: "bad request", err: &HTTPError{StatusCode: 400}, want: false},
		{name: "not found", err: &HTTPError{StatusCode: 404}, want: false},
		{
			name: "server error wrapped by a transport failure",
			err:  fmt.Errorf("list blogs: %w", &HTTPError{StatusCode: 500, Message: "Internal Server Error"}),
			want: true,
		},
		{name: "connection refused", err: syscall.ECONNREFUSED, want: true},
		{name: "connection reset", err: syscall.ECONNRESET, want: true},
		{name: "timed out", err: syscall.ETIMEDOUT, want: true},
		{name: "network unreachable", err: syscall.ENETUNREACH, want: true},
		{name: "generic error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestListFetchConfig(t *testing.T) {
	t.Parallel()

	cfg := ListFetchConfig()

	// One attempt plus two retries.
	if cfg.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.MaxAttempts)
	}
	if cfg.InitialDelay != 500*time.Millisecond {
		t.Errorf("InitialDelay = %v, want 500ms", cfg.InitialDelay)
	}
	if cfg.Multiplier != 2.0 {
		t.Errorf("Multiplier = %f, want 2.0", cfg.Multiplier)
	}
}

func TestHTTPError_Error(t *testing.T) {
	t.Parallel()

	err := &HTTPError{StatusCode: 503, Message: "Service Unavailable"}
	if got, want := err.Error(), "HTTP 503: Service Unavailable"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAddJitter(t *testing.T) {
	t.Parallel()

	base := 100 * time.Millisecond

	seen := make(map[time.Duration]bool)
	for range 10 {
		got := addJitter(base, 0.2)
		if got < base || got > time.Duration(float64(base)*1.2) {
			t.Errorf("jittered delay %v outside [%v, %v]", got, base, time.Duration(float64(base)*1.2))
		}
		seen[got] = true
	}
	if len(seen) < 2 {
		t.Error("expected jitter to vary across calls")
	}

	if got := addJitter(base, 0); got != base {
		t.Errorf("addJitter with zero fraction = %v, want %v", got, base)
	}
}
