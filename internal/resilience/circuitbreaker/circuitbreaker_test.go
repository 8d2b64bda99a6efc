package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

var errAPIDown = errors.New("blog API unavailable")

func testConfig() Config {
	return Config{
		Name:             "blog-api-test",
		MaxRequests:      3,
		Interval:         10 * time.Second,
		Timeout:          time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

func fail(cb *CircuitBreaker) error {
	_, err := cb.Execute(func() (interface{}, error) {
		return nil, errAPIDown
	})
	return err
}

func TestCircuitBreaker_PassesThroughWhileClosed(t *testing.T) {
	cb := New(testConfig())

	if cb.State() != gobreaker.StateClosed {
		t.Fatalf("initial state = %v, want Closed", cb.State())
	}
	if cb.Name() != "blog-api-test" {
		t.Errorf("Name() = %q, want %q", cb.Name(), "blog-api-test")
	}

	result, err := cb.Execute(func() (interface{}, error) {
		return "listed", nil
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if result != "listed" {
		t.Errorf("result = %v, want %q", result, "listed")
	}

	if err := fail(cb); !errors.Is(err, errAPIDown) {
		t.Errorf("error = %v, want the operation's own error while closed", err)
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("state after one failure = %v, want Closed", cb.State())
	}
}

func TestCircuitBreaker_OpensAfterRepeatedFailures(t *testing.T) {
	cb := New(testConfig())

	// Four failures and one success keep the ratio above the 60% threshold
	// once the fifth request satisfies MinRequests.
	for i := 0; i < 4; i++ {
		if err := fail(cb); !errors.Is(err, errAPIDown) {
			t.Fatalf("failure %d: error = %v", i, err)
		}
	}
	if _, err := cb.Execute(func() (interface{}, error) { return "ok", nil }); err != nil {
		t.Fatalf("success request failed: %v", err)
	}
	if err := fail(cb); !errors.Is(err, errAPIDown) {
		t.Fatalf("tripping failure: error = %v", err)
	}

	if !cb.IsOpen() {
		t.Fatalf("state = %v, want Open", cb.State())
	}

	_, err := cb.Execute(func() (interface{}, error) {
		t.Error("operation must not run while the circuit is open")
		return nil, nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, want gobreaker.ErrOpenState", err)
	}
}

func TestCircuitBreaker_RecoversThroughHalfOpen(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRequests = 2
	cfg.Timeout = 100 * time.Millisecond
	cb := New(cfg)

	for i := 0; i < 6; i++ {
		_ = fail(cb)
	}
	if cb.State() != gobreaker.StateOpen {
		t.Fatalf("state = %v, want Open before recovery", cb.State())
	}

	time.Sleep(150 * time.Millisecond)

	if _, err := cb.Execute(func() (interface{}, error) { return "recovered", nil }); err != nil {
		t.Errorf("half-open probe failed: %v", err)
	}
	if cb.State() == gobreaker.StateOpen {
		t.Errorf("state = %v, want the circuit to leave Open after a successful probe", cb.State())
	}
}

func TestCircuitBreaker_StaysClosedBelowMinRequests(t *testing.T) {
	cfg := testConfig()
	cfg.FailureThreshold = 0.5
	cfg.MinRequests = 10
	cb := New(cfg)

	for i := 0; i < 4; i++ {
		if err := fail(cb); !errors.Is(err, errAPIDown) {
			t.Fatalf("failure %d: error = %v", i, err)
		}
	}

	if cb.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, want Closed while below MinRequests", cb.State())
	}
}

func TestBlogAPIConfig(t *testing.T) {
	cfg := BlogAPIConfig()

	if cfg.Name != "blog-api" {
		t.Errorf("Name = %q, want %q", cfg.Name, "blog-api")
	}
	if cfg.MaxRequests != 3 {
		t.Errorf("MaxRequests = %d, want 3", cfg.MaxRequests)
	}
	if cfg.FailureThreshold != 0.6 {
		t.Errorf("FailureThreshold = %f, want 0.6", cfg.FailureThreshold)
	}
	if cfg.MinRequests != 5 {
		t.Errorf("MinRequests = %d, want 5", cfg.MinRequests)
	}
}
