// Package circuitbreaker shields outbound calls behind a
// github.com/sony/gobreaker circuit so a failing upstream stops eating
// request budget. Callers are expected to fall back to heuristics when
// the circuit reports open.
package circuitbreaker

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// Config tunes a single circuit.
type Config struct {
	// Name identifies the circuit in logs.
	Name string

	// MaxRequests is how many probe requests the half-open state admits.
	MaxRequests uint32

	// Interval is the closed-state window after which counts reset.
	Interval time.Duration

	// Timeout is how long the circuit stays open before probing again.
	Timeout time.Duration

	// FailureThreshold trips the circuit once the failure ratio within a
	// window reaches it, e.g. 0.6 for 60%.
	FailureThreshold float64

	// MinRequests is the sample size required before the ratio is
	// consulted at all.
	MinRequests uint32
}

// DefaultConfig returns moderate settings suitable for most upstreams.
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// PipelineAPIConfig returns settings for NLP pipeline backends. Both
// providers get the same treatment; name tells the logs apart.
func PipelineAPIConfig(name string) Config {
	return DefaultConfig(name)
}

// ContentLocatorConfig returns settings for webpage fetching. Origin
// sites are third-party and flaky, so the threshold is more forgiving
// and the counting window longer.
func ContentLocatorConfig() Config {
	return Config{
		Name:             "content-locator",
		MaxRequests:      5,
		Interval:         60 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.7,
		MinRequests:      5,
	}
}

// CircuitBreaker wraps a gobreaker circuit with state change logging.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
	name    string
}

// New builds a circuit from cfg.
func New(cfg Config) *CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}

	return &CircuitBreaker{
		breaker: gobreaker.NewCircuitBreaker(settings),
		name:    cfg.Name,
	}
}

// Execute runs fn through the circuit. When the circuit is open the call
// fails fast with gobreaker.ErrOpenState and fn never runs.
func (cb *CircuitBreaker) Execute(fn func() (any, error)) (any, error) {
	return cb.breaker.Execute(fn)
}

// State reports the current circuit state.
func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.breaker.State()
}

// Name reports the circuit name.
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// IsOpen reports whether the circuit is currently rejecting calls.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.breaker.State() == gobreaker.StateOpen
}
