package llm

import (
	"context"
	"log/slog"

	"careconnect/config"
	"careconnect/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// ErrUnavailable is returned while the provider's circuit is open or the rate limiter
// gave up waiting.
var ErrUnavailable = service.ErrModelUnavailable

// guard throttles outbound calls and stops calling a provider that keeps failing.
type guard[T any] struct {
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[T]
}

func newGuard[T any](name string, cfg config.LLMConfig, limiter *rate.Limiter, logger *slog.Logger) *guard[T] {
	maxFailures := cfg.Breaker.MaxFailures

	return &guard[T]{
		limiter: limiter,
		breaker: gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     cfg.Breaker.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("LLM circuit breaker state changed",
					slog.String("provider", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		}),
	}
}

// do waits for a rate token and runs fn through the breaker.
func (g *guard[T]) do(ctx context.Context, fn func() (T, error)) (T, error) {
	var zero T

	if err := g.limiter.Wait(ctx); err != nil {
		return zero, errors.Wrap(ErrUnavailable, err.Error())
	}

	result, err := g.breaker.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return zero, errors.Wrap(ErrUnavailable, err.Error())
	}

	return result, err
}

// NewLimiter builds the limiter shared by every provider.
func NewLimiter(cfg *config.Config) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(cfg.LLM.RateLimit), cfg.LLM.Burst)
}
