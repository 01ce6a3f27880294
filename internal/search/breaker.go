package search

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const (
	breakerMaxFailures = 3
	breakerOpenTimeout = 30 * time.Second
)

// BreakerRanker stops calling a failing ranker for a while so searches
// fall back to keyword matching without waiting on timeouts.
type BreakerRanker struct {
	next Ranker
	cb   *gobreaker.CircuitBreaker[[]string]
}

func NewBreakerRanker(name string, next Ranker, logger *zap.Logger) *BreakerRanker {
	return &BreakerRanker{
		next: next,
		cb: gobreaker.NewCircuitBreaker[[]string](gobreaker.Settings{
			Name:    name,
			Timeout: breakerOpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerMaxFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Info("ranker breaker state changed",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		}),
	}
}

func (b *BreakerRanker) RelevantNames(ctx context.Context, query string, names []string) ([]string, error) {
	return b.cb.Execute(func() ([]string, error) {
		return b.next.RelevantNames(ctx, query, names)
	})
}

func (b *BreakerRanker) State() gobreaker.State {
	return b.cb.State()
}
