package search

import (
	"context"
	"errors"
	"testing"

	"shelfspot/internal/client"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBreakerRanker_OpensAfterConsecutiveFailures(t *testing.T) {
	calls := 0
	failing := rankerFunc(func(context.Context, string, []string) ([]string, error) {
		calls++
		return nil, errors.New("gemini returned 503")
	})
	b := NewBreakerRanker("gemini", failing, zap.NewNop())

	for i := 0; i < breakerMaxFailures; i++ {
		_, err := b.RelevantNames(context.Background(), "lamp", []string{"Lamp"})
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())

	_, err := b.RelevantNames(context.Background(), "lamp", []string{"Lamp"})

	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, breakerMaxFailures, calls, "open breaker must not call the ranker")
}

func TestBreakerRanker_SuccessResetsFailures(t *testing.T) {
	fail := true
	ranker := rankerFunc(func(context.Context, string, []string) ([]string, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return []string{"Lamp"}, nil
	})
	b := NewBreakerRanker("gemini", ranker, zap.NewNop())

	for i := 0; i < breakerMaxFailures-1; i++ {
		_, _ = b.RelevantNames(context.Background(), "q", nil)
	}
	fail = false
	got, err := b.RelevantNames(context.Background(), "q", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lamp"}, got)

	fail = true
	_, _ = b.RelevantNames(context.Background(), "q", nil)

	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestFilter_OpenBreakerDegrades(t *testing.T) {
	failing := rankerFunc(func(context.Context, string, []string) ([]string, error) {
		return nil, errors.New("down")
	})
	f := NewFilter(NewBreakerRanker("gemini", failing, zap.NewNop()), zap.NewNop())
	items := []client.Product{{ID: "1", Name: "Desk Lamp"}, {ID: "2", Name: "Chair"}}

	var res Result
	for i := 0; i <= breakerMaxFailures; i++ {
		res = f.Search(context.Background(), "lamp", items)
	}

	assert.True(t, res.Degraded)
	assert.Equal(t, []string{"Desk Lamp"}, names(res.Products))
}
