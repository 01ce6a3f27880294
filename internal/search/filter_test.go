package search

import (
	"context"
	"errors"
	"testing"

	"shelfspot/internal/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type rankerFunc func(ctx context.Context, query string, names []string) ([]string, error)

func (f rankerFunc) RelevantNames(ctx context.Context, query string, names []string) ([]string, error) {
	return f(ctx, query, names)
}

func catalogItems() []client.Product {
	return []client.Product{
		{ID: "1", Name: "Ergonomic Office Chair", Description: "High-back chair with lumbar support."},
		{ID: "2", Name: "Modern Oak Dining Table", Description: "Solid oak table, seats 6."},
		{ID: "3", Name: "Adjustable Standing Desk Lamp", Description: "LED desk lamp."},
		{ID: "4", Name: "Electric Kettle", Description: "Fast-boiling with auto shut-off."},
	}
}

func names(items []client.Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Name)
	}
	return out
}

func TestFilter_Search(t *testing.T) {
	errRanker := rankerFunc(func(context.Context, string, []string) ([]string, error) {
		return nil, errors.New("quota exceeded")
	})

	tests := []struct {
		name         string
		ranker       Ranker
		query        string
		items        []client.Product
		wantIDs      []string
		wantDegraded bool
	}{
		{
			name:    "blank query returns everything in order",
			ranker:  errRanker,
			query:   "   ",
			items:   catalogItems(),
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name: "ranker result keeps local order",
			ranker: rankerFunc(func(context.Context, string, []string) ([]string, error) {
				return []string{"Electric Kettle", "Ergonomic Office Chair"}, nil
			}),
			query:   "kitchen or office",
			items:   catalogItems(),
			wantIDs: []string{"1", "4"},
		},
		{
			name: "unknown names from ranker are ignored",
			ranker: rankerFunc(func(context.Context, string, []string) ([]string, error) {
				return []string{"Flying Car"}, nil
			}),
			query:   "car",
			items:   catalogItems(),
			wantIDs: []string{},
		},
		{
			name:         "ranker error falls back to keyword match on name",
			ranker:       errRanker,
			query:        "DESK",
			items:        catalogItems(),
			wantIDs:      []string{"3"},
			wantDegraded: true,
		},
		{
			name:         "keyword match covers description",
			ranker:       errRanker,
			query:        "oak",
			items:        catalogItems(),
			wantIDs:      []string{"2"},
			wantDegraded: true,
		},
		{
			name:         "no ranker configured",
			query:        "chair",
			items:        catalogItems(),
			wantIDs:      []string{"1"},
			wantDegraded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewFilter(tt.ranker, zap.NewNop()).Search(context.Background(), tt.query, tt.items)

			got := make([]string, 0, len(res.Products))
			for _, p := range res.Products {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
			assert.Equal(t, tt.wantDegraded, res.Degraded)
			if tt.wantDegraded {
				assert.Equal(t, FallbackNotice, res.Notice)
			} else {
				assert.Empty(t, res.Notice)
			}
		})
	}
}

func TestFilter_EmptyListSkipsRanker(t *testing.T) {
	called := false
	ranker := rankerFunc(func(context.Context, string, []string) ([]string, error) {
		called = true
		return nil, nil
	})

	res := NewFilter(ranker, zap.NewNop()).Search(context.Background(), "lamp", nil)

	assert.False(t, called)
	assert.Empty(t, res.Products)
	assert.NotNil(t, res.Products)
	assert.False(t, res.Degraded)
}

func TestFilter_SendsUniqueNames(t *testing.T) {
	var sent []string
	ranker := rankerFunc(func(_ context.Context, query string, names []string) ([]string, error) {
		assert.Equal(t, "lamp", query)
		sent = names
		return []string{"Lamp"}, nil
	})
	items := []client.Product{{ID: "1", Name: "Lamp"}, {ID: "2", Name: "Chair"}, {ID: "3", Name: "Lamp"}}

	res := NewFilter(ranker, zap.NewNop()).Search(context.Background(), " lamp ", items)

	assert.Equal(t, []string{"Lamp", "Chair"}, sent)
	require.Len(t, res.Products, 2)
	assert.Equal(t, []string{"Lamp", "Lamp"}, names(res.Products))
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	items := catalogItems()

	res := NewFilter(nil, zap.NewNop()).Search(context.Background(), "", items)
	res.Products[0].Name = "changed"

	assert.Equal(t, "Ergonomic Office Chair", items[0].Name)
}
