package search

import (
	"context"
	"strings"

	"shelfspot/internal/client"

	"go.uber.org/zap"
)

const FallbackNotice = "Smart search is unavailable. Displaying results using basic keyword matching."

// Ranker picks the names relevant to a query out of the given names.
type Ranker interface {
	RelevantNames(ctx context.Context, query string, names []string) ([]string, error)
}

type Result struct {
	Products []client.Product
	// Degraded is set when the keyword fallback produced the result.
	Degraded bool
	Notice   string
}

type Filter struct {
	ranker Ranker
	logger *zap.Logger
}

// NewFilter returns a Filter. A nil ranker means keyword matching only.
func NewFilter(ranker Ranker, logger *zap.Logger) *Filter {
	return &Filter{ranker: ranker, logger: logger}
}

// Search narrows items to those relevant to query, keeping their order.
func (f *Filter) Search(ctx context.Context, query string, items []client.Product) Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{Products: clone(items)}
	}
	if len(items) == 0 {
		return Result{Products: []client.Product{}}
	}

	if f.ranker != nil {
		names, err := f.ranker.RelevantNames(ctx, query, uniqueNames(items))
		if err == nil {
			return Result{Products: keepNamed(items, names)}
		}
		f.logger.Warn("smart search failed, using keyword match", zap.String("query", query), zap.Error(err))
	}

	return Result{
		Products: keywordMatch(items, query),
		Degraded: true,
		Notice:   FallbackNotice,
	}
}

func uniqueNames(items []client.Product) []string {
	seen := make(map[string]struct{}, len(items))
	names := make([]string, 0, len(items))
	for _, p := range items {
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		names = append(names, p.Name)
	}
	return names
}

func keepNamed(items []client.Product, names []string) []client.Product {
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}
	out := []client.Product{}
	for _, p := range items {
		if _, ok := wanted[p.Name]; ok {
			out = append(out, p)
		}
	}
	return out
}

func keywordMatch(items []client.Product, query string) []client.Product {
	q := strings.ToLower(query)
	out := []client.Product{}
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

func clone(items []client.Product) []client.Product {
	out := make([]client.Product, len(items))
	copy(out, items)
	return out
}
