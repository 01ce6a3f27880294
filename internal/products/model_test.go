package products

import (
	"strings"
	"testing"
)

func TestDisplayHintFrom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Desk Lamp", "Desk Lamp"},
		{"Adjustable Standing Desk Lamp", "Adjustable Standing"},
		{"  Kettle  ", "Kettle"},
		{"a\tb  c", "a b"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DisplayHintFrom(tt.in); got != tt.want {
			t.Errorf("DisplayHintFrom(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlaceholderImageURL(t *testing.T) {
	got := PlaceholderImageURL("abc")
	if got != "https://picsum.photos/seed/abc/400/300" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestDemoCatalog(t *testing.T) {
	items := DemoCatalog()
	if len(items) != 15 {
		t.Fatalf("want 15 demo products, got %d", len(items))
	}
	for _, p := range items {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Description) == "" {
			t.Fatalf("demo product missing fields: %+v", p)
		}
		if !p.Price.IsPositive() {
			t.Fatalf("demo product %q has non-positive price %s", p.Name, p.Price)
		}
		if len(strings.Fields(p.DisplayHint)) > maxDisplayHintWords {
			t.Fatalf("demo product %q hint too long: %q", p.Name, p.DisplayHint)
		}
	}
}
