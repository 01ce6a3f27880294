package products

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("product not found")

const (
	EventsQueue  = "catalog.events"
	EventCreated = "product_created"
	EventDeleted = "product_deleted"
)

// Prices are stored as NUMERIC(12,2).
const PriceScale = 2

var MaxPrice = decimal.New(1, 10)

const (
	placeholderImageURL = "https://picsum.photos/seed/%s/400/300"
	maxDisplayHintWords = 2
)

// Product is a catalog entry. It is never updated in place.
type Product struct {
	ID          string          `json:"id" example:"8b5c1f6e-3c1a-4a51-9a43-1f4f0b1b7d2e"`
	Name        string          `json:"name" example:"Desk Lamp"`
	Price       decimal.Decimal `json:"price" swaggertype:"number" example:"49.5"`
	Description string          `json:"description" example:"A bright lamp for your desk"`
	ImageURL    string          `json:"imageUrl,omitempty" example:"https://picsum.photos/seed/8b5c1f6e-3c1a-4a51-9a43-1f4f0b1b7d2e/400/300"`
	DisplayHint string          `json:"displayHint,omitempty" example:"Desk Lamp"`
	CreatedAt   time.Time       `json:"createdAt" example:"2026-02-24T12:00:00Z"`
}

// NewProduct is the caller-supplied part of a product.
type NewProduct struct {
	Name        string          `validate:"required,max=200"`
	Price       decimal.Decimal `validate:"-"`
	Description string          `validate:"required,max=5000"`
	ImageURL    string          `validate:"omitempty,url"`
	DisplayHint string
}

type ProductEvent struct {
	EventType string           `json:"event_type"`
	ProductID string           `json:"product_id"`
	Name      string           `json:"name,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// ValidationError reports a missing or malformed field of a create request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PlaceholderImageURL returns the image used when a product has none.
func PlaceholderImageURL(id string) string {
	return fmt.Sprintf(placeholderImageURL, id)
}

// DisplayHintFrom keeps at most the first two words of s.
func DisplayHintFrom(s string) string {
	words := strings.Fields(s)
	if len(words) > maxDisplayHintWords {
		words = words[:maxDisplayHintWords]
	}
	return strings.Join(words, " ")
}
