package client

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry as seen by clients. Decoding is lenient:
// price may be a number or a numeric string and anything unparseable
// becomes zero, and the legacy hint keys are accepted.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	DisplayHint string          `json:"displayHint,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type wireProduct struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          json.RawMessage `json:"price"`
	Description    string          `json:"description"`
	ImageURL       string          `json:"imageUrl"`
	DisplayHint    string          `json:"displayHint"`
	CamelHint      string          `json:"dataAiHint"`
	HyphenHint     string          `json:"data-ai-hint"`
	UnderscoreHint string          `json:"data_ai_hint"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var w wireProduct
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*p = Product{
		ID:          w.ID,
		Name:        w.Name,
		Price:       coercePrice(w.Price),
		Description: w.Description,
		ImageURL:    w.ImageURL,
		DisplayHint: firstNonEmpty(w.DisplayHint, w.CamelHint, w.HyphenHint, w.UnderscoreHint),
		CreatedAt:   w.CreatedAt,
	}
	return nil
}

func coercePrice(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return decimal.Zero
	}
	return d
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// NewProduct is the input for CreateProduct.
type NewProduct struct {
	Name        string
	Price       decimal.Decimal
	Description string
	ImageURL    string
	DisplayHint string
}

type createRequest struct {
	Name        string      `json:"name"`
	Price       json.Number `json:"price"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	DisplayHint string      `json:"displayHint,omitempty"`
}
