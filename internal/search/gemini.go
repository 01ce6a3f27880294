package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

const defaultGeminiTimeout = 10 * time.Second

const systemInstruction = "You are a helpful shopping assistant. The user is searching for products, and you must " +
	"return a list of the names of the products that are most relevant to the user's query. Return ONLY the product " +
	"names that are relevant to the user's query. If no products are relevant, return an empty array."

// relevantNamesSchema constrains the model reply to a JSON array of names.
var relevantNamesSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: &genai.Schema{Type: genai.TypeString},
}

type GeminiConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the Gemini API endpoint. Empty uses the default.
	BaseURL string
	Timeout time.Duration
}

// GeminiRanker asks a Gemini model which product names match a query.
type GeminiRanker struct {
	client *genai.Client
	model  string
}

func NewGeminiRanker(ctx context.Context, cfg GeminiConfig) (*GeminiRanker, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultGeminiTimeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: cfg.Timeout},
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiRanker{client: client, model: cfg.Model}, nil
}

func (g *GeminiRanker) RelevantNames(ctx context.Context, query string, names []string) ([]string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(searchPrompt(query, names)), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    relevantNamesSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("gemini returned no candidates")
	}

	var out []string
	if err := json.Unmarshal([]byte(resp.Candidates[0].Content.Parts[0].Text), &out); err != nil {
		return nil, fmt.Errorf("decode relevant names: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func searchPrompt(query string, names []string) string {
	var b strings.Builder
	b.WriteString("Here are the available products:\n")
	for _, n := range names {
		b.WriteString("- ")
		b.WriteString(n)
		b.WriteString("\n")
	}
	b.WriteString("\nUser's query: ")
	b.WriteString(query)
	return b.String()
}
