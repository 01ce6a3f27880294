package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	productsPath   = "/products"
	maxErrorBody   = 4 << 10
	defaultTimeout = 5 * time.Second
)

// Client talks to the catalog HTTP API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var items []Product
	if err := c.do(ctx, http.MethodGet, productsPath, nil, http.StatusOK, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []Product{}
	}
	return items, nil
}

func (c *Client) CreateProduct(ctx context.Context, in NewProduct) (Product, error) {
	body := createRequest{
		Name:        in.Name,
		Price:       json.Number(in.Price.String()),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		DisplayHint: in.DisplayHint,
	}
	var p Product
	if err := c.do(ctx, http.MethodPost, productsPath, body, http.StatusCreated, &p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, productsPath+"/"+url.PathEscape(id), nil, http.StatusNoContent, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in any, wantStatus int, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &Error{
			Kind:    KindNetwork,
			Message: fmt.Sprintf("could not connect to the catalog API at %s: %v", c.BaseURL, err),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return statusError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{
			Kind:    KindDecode,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("decode %s %s response: %v", method, path, err),
			Err:     err,
		}
	}
	return nil
}

func statusError(resp *http.Response) *Error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	message := strings.TrimSpace(string(raw))
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		message = body.Message
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	e := &Error{Status: resp.StatusCode, Message: message}
	switch {
	case resp.StatusCode == http.StatusBadRequest:
		e.Kind = KindValidation
	case resp.StatusCode == http.StatusNotFound:
		e.Kind = KindNotFound
	default:
		e.Kind = KindServer
		e.Message = fmt.Sprintf("catalog API returned %d: %s", resp.StatusCode, message)
	}
	return e
}
