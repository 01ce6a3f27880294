package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"shelfspot/internal/products"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductService interface {
	CreateProduct(ctx context.Context, in products.NewProduct) (products.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context) ([]products.Product, error)
}

type Handler struct {
	service ProductService
	logger  *zap.Logger
}

func NewHandler(svc ProductService, logger *zap.Logger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// createProductRequest accepts the legacy hint spellings as aliases of displayHint.
type createProductRequest struct {
	Name        string          `json:"name" example:"Desk Lamp"`
	Price       json.RawMessage `json:"price" swaggertype:"number" example:"49.5"`
	Description string          `json:"description" example:"A bright lamp for your desk"`
	ImageURL    string          `json:"imageUrl,omitempty" example:"https://example.com/lamp.png"`
	DisplayHint string          `json:"displayHint,omitempty" example:"desk lamp"`

	HyphenHint     string `json:"data-ai-hint,omitempty" swaggerignore:"true"`
	CamelHint      string `json:"dataAiHint,omitempty" swaggerignore:"true"`
	UnderscoreHint string `json:"data_ai_hint,omitempty" swaggerignore:"true"`
}

func (r createProductRequest) displayHint() string {
	for _, h := range []string{r.DisplayHint, r.CamelHint, r.HyphenHint, r.UnderscoreHint} {
		if h != "" {
			return h
		}
	}
	return ""
}

type errorResponse struct {
	Message string `json:"message" example:"product not found"`
}

// CreateProduct godoc
// @Summary      Create a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product data"
// @Success      201   {object}  products.Product
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), products.NewProduct{
		Name:        req.Name,
		Price:       price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		DisplayHint: req.displayHint(),
	})
	if err != nil {
		var verr *products.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, errorResponse{Message: verr.Error()})
			return
		}
		h.logger.Error("create product failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// DeleteProduct godoc
// @Summary      Delete a product by ID
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, products.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Message: products.ErrNotFound.Error()})
			return
		}
		h.logger.Error("delete product failed", zap.String("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "failed to delete product"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListProducts godoc
// @Summary      List all products, newest first
// @Tags         products
// @Produce      json
// @Success      200    {array}   products.Product
// @Failure      500    {object}  errorResponse
// @Router       /products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	items, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		h.logger.Error("list products failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "failed to list products"})
		return
	}
	if items == nil {
		items = []products.Product{}
	}

	c.JSON(http.StatusOK, items)
}

// NotFound answers every unmatched route.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorResponse{
		Message: fmt.Sprintf("API endpoint not found: %s %s", c.Request.Method, c.Request.URL.Path),
	})
}

// parsePrice accepts a JSON number or a numeric string.
func parsePrice(raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Decimal{}, products.NewValidationError("price", "price is required")
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return decimal.Decimal{}, products.NewValidationError("price", "price must be a number")
	}
	return d, nil
}
