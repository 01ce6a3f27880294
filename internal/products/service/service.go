package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shelfspot/internal/products"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, p products.Product) (products.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]products.Product, error)
}

type Publisher interface {
	Publish(ctx context.Context, event products.ProductEvent) error
}

type Service struct {
	repo      Repository
	publisher Publisher
	logger    *zap.Logger
	validate  *validator.Validate
	created   prometheus.Counter
	deleted   prometheus.Counter
	newID     func() string
}

func New(repo Repository, publisher Publisher, logger *zap.Logger, created, deleted prometheus.Counter) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		created:   created,
		deleted:   deleted,
		newID:     uuid.NewString,
	}
}

func (s *Service) CreateProduct(ctx context.Context, in products.NewProduct) (products.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)

	if err := s.validateNew(in); err != nil {
		return products.Product{}, err
	}

	id := s.newID()
	p := products.Product{
		ID:          id,
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		DisplayHint: products.DisplayHintFrom(in.DisplayHint),
	}
	if p.ImageURL == "" {
		p.ImageURL = products.PlaceholderImageURL(id)
	}
	if p.DisplayHint == "" {
		p.DisplayHint = products.DisplayHintFrom(p.Name)
	}

	product, err := s.repo.Create(ctx, p)
	if err != nil {
		return products.Product{}, fmt.Errorf("repo create: %w", err)
	}

	price := product.Price
	if err := s.publisher.Publish(ctx, products.ProductEvent{
		EventType: products.EventCreated,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     &price,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		s.logger.Error("publish product_created event failed",
			zap.String("product_id", product.ID),
			zap.Error(err),
		)
	}

	s.created.Inc()
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return products.ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("repo delete: %w", err)
	}

	if err := s.publisher.Publish(ctx, products.ProductEvent{
		EventType: products.EventDeleted,
		ProductID: id,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		s.logger.Error("publish product_deleted event failed",
			zap.String("product_id", id),
			zap.Error(err),
		)
	}

	s.deleted.Inc()
	return nil
}

func (s *Service) ListProducts(ctx context.Context) ([]products.Product, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo list: %w", err)
	}
	return items, nil
}

func (s *Service) validateNew(in products.NewProduct) error {
	if err := s.validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return fmt.Errorf("validate product: %w", err)
		}
		return fieldError(fieldErrs[0])
	}
	if !in.Price.IsPositive() {
		return products.NewValidationError("price", "price must be a positive number")
	}
	if !in.Price.Equal(in.Price.Round(products.PriceScale)) {
		return products.NewValidationError("price", "price must have at most 2 decimal places")
	}
	if in.Price.GreaterThanOrEqual(products.MaxPrice) {
		return products.NewValidationError("price", "price must be less than "+products.MaxPrice.String())
	}
	return nil
}

func fieldError(fe validator.FieldError) *products.ValidationError {
	field := jsonField(fe.Field())
	switch fe.Tag() {
	case "required":
		return products.NewValidationError(field, field+" is required")
	case "max":
		return products.NewValidationError(field, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
	case "url":
		return products.NewValidationError(field, field+" must be a valid URL")
	default:
		return products.NewValidationError(field, field+" is invalid")
	}
}

func jsonField(name string) string {
	switch name {
	case "ImageURL":
		return "imageUrl"
	case "DisplayHint":
		return "displayHint"
	default:
		return strings.ToLower(name)
	}
}

// Seed loads items into an empty catalog so that they list in the given
// order. A catalog that already holds products is left alone.
func (s *Service) Seed(ctx context.Context, items []products.NewProduct) (int, error) {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("repo list: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i := len(items) - 1; i >= 0; i-- {
		if _, err := s.CreateProduct(ctx, items[i]); err != nil {
			return len(items) - 1 - i, fmt.Errorf("seed %q: %w", items[i].Name, err)
		}
	}
	return len(items), nil
}
