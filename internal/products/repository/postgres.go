package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shelfspot/internal/products"

	"github.com/lib/pq"
)

const (
	healthCheckTimeout = 2 * time.Second

	pgInvalidTextRepresentation = "22P02"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p products.Product) (products.Product, error) {
	query := `
		INSERT INTO products (id, name, price, description, image_url, display_hint)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING price, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.Name, p.Price, p.Description, nullString(p.ImageURL), nullString(p.DisplayHint),
	).Scan(&p.Price, &p.CreatedAt)
	if err != nil {
		return products.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if isInvalidText(err) {
			return products.ErrNotFound
		}
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return products.ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]products.Product, error) {
	query := `
		SELECT id, name, price, description, image_url, display_hint, created_at
		FROM products
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	list := make([]products.Product, 0)
	for rows.Next() {
		var (
			p                  products.Product
			imageURL, dispHint sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &imageURL, &dispHint, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.ImageURL = imageURL.String
		p.DisplayHint = dispHint.String
		list = append(list, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

func (r *PostgresRepository) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()
	return r.db.PingContext(ctx)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isInvalidText(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgInvalidTextRepresentation
}
