package repository

import (
	"context"
	"fmt"

	"ecocart/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var productColumns = []string{
	"id", "name", "brand", "category", "price", "description",
	"sustainability", "sustainability_score", "created_at", "updated_at",
}

type ProductRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProductRepository(db *pgxpool.Pool, logger *zap.Logger) *ProductRepository {
	return &ProductRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := squirrel.Insert("products").
		Columns(productColumns...).
		Values(product.ID, product.Name, product.Brand, product.Category, product.Price, product.Description,
			product.Sustainability, product.SustainabilityScore, product.CreatedAt, product.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	query := squirrel.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var product models.Product
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&product.ID, &product.Name, &product.Brand, &product.Category, &product.Price, &product.Description,
		&product.Sustainability, &product.SustainabilityScore, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// GetByIDs resolves a set of product ids in one query. Missing ids are
// silently absent from the result map.
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Product, error) {
	result := make(map[uuid.UUID]*models.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := squirrel.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var product models.Product
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Brand, &product.Category, &product.Price, &product.Description,
			&product.Sustainability, &product.SustainabilityScore, &product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result[product.ID] = &product
	}

	return result, rows.Err()
}

func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	query := squirrel.Select(productColumns...).
		From("products").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		var product models.Product
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Brand, &product.Category, &product.Price, &product.Description,
			&product.Sustainability, &product.SustainabilityScore, &product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, &product)
	}

	return products, rows.Err()
}

// FindByName returns the first product whose name contains the given
// fragment, case-insensitive.
func (r *ProductRepository) FindByName(ctx context.Context, name string) (*models.Product, error) {
	query := squirrel.Select(productColumns...).
		From("products").
		Where(squirrel.ILike{"name": fmt.Sprintf("%%%s%%", name)}).
		OrderBy("name ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var product models.Product
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&product.ID, &product.Name, &product.Brand, &product.Category, &product.Price, &product.Description,
		&product.Sustainability, &product.SustainabilityScore, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := squirrel.Update("products").
		Set("name", product.Name).
		Set("brand", product.Brand).
		Set("category", product.Category).
		Set("price", product.Price).
		Set("description", product.Description).
		Set("sustainability", product.Sustainability).
		Set("sustainability_score", product.SustainabilityScore).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": product.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("products").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
