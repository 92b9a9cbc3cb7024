package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/image_processor/internal/domain"
)

const TableProducts = "products"

type ProductsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewProductsRepository(pool *pgxpool.Pool) *ProductsRepository {
	return &ProductsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ProductsRepository) CreateProducts(ctx context.Context, products ...*domain.Product) error {
	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableProducts}, []string{
		"request_id",
		"serial_number",
		"product_name",
		"input_image_urls",
	}, pgx.CopyFromSlice(len(products), func(i int) ([]any, error) {
		return []any{
			products[i].RequestID,
			products[i].SerialNumber,
			products[i].ProductName,
			products[i].InputImageURLs,
		}, nil
	}))
	if err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}

	if copied != int64(len(products)) {
		return fmt.Errorf("failed to save products: copied %d rows, expected %d", copied, len(products))
	}

	return nil
}

func (r *ProductsRepository) ProductsByRequestID(ctx context.Context, requestID string) ([]*domain.Product, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"id",
			"request_id",
			"serial_number",
			"product_name",
			"input_image_urls",
			"outputs",
		).
		From(TableProducts).
		Where(sq.Eq{"request_id": requestID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	products, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Product])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return products, nil
}

func (r *ProductsRepository) UpdateProductOutputs(ctx context.Context, product *domain.Product) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableProducts).
		Set("outputs", product.Outputs).
		Where(sq.Eq{"id": product.ID}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}
