package postgresql

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/image_processor/internal/domain"
)

const TableRequests = "processing_requests"

type RequestsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewRequestsRepository(pool *pgxpool.Pool) *RequestsRepository {
	return &RequestsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *RequestsRepository) CreateRequest(ctx context.Context, req *domain.ProcessingRequest) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableRequests).
		Columns(
			"request_id",
			"status",
			"callback_url",
		).
		Values(
			req.RequestID,
			req.Status,
			req.CallbackURL,
		).
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

func (r *RequestsRepository) RequestByID(ctx context.Context, requestID string) (*domain.ProcessingRequest, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"request_id",
			"status",
			"created_at",
			"completed_at",
			"callback_url",
		).
		From(TableRequests).
		Where(sq.Eq{"request_id": requestID}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	req, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.ProcessingRequest])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRequestNotFound
	}
	if err != nil {
		return nil, collectRowsError(err)
	}

	return req, nil
}

// ClaimRequest performs the pending->processing transition. The status guard
// in the WHERE clause admits exactly one claimer per request.
func (r *RequestsRepository) ClaimRequest(ctx context.Context, requestID string) (bool, error) {
	return r.transition(ctx, requestID, domain.StatusPending, domain.StatusProcessing, nil)
}

// FinishRequest performs the processing->terminal transition and sets
// completed_at. It reports false if the request already left processing, so
// a terminal transition happens at most once.
func (r *RequestsRepository) FinishRequest(
	ctx context.Context,
	requestID string,
	status domain.Status,
	completedAt time.Time,
) (bool, error) {
	return r.transition(ctx, requestID, domain.StatusProcessing, status, &completedAt)
}

func (r *RequestsRepository) transition(
	ctx context.Context,
	requestID string,
	from, to domain.Status,
	completedAt *time.Time,
) (bool, error) {
	db := extractDB(ctx, r.pool)

	builder := r.qb.
		Update(TableRequests).
		Set("status", to).
		Where(sq.Eq{
			"request_id": requestID,
			"status":     from,
		})

	if completedAt != nil {
		builder = builder.Set("completed_at", *completedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return false, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return false, executeQueryError(err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *RequestsRepository) PendingRequests(ctx context.Context) ([]string, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("request_id").
		From(TableRequests).
		Where(sq.Eq{"status": domain.StatusPending}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	requestIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return requestIDs, nil
}

// ResetProcessingRequests returns requests interrupted mid-batch to pending
// so the dispatcher's scan retries them after a restart.
func (r *RequestsRepository) ResetProcessingRequests(ctx context.Context) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableRequests).
		Set("status", domain.StatusPending).
		Where(sq.Eq{"status": domain.StatusProcessing}).
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
