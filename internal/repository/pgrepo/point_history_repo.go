package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/pkg/uow"
)

const (
	insertPointHistoryQuery = `
		INSERT INTO point_histories (user_id, amount, type, update_millis)
		VALUES ($1, $2, $3::point_transaction_type, $4)
		RETURNING id, user_id, amount, type::text, update_millis`

	selectPointHistoriesQuery = `
		SELECT id, user_id, amount, type::text, update_millis
		FROM point_histories
		WHERE user_id = $1
		ORDER BY id`
)

type PointHistoryRepository struct {
	conn uow.DBTX
}

func NewPointHistoryRepository(conn uow.DBTX) *PointHistoryRepository {
	return &PointHistoryRepository{conn: conn}
}

func (r *PointHistoryRepository) Insert(
	ctx context.Context,
	args domain.PointHistoryCreate,
) (*domain.PointHistory, error) {
	row := r.conn.QueryRow(ctx, insertPointHistoryQuery, args.UserID, args.Amount, string(args.Type), args.UpdateMillis)
	history, err := scanPointHistory(row)
	if err != nil {
		return nil, convertErr(err, "creating point history for user %d", args.UserID)
	}
	return history, nil
}

func (r *PointHistoryRepository) SelectAllByUserID(ctx context.Context, userID int64) ([]domain.PointHistory, error) {
	rows, err := r.conn.Query(ctx, selectPointHistoriesQuery, userID)
	if err != nil {
		return nil, convertErr(err, "selecting point histories for user %d", userID)
	}
	histories, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PointHistory, error) {
		h, scanErr := scanPointHistory(row)
		if scanErr != nil {
			return domain.PointHistory{}, scanErr
		}
		return *h, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "selecting point histories for user %d", userID)
	}
	return histories, nil
}

func scanPointHistory(row pgx.Row) (*domain.PointHistory, error) {
	var h domain.PointHistory
	var txType string
	if err := row.Scan(&h.ID, &h.UserID, &h.Amount, &txType, &h.UpdateMillis); err != nil {
		return nil, err //nolint:wrapcheck
	}
	h.Type = domain.TransactionType(txType)
	return &h, nil
}
