package pgrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/pkg/uow"
)

const (
	selectUserPointQuery = `SELECT user_id, point, update_millis FROM user_points WHERE user_id = $1`

	// advisory lock держится до конца транзакции и покрывает юзеров, строки которых еще нет,
	// FOR UPDATE на такие строки ничего не блокирует.
	lockUserPointQuery            = `SELECT pg_advisory_xact_lock($1)`
	selectUserPointForUpdateQuery = selectUserPointQuery + ` FOR UPDATE`

	// время изменения берется на стороне БД в момент записи.
	upsertUserPointQuery = `
		INSERT INTO user_points (user_id, point, update_millis)
		VALUES ($1, $2, (extract(epoch FROM clock_timestamp()) * 1000)::bigint)
		ON CONFLICT (user_id) DO UPDATE
		    SET point = EXCLUDED.point,
		        update_millis = EXCLUDED.update_millis
		RETURNING user_id, point, update_millis`
)

type UserPointRepository struct {
	conn uow.DBTX
}

func NewUserPointRepository(conn uow.DBTX) *UserPointRepository {
	return &UserPointRepository{conn: conn}
}

func (r *UserPointRepository) SelectByID(ctx context.Context, userID int64) (*domain.UserPoint, error) {
	return r.selectPoint(ctx, selectUserPointQuery, userID)
}

// SelectForUpdate блокирует юзера до конца текущей транзакции и читает его баланс. Вне транзакции блокировка
// снимается сразу после запроса.
func (r *UserPointRepository) SelectForUpdate(ctx context.Context, userID int64) (*domain.UserPoint, error) {
	if _, err := r.conn.Exec(ctx, lockUserPointQuery, userID); err != nil {
		return nil, convertErr(err, "locking user point %d", userID)
	}
	return r.selectPoint(ctx, selectUserPointForUpdateQuery, userID)
}

func (r *UserPointRepository) selectPoint(ctx context.Context, query string, userID int64) (*domain.UserPoint, error) {
	var point domain.UserPoint
	err := r.conn.QueryRow(ctx, query, userID).Scan(&point.ID, &point.Point, &point.UpdateMillis)
	if err != nil {
		converted := convertErr(err, "selecting user point %d", userID)
		if errors.Is(converted, domain.ErrRecordNotFound) {
			return domain.EmptyUserPoint(userID), nil
		}
		return nil, converted
	}
	return &point, nil
}

func (r *UserPointRepository) InsertOrUpdate(
	ctx context.Context,
	userID int64,
	point int64,
) (*domain.UserPoint, error) {
	var saved domain.UserPoint
	err := r.conn.QueryRow(ctx, upsertUserPointQuery, userID, point).
		Scan(&saved.ID, &saved.Point, &saved.UpdateMillis)
	if err != nil {
		return nil, convertErr(err, "saving user point %d", userID)
	}
	return &saved, nil
}
