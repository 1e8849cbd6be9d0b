package memrepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/groph-points/internal/domain"
)

type UserPointRepository struct {
	mu      sync.RWMutex
	points  map[int64]domain.UserPoint
	latency time.Duration
}

func NewUserPointRepository(latency time.Duration) *UserPointRepository {
	return &UserPointRepository{
		points:  make(map[int64]domain.UserPoint),
		latency: latency,
	}
}

// SelectByID возвращает баланс юзера или domain.EmptyUserPoint, если юзер еще не встречался.
func (r *UserPointRepository) SelectByID(ctx context.Context, userID int64) (*domain.UserPoint, error) {
	if err := throttle(ctx, r.latency); err != nil {
		return nil, fmt.Errorf("[repository/selecting user point %d] %w", userID, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	point, ok := r.points[userID]
	if !ok {
		return domain.EmptyUserPoint(userID), nil
	}
	return &point, nil
}

// SelectForUpdate то же, что SelectByID: изменения одного юзера в памяти процесса сериализует сервис.
func (r *UserPointRepository) SelectForUpdate(ctx context.Context, userID int64) (*domain.UserPoint, error) {
	return r.SelectByID(ctx, userID)
}

// InsertOrUpdate перезаписывает баланс юзера и проставляет время изменения.
func (r *UserPointRepository) InsertOrUpdate(
	ctx context.Context,
	userID int64,
	point int64,
) (*domain.UserPoint, error) {
	if err := throttle(ctx, r.latency); err != nil {
		return nil, fmt.Errorf("[repository/saving user point %d] %w", userID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	updated := domain.UserPoint{
		ID:           userID,
		Point:        point,
		UpdateMillis: time.Now().UnixMilli(),
	}
	r.points[userID] = updated
	return &updated, nil
}
