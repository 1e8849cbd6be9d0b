package memrepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/groph-points/internal/domain"
)

type PointHistoryRepository struct {
	mu      sync.RWMutex
	lastID  int64
	byUser  map[int64][]domain.PointHistory
	latency time.Duration
}

func NewPointHistoryRepository(latency time.Duration) *PointHistoryRepository {
	return &PointHistoryRepository{
		byUser:  make(map[int64][]domain.PointHistory),
		latency: latency,
	}
}

// Insert добавляет запись истории и присваивает ей следующий порядковый ID.
func (r *PointHistoryRepository) Insert(
	ctx context.Context,
	args domain.PointHistoryCreate,
) (*domain.PointHistory, error) {
	if err := throttle(ctx, r.latency); err != nil {
		return nil, fmt.Errorf("[repository/creating point history for user %d] %w", args.UserID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	history := domain.PointHistory{
		ID:           r.lastID,
		UserID:       args.UserID,
		Amount:       args.Amount,
		Type:         args.Type,
		UpdateMillis: args.UpdateMillis,
	}
	r.byUser[args.UserID] = append(r.byUser[args.UserID], history)
	return &history, nil
}

// SelectAllByUserID возвращает копию истории юзера в порядке вставки.
func (r *PointHistoryRepository) SelectAllByUserID(ctx context.Context, userID int64) ([]domain.PointHistory, error) {
	if err := throttle(ctx, r.latency); err != nil {
		return nil, fmt.Errorf("[repository/selecting point histories for user %d] %w", userID, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byUser[userID]
	histories := make([]domain.PointHistory, len(stored))
	copy(histories, stored)
	return histories, nil
}
