package service

import (
	"context"

	"github.com/fsdevblog/groph-points/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// PointCache кэш текущих балансов. Get возвращает found=false, если записи нет.
type PointCache interface {
	Get(ctx context.Context, userID int64) (point *domain.UserPoint, found bool, err error)
	// Set перезаписывает значение в кэше.
	Set(ctx context.Context, point *domain.UserPoint) error
	// Add записывает значение, только если ключа еще нет.
	Add(ctx context.Context, point *domain.UserPoint) error
	Delete(ctx context.Context, userID int64) error
}

type noopCache struct{}

func (noopCache) Get(context.Context, int64) (*domain.UserPoint, bool, error) { return nil, false, nil }
func (noopCache) Set(context.Context, *domain.UserPoint) error              { return nil }
func (noopCache) Add(context.Context, *domain.UserPoint) error              { return nil }
func (noopCache) Delete(context.Context, int64) error                       { return nil }
