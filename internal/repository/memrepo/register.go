package memrepo

import (
	"fmt"
	"time"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/pkg/uow"
)

// Register создает репозитории в памяти и регистрирует их в unit of work. Фабрики всегда отдают один и тот же
// экземпляр, поэтому все транзакции работают с общим состоянием.
func Register(u uow.UOW, latency time.Duration) error {
	pointRepo := NewUserPointRepository(latency)
	historyRepo := NewPointHistoryRepository(latency)

	factories := map[domain.RepositoryName]uow.RepositoryFactory{
		domain.UserPointRepoName: func(uow.DBTX) uow.Repository {
			return pointRepo
		},
		domain.PointHistoryRepoName: func(uow.DBTX) uow.Repository {
			return historyRepo
		},
	}
	for name, factory := range factories {
		if err := u.Register(uow.RepositoryName(name), factory); err != nil {
			return fmt.Errorf("register %s repository: %w", name, err)
		}
	}
	return nil
}
