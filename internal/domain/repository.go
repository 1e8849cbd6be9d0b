package domain

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks
type RepositoryName string

const (
	UserPointRepoName    RepositoryName = "user_point"
	PointHistoryRepoName RepositoryName = "point_history"
)

// UserPointRepository хранилище текущих балансов. SelectByID и SelectForUpdate для неизвестного юзера
// возвращают EmptyUserPoint, а не ErrRecordNotFound.
//
// SelectForUpdate читает баланс перед изменением. Вызывается внутри транзакции и удерживает блокировку юзера
// в хранилище до ее завершения, чтобы изменения из разных процессов не терялись.
type UserPointRepository interface {
	SelectByID(ctx context.Context, userID int64) (*UserPoint, error)
	SelectForUpdate(ctx context.Context, userID int64) (*UserPoint, error)
	InsertOrUpdate(ctx context.Context, userID int64, point int64) (*UserPoint, error)
}

// PointHistoryRepository append-only хранилище истории. SelectAllByUserID возвращает записи в порядке вставки.
type PointHistoryRepository interface {
	Insert(ctx context.Context, args PointHistoryCreate) (*PointHistory, error)
	SelectAllByUserID(ctx context.Context, userID int64) ([]PointHistory, error)
}
