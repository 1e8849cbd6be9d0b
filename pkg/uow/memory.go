package uow

import "context"

// MemoryUnitOfWork реализация UOW для репозиториев, живущих в памяти процесса. Фабрики вызываются с nil DBTX,
// поэтому должны возвращать один и тот же экземпляр репозитория.
//
// Do не откатывает изменения: если fn вернула ошибку, все, что было записано до нее, остается в репозиториях.
type MemoryUnitOfWork struct {
	repositories registry
}

func NewMemoryUnitOfWork() *MemoryUnitOfWork {
	return &MemoryUnitOfWork{
		repositories: make(registry),
	}
}

func (u *MemoryUnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	return u.repositories.register(name, factory)
}

func (u *MemoryUnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) error {
	return fn(ctx, newTransaction(nil, u.repositories))
}

func (u *MemoryUnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	return u.repositories.build(name, nil)
}
