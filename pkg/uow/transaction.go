package uow

type Transaction struct {
	repositories registry
	db           DBTX
}

func newTransaction(db DBTX, repositories registry) *Transaction {
	return &Transaction{
		repositories: repositories,
		db:           db,
	}
}

// Get возвращает репозиторий, работающий внутри транзакции, или ошибку ErrRepositoryNotRegistered.
func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	return t.repositories.build(name, t.db)
}

// GetAs возвращает зарегистрированный репозиторий с именем name приведенный к типу T
// или ошибки ErrRepositoryNotRegistered в случае не найденного репозитория с указанным name, ErrInvalidRepositoryType.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	repo, err := t.Get(name)
	var res T
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	res, ok := repo.(T)
	if !ok {
		return res, ErrInvalidRepositoryType
	}
	return res, nil
}
