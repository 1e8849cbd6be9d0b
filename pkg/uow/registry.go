package uow

type RepositoryName string
type Repository any
type RepositoryFactory func(DBTX) Repository

// registry общая для реализаций UOW таблица фабрик репозиториев.
type registry map[RepositoryName]RepositoryFactory

// register регистрирует фабрику. Если имя уже занято, возвращает ErrRepositoryAlreadyRegistered.
func (r registry) register(name RepositoryName, factory RepositoryFactory) error {
	if _, ok := r[name]; ok {
		return ErrRepositoryAlreadyRegistered
	}
	r[name] = factory
	return nil
}

// build создает репозиторий поверх db или возвращает ErrRepositoryNotRegistered.
func (r registry) build(name RepositoryName, db DBTX) (Repository, error) {
	if factory, ok := r[name]; ok {
		return factory(db), nil
	}
	return nil, ErrRepositoryNotRegistered
}

// GetRepositoryAs возвращает репозиторий по имени name и приводит его к типу T. Возвращает ошибки
// ErrRepositoryNotRegistered и ErrInvalidRepositoryType.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var res T
	repo, err := u.GetRepository(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	r, ok := repo.(T)
	if !ok {
		return res, ErrInvalidRepositoryType
	}
	return r, nil
}
