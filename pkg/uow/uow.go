package uow

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgUnitOfWork выполняет работу репозиториев внутри транзакции postgres.
type PgUnitOfWork struct {
	conn         *pgxpool.Pool
	repositories registry
	txOptions    pgx.TxOptions
}

func NewPgUnitOfWork(conn *pgxpool.Pool) *PgUnitOfWork {
	return &PgUnitOfWork{
		conn:         conn,
		repositories: make(registry),
		txOptions:    pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
	}
}

// SetIsoLevel устанавливает уровень изоляции транзакций, открываемых в Do.
func (u *PgUnitOfWork) SetIsoLevel(level pgx.TxIsoLevel) *PgUnitOfWork {
	u.txOptions.IsoLevel = level
	return u
}

// Register регистрирует репозиторий у себя в мапе. Если репозиторий уже зарегистрирован, возвращает
// ошибку ErrRepositoryAlreadyRegistered.
func (u *PgUnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	return u.repositories.register(name, factory)
}

// Do выполняет функцию fn внутри транзакции. Если fn вернула ошибку, транзакция откатывается.
func (u *PgUnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) (err error) {
	tx, txErr := u.conn.BeginTx(ctx, u.txOptions)
	if txErr != nil {
		return txErr //nolint:wrapcheck
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			err = errors.Join(err, rollbackErr)
		}
	}()

	if transErr := fn(ctx, newTransaction(tx, u.repositories)); transErr != nil {
		return transErr
	}
	err = tx.Commit(ctx)
	return
}

// GetRepository возвращает репозиторий, работающий вне транзакции, или ошибку ErrRepositoryNotRegistered.
func (u *PgUnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	return u.repositories.build(name, u.conn)
}
