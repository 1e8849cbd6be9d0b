package uow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterRepo struct{ n int }

func TestMemoryUnitOfWork_Register(t *testing.T) {
	u := NewMemoryUnitOfWork()
	repo := new(counterRepo)
	factory := func(DBTX) Repository { return repo }

	require.NoError(t, u.Register("counter", factory))
	require.ErrorIs(t, u.Register("counter", factory), ErrRepositoryAlreadyRegistered)

	_, err := u.GetRepository("missing")
	require.ErrorIs(t, err, ErrRepositoryNotRegistered)

	got, err := GetRepositoryAs[*counterRepo](u, "counter")
	require.NoError(t, err)
	assert.Same(t, repo, got)

	_, err = GetRepositoryAs[*Transaction](u, "counter")
	require.ErrorIs(t, err, ErrInvalidRepositoryType)
}

func TestMemoryUnitOfWork_Do(t *testing.T) {
	u := NewMemoryUnitOfWork()
	repo := new(counterRepo)
	require.NoError(t, u.Register("counter", func(DBTX) Repository { return repo }))

	errStop := errors.New("stop")
	err := u.Do(context.Background(), func(_ context.Context, tx TX) error {
		r, getErr := GetAs[*counterRepo](tx, "counter")
		if getErr != nil {
			return getErr
		}
		r.n++
		return errStop
	})

	require.ErrorIs(t, err, errStop)
	// изменения внутри Do не откатываются.
	assert.Equal(t, 1, repo.n)
}
