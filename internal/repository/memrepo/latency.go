// Package memrepo хранилища балансов и истории в памяти процесса.
package memrepo

import (
	"context"
	"math/rand/v2"
	"time"
)

// throttle имитирует задержку внешнего хранилища: засыпает на случайное время в диапазоне [base, 2*base).
// При base == 0 только проверяет контекст. Прерывается отменой контекста.
func throttle(ctx context.Context, base time.Duration) error {
	if base <= 0 {
		return ctx.Err()
	}
	d := base + time.Duration(rand.Int64N(int64(base))) // nolint:gosec
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
