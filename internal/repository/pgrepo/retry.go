package pgrepo

import (
	"math/rand/v2"
	"time"
)

const retryJitterPercent = 0.2

// retryDelay рассыпает base на случайный процент в пределах [1-percent, 1+percent], чтобы несколько
// экземпляров сервиса не стучались в базу одновременно. percent < 0 трактуется как retryJitterPercent.
func retryDelay(base time.Duration, percent float64) time.Duration {
	if percent < 0 {
		percent = retryJitterPercent
	}
	factor := 1 - percent + rand.Float64()*2*percent // nolint:gosec
	return time.Duration(float64(base) * factor)
}
