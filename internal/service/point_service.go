package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/locker"
	"github.com/fsdevblog/groph-points/internal/metrics"
	"github.com/fsdevblog/groph-points/pkg/uow"
)

const cacheRefreshTimeout = time.Second

type PointService struct {
	uow         uow.UOW
	pointRepo   domain.UserPointRepository
	historyRepo domain.PointHistoryRepository
	locker      *locker.UserLocker
	cache       PointCache
	// lastMutated время последнего сохраненного изменения по юзерам, int64 UpdateMillis.
	lastMutated sync.Map
	l           *logrus.Entry
}

func NewPointService(u uow.UOW, l *logrus.Logger) (*PointService, error) {
	pointRepo, pointRepoErr := uow.GetRepositoryAs[domain.UserPointRepository](
		u,
		uow.RepositoryName(domain.UserPointRepoName),
	)
	if pointRepoErr != nil {
		return nil, pointRepoErr
	}
	historyRepo, historyRepoErr := uow.GetRepositoryAs[domain.PointHistoryRepository](
		u,
		uow.RepositoryName(domain.PointHistoryRepoName),
	)
	if historyRepoErr != nil {
		return nil, historyRepoErr
	}
	return &PointService{
		uow:         u,
		pointRepo:   pointRepo,
		historyRepo: historyRepo,
		locker:      locker.New(),
		cache:       noopCache{},
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "point",
		}),
	}, nil
}

// SetCache подключает кэш балансов для GetPoint.
func (p *PointService) SetCache(c PointCache) *PointService {
	if c == nil {
		c = noopCache{}
	}
	p.cache = c
	return p
}

// Charge начисляет amount баллов юзеру userID и возвращает обновленный баланс.
// Возвращает domain.ErrInvalidAmount для amount <= 0 и domain.ErrPointOverflow, если баланс выйдет за int64.
func (p *PointService) Charge(ctx context.Context, userID int64, amount int64) (*domain.UserPoint, error) {
	point, err := p.mutate(ctx, userID, amount, domain.TransactionCharge, func(current int64) (int64, error) {
		if current > math.MaxInt64-amount {
			return 0, fmt.Errorf("%d + %d: %w", current, amount, domain.ErrPointOverflow)
		}
		return current + amount, nil
	})
	if err != nil {
		return nil, fmt.Errorf("charging user %d: %w", userID, err)
	}
	return point, nil
}

// Use списывает amount баллов у юзера userID и возвращает обновленный баланс.
// Если баллов не хватает, возвращает *domain.InsufficientPointsError, ни баланс, ни история при этом не меняются.
func (p *PointService) Use(ctx context.Context, userID int64, amount int64) (*domain.UserPoint, error) {
	point, err := p.mutate(ctx, userID, amount, domain.TransactionUse, func(current int64) (int64, error) {
		if amount > current {
			return 0, domain.NewInsufficientPointsError(userID, current, amount)
		}
		return current - amount, nil
	})
	if err != nil {
		return nil, fmt.Errorf("using points of user %d: %w", userID, err)
	}
	return point, nil
}

// GetPoint возвращает текущий баланс юзера. Блокировку не берет, поэтому при параллельном изменении может
// вернуть значение как до, так и после него.
//
// В кэш попадает только значение не старше последнего изменения, сделанного этим процессом. Если изменение
// сохранится между этой проверкой и Add, а его запись в кэш упадет, старое значение проживет в кэше до
// истечения TTL.
func (p *PointService) GetPoint(ctx context.Context, userID int64) (*domain.UserPoint, error) {
	cached, found, cacheErr := p.cache.Get(ctx, userID)
	if cacheErr != nil {
		p.l.WithError(cacheErr).WithField("userID", userID).Warn("point cache read failed")
	}
	if found {
		return cached, nil
	}

	point, err := p.pointRepo.SelectByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting point of user %d: %w", userID, err)
	}
	if point.UpdateMillis > 0 && !p.isStale(point) {
		if addErr := p.cache.Add(ctx, point); addErr != nil {
			p.l.WithError(addErr).WithField("userID", userID).Warn("point cache add failed")
		}
	}
	return point, nil
}

// GetHistories возвращает историю изменений баланса юзера в порядке их совершения.
func (p *PointService) GetHistories(ctx context.Context, userID int64) ([]domain.PointHistory, error) {
	histories, err := p.historyRepo.SelectAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting point histories of user %d: %w", userID, err)
	}
	return histories, nil
}

// mutate выполняет цикл чтение-изменение-запись баланса под блокировкой юзера.
//
// Алгоритм работы:
//  1. Проверяет amount и берет мьютекс юзера.
//  2. Внутри unit of work читает текущий баланс, вычисляет новый через apply и сохраняет его.
//  3. Добавляет запись в историю с временем сохраненного баланса.
//  4. Обновляет кэш, после чего мьютекс освобождается.
//
// Ошибка apply или отмененный к этому моменту ctx прерывают операцию до любой записи. Дальше баланс и история
// пишутся без учета отмены ctx.
func (p *PointService) mutate(
	ctx context.Context,
	userID int64,
	amount int64,
	txType domain.TransactionType,
	apply func(current int64) (int64, error),
) (*domain.UserPoint, error) {
	if amount <= 0 {
		metrics.ObserveOperation(string(txType), metrics.ResultInvalid)
		return nil, fmt.Errorf("amount %d: %w", amount, domain.ErrInvalidAmount)
	}

	waitStart := time.Now()
	unlock := p.locker.Lock(userID)
	defer unlock()
	metrics.ObserveLockWait(string(txType), time.Since(waitStart))
	metrics.LockHandles.Set(float64(p.locker.Len()))

	var updated *domain.UserPoint
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		pointRepo, pointRepoErr := uow.GetAs[domain.UserPointRepository](tx, uow.RepositoryName(domain.UserPointRepoName))
		if pointRepoErr != nil {
			return pointRepoErr //nolint:wrapcheck
		}
		historyRepo, historyRepoErr := uow.GetAs[domain.PointHistoryRepository](
			tx,
			uow.RepositoryName(domain.PointHistoryRepoName),
		)
		if historyRepoErr != nil {
			return historyRepoErr //nolint:wrapcheck
		}

		current, selectErr := pointRepo.SelectForUpdate(c, userID)
		if selectErr != nil {
			return selectErr //nolint:wrapcheck
		}

		next, applyErr := apply(current.Point)
		if applyErr != nil {
			return applyErr
		}

		// Баланс и история пишутся парой: отмена после этой точки не должна оставить баланс без записи
		// в истории.
		if ctxErr := c.Err(); ctxErr != nil {
			return ctxErr //nolint:wrapcheck
		}
		writeCtx := context.WithoutCancel(c)

		saved, saveErr := pointRepo.InsertOrUpdate(writeCtx, userID, next)
		if saveErr != nil {
			return saveErr //nolint:wrapcheck
		}

		if _, historyErr := historyRepo.Insert(writeCtx, domain.PointHistoryCreate{
			UserID:       userID,
			Amount:       amount,
			Type:         txType,
			UpdateMillis: saved.UpdateMillis,
		}); historyErr != nil {
			return historyErr //nolint:wrapcheck
		}

		updated = saved
		return nil
	})

	if txErr != nil {
		metrics.ObserveOperation(string(txType), operationResult(txErr))
		if isRejection(txErr) {
			p.l.WithError(txErr).WithField("userID", userID).Debug("operation rejected")
		}
		return nil, txErr
	}

	p.lastMutated.Store(userID, updated.UpdateMillis)
	p.refreshCache(ctx, updated)
	metrics.ObserveOperation(string(txType), metrics.ResultOK)
	p.l.WithFields(logrus.Fields{
		"userID": userID,
		"type":   txType,
		"amount": amount,
		"point":  updated.Point,
	}).Debug("point operation completed")

	return updated, nil
}

// refreshCache записывает новый баланс в кэш. Ошибка кэша не ломает операцию: ключ удаляется, чтобы GetPoint
// не отдавал устаревшее значение.
func (p *PointService) refreshCache(ctx context.Context, point *domain.UserPoint) {
	cacheCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheRefreshTimeout)
	defer cancel()

	setErr := p.cache.Set(cacheCtx, point)
	if setErr == nil {
		return
	}
	entry := p.l.WithError(setErr).WithField("userID", point.ID)
	if delErr := p.cache.Delete(cacheCtx, point.ID); delErr != nil {
		entry = entry.WithField("deleteError", delErr.Error())
	}
	entry.Warn("point cache refresh failed")
}

// isStale сообщает, что point прочитан до последнего изменения баланса юзера.
func (p *PointService) isStale(point *domain.UserPoint) bool {
	v, ok := p.lastMutated.Load(point.ID)
	if !ok {
		return false
	}
	return point.UpdateMillis < v.(int64) //nolint:forcetypeassert
}

func isRejection(err error) bool {
	return errors.Is(err, domain.ErrInsufficientPoints) || errors.Is(err, domain.ErrPointOverflow)
}

func operationResult(err error) string {
	if isRejection(err) {
		return metrics.ResultRejected
	}
	return metrics.ResultError
}
