// Package locker реестр мьютексов на уровне юзера.
package locker

import (
	"sync"
	"sync/atomic"
)

// UserLocker выдает по одному мьютексу на каждый ID юзера. Мьютекс создается при первом обращении и живет
// до конца процесса: записи из реестра не удаляются.
type UserLocker struct {
	locks sync.Map // int64 -> *sync.Mutex
	size  atomic.Int64
}

func New() *UserLocker {
	return new(UserLocker)
}

// Lock блокирует мьютекс юзера userID и возвращает функцию его освобождения. Вызовы для разных юзеров
// друг друга не блокируют.
func (l *UserLocker) Lock(userID int64) func() {
	mu := l.handle(userID)
	mu.Lock()
	return mu.Unlock
}

// Len возвращает количество созданных мьютексов.
func (l *UserLocker) Len() int {
	return int(l.size.Load())
}

// handle возвращает мьютекс юзера, создавая его при необходимости. LoadOrStore гарантирует, что при
// одновременном первом обращении все получат один и тот же экземпляр.
func (l *UserLocker) handle(userID int64) *sync.Mutex {
	if mu, ok := l.locks.Load(userID); ok {
		return mu.(*sync.Mutex) //nolint:forcetypeassert
	}
	mu, loaded := l.locks.LoadOrStore(userID, new(sync.Mutex))
	if !loaded {
		l.size.Add(1)
	}
	return mu.(*sync.Mutex) //nolint:forcetypeassert
}
