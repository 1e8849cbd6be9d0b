package rediscache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/groph-points/internal/domain"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "points:user:42", key(42))
	assert.Equal(t, "points:user:-1", key(-1))
}

func TestEncodeDecode(t *testing.T) {
	point := &domain.UserPoint{ID: 7, Point: 150, UpdateMillis: 1700000000000}

	b, err := encode(point)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"point":150,"updateMillis":1700000000000}`, string(b))

	decoded, err := decode(b)
	require.NoError(t, err)
	assert.Equal(t, point, decoded)

	_, err = decode([]byte("not json"))
	require.Error(t, err)
}

func TestPointCache_UnreachableRedis(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	c := New(rdb, time.Minute)

	_, found, err := c.Get(t.Context(), 1)
	require.Error(t, err)
	assert.False(t, found)

	require.Error(t, c.Set(t.Context(), &domain.UserPoint{ID: 1}))
	require.Error(t, c.Delete(t.Context(), 1))
}

func newTestCache(t *testing.T, ttl time.Duration) (*PointCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb, ttl), mr
}

func TestPointCache_GetSetDelete(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	point := &domain.UserPoint{ID: 5, Point: 300, UpdateMillis: 1700000000000}

	_, found, err := c.Get(t.Context(), point.ID)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(t.Context(), point))
	assert.Equal(t, time.Minute, mr.TTL(key(point.ID)))

	cached, found, err := c.Get(t.Context(), point.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, point, cached)

	// Set перезаписывает значение.
	updated := &domain.UserPoint{ID: 5, Point: 100, UpdateMillis: 1700000000001}
	require.NoError(t, c.Set(t.Context(), updated))
	cached, _, err = c.Get(t.Context(), point.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, cached)

	require.NoError(t, c.Delete(t.Context(), point.ID))
	assert.False(t, mr.Exists(key(point.ID)))

	// удаление отсутствующего ключа не ошибка.
	require.NoError(t, c.Delete(t.Context(), point.ID))
}

func TestPointCache_AddKeepsExisting(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	fresh := &domain.UserPoint{ID: 9, Point: 50, UpdateMillis: 2000}
	stale := &domain.UserPoint{ID: 9, Point: 10, UpdateMillis: 1000}

	require.NoError(t, c.Set(t.Context(), fresh))
	require.NoError(t, c.Add(t.Context(), stale))

	cached, found, err := c.Get(t.Context(), fresh.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, fresh, cached)

	// на пустое место Add пишет.
	other := &domain.UserPoint{ID: 10, Point: 1, UpdateMillis: 3000}
	require.NoError(t, c.Add(t.Context(), other))
	cached, found, err = c.Get(t.Context(), other.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, other, cached)
}

func TestPointCache_Expiration(t *testing.T) {
	c, mr := newTestCache(t, time.Second)
	point := &domain.UserPoint{ID: 3, Point: 7, UpdateMillis: 1}

	require.NoError(t, c.Add(t.Context(), point))
	mr.FastForward(2 * time.Second)

	_, found, err := c.Get(t.Context(), point.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPointCache_CorruptedValue(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set(key(4), "not json"))

	_, found, err := c.Get(t.Context(), 4)
	require.Error(t, err)
	assert.False(t, found)
}
