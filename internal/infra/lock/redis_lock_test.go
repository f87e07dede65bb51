package lock

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hyperlocal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

const testLockKey = "hyperlocal:followup:scan"

func newTestLocker(t *testing.T) (*miniredis.Miniredis, *redisScanLocker) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	locker := NewRedisScanLocker(client, testLockKey, time.Minute, logger).(*redisScanLocker)

	return mr, locker
}

func TestRedisScanLocker_Exclusive(t *testing.T) {
	ctx := context.Background()
	mr, locker := newTestLocker(t)

	release, ok, err := locker.TryLock(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, mr.Exists(testLockKey))

	_, ok, err = locker.TryLock(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "second holder must be refused")

	release()
	assert.False(t, mr.Exists(testLockKey))

	release2, ok, err := locker.TryLock(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	release2()
}

func TestRedisScanLocker_ExpiredHolderCannotReleaseNewHolder(t *testing.T) {
	ctx := context.Background()
	mr, locker := newTestLocker(t)

	staleRelease, ok, err := locker.TryLock(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)

	_, ok, err = locker.TryLock(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	staleRelease()
	assert.True(t, mr.Exists(testLockKey), "stale release must not delete the new holder's lock")
}

func TestRedisScanLocker_Unreachable(t *testing.T) {
	mr, locker := newTestLocker(t)
	mr.Close()

	_, ok, err := locker.TryLock(context.Background())

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewScanLocker_LocalWithoutRedis(t *testing.T) {
	locker := NewScanLocker(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	release, ok, err := locker.TryLock(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	release()
}
