package lock

import (
	"context"
	"log/slog"
	"time"

	"hyperlocal/config"
	"hyperlocal/internal/domain/lifecycle"
	"hyperlocal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const releaseTimeout = 3 * time.Second

// Deletes the key only while it still holds our token, so an expired holder
// cannot release a lock that was re-acquired by another replica.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisScanLocker struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

// localScanLocker is used when Redis is not configured; in-process overlap is
// already prevented by the scheduler.
type localScanLocker struct{}

func (localScanLocker) TryLock(context.Context) (func(), bool, error) {
	return func() {}, true, nil
}

// Params holds dependencies for the scan locker, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewScanLocker returns a Redis-backed ScanLocker, or a local one when Redis is not configured.
func NewScanLocker(params Params) service.ScanLocker {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Address == "" {
		params.Logger.Info("Redis not configured, follow-up scan lock is process-local")

		return localScanLocker{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisScanLocker(client, cfg.LockKey, cfg.LockTTL, params.Logger)
}

// NewRedisScanLocker builds a locker on an existing client.
func NewRedisScanLocker(client *redis.Client, key string, ttl time.Duration, logger *slog.Logger) service.ScanLocker {
	return &redisScanLocker{
		client: client,
		key:    key,
		ttl:    ttl,
		logger: logger,
	}
}

// TryLock sets the key with NX and a TTL. The TTL bounds how long a crashed
// holder can block other replicas.
func (l *redisScanLocker) TryLock(ctx context.Context) (func(), bool, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to acquire scan lock")
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, l.client, []string{l.key}, token).Err(); err != nil {
			l.logger.Warn("[ScanLock] Release failed, lock will expire by TTL",
				slog.String("key", l.key),
				slog.Any("error", err),
			)
		}
	}

	return release, true, nil
}
