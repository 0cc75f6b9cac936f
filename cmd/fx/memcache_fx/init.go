package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripplanner/internal/config"
	"tripplanner/internal/infra"
	mem "tripplanner/pkg/memcache"
)

var Module = fx.Provide(provideMemcacheClient)

const purgeEvery = 5 * time.Minute

func provideMemcacheClient(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (mem.Store, error) {
	if cfg.RedisAddr != "" {
		client, err := infra.InitRedis(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		log.Info("catalog cache backed by redis", zap.String("addr", cfg.RedisAddr))
		return mem.NewRedisStore(client, "tripplanner:", log), nil
	}

	store := mem.NewTTLStore()
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				t := time.NewTicker(purgeEvery)
				defer t.Stop()
				for {
					select {
					case <-t.C:
						if n := store.Purge(); n > 0 {
							log.Debug("purged cache entries", zap.Int("count", n))
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
	return store, nil
}
