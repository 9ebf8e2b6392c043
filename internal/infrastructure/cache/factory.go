package cache

import (
	"time"

	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Key namespaces inside the shared Redis database
const (
	DashboardPrefix   = "ph:dashboard:"
	IdempotencyPrefix = "ph:event:"
)

// Stores groups the cache-backed stores the application needs
type Stores struct {
	Dashboard   Cache
	Idempotency shared.IdempotencyStore
	closers     []func() error
}

// NewStores builds Redis-backed stores when client is non-nil and in-memory
// stores otherwise
func NewStores(client *redis.Client, logger *zap.Logger) *Stores {
	if client != nil {
		logger.Info("using redis for dashboard cache and event idempotency")
		return &Stores{
			Dashboard:   NewRedisStore(client, DashboardPrefix),
			Idempotency: NewRedisStore(client, IdempotencyPrefix),
		}
	}

	logger.Warn("redis disabled, using in-memory caches; state is not shared between instances")
	dash := NewMemoryStore(time.Minute)
	idem := NewMemoryStore(5 * time.Minute)
	return &Stores{
		Dashboard:   dash,
		Idempotency: idem,
		closers:     []func() error{dash.Close, idem.Close},
	}
}

// Close stops background sweepers of in-memory stores
func (s *Stores) Close() error {
	for _, c := range s.closers {
		_ = c()
	}
	return nil
}
