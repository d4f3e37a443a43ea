// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"twala_backend/internal/feature/onboarding/usecase"
	"twala_backend/internal/platform/session"
)

// NewStateStore creates a StateStore implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to process memory with a cron idle sweep; stop must be called on shutdown.
func NewStateStore(rdb *redis.Client, idleTTL time.Duration, sweepSpec string) (store usecase.StateStore, stop func(), err error) {
	if rdb != nil {
		return session.NewStateRedis(rdb, "onboarding", idleTTL), func() {}, nil
	}
	mem := session.NewStateMemory()
	stop, err = mem.StartSweeper(sweepSpec, idleTTL)
	if err != nil {
		return nil, nil, err
	}
	slog.Warn("onboarding state kept in memory; dismissals are lost on restart")
	return mem, stop, nil
}
