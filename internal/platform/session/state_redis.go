// Package session stores the onboarding state of each user session.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"twala_backend/internal/feature/onboarding/domain/entity"
	"twala_backend/internal/feature/onboarding/usecase"
)

// DefaultIdleTTL is how long an untouched session state is kept.
const DefaultIdleTTL = 12 * time.Hour

// StateRedis implements usecase.StateStore using Redis.
// Each state is a JSON value whose TTL is refreshed on every save.
type StateRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ usecase.StateStore = (*StateRedis)(nil)

// NewStateRedis creates a new StateRedis instance.
func NewStateRedis(client *redis.Client, prefix string, ttl time.Duration) *StateRedis {
	if prefix == "" {
		prefix = "onboarding"
	}
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}
	return &StateRedis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// stateKey returns the Redis key for a user's state.
func (r *StateRedis) stateKey(userID uint) string {
	return fmt.Sprintf("%s:%d", r.prefix, userID)
}

// Load returns the stored state or a fresh one if the key is missing.
func (r *StateRedis) Load(ctx context.Context, userID uint) (*entity.SessionState, error) {
	data, err := r.client.Get(ctx, r.stateKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.NewSessionState(userID), nil
		}
		return nil, err
	}

	var st entity.SessionState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal onboarding state: %w", err)
	}
	st.UserID = userID
	if st.Flags == nil {
		st.Flags = map[entity.Kind]entity.PrerequisiteFlags{}
	}
	return &st, nil
}

// Save persists the state and refreshes its TTL.
func (r *StateRedis) Save(ctx context.Context, st *entity.SessionState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal onboarding state: %w", err)
	}
	return r.client.Set(ctx, r.stateKey(st.UserID), data, r.ttl).Err()
}

func (r *StateRedis) Delete(ctx context.Context, userID uint) error {
	return r.client.Del(ctx, r.stateKey(userID)).Err()
}
