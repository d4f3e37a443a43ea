package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"twala_backend/internal/feature/onboarding/domain/entity"
	"twala_backend/internal/feature/onboarding/usecase"
)

// DefaultSweepSpec runs the idle sweep every ten minutes.
const DefaultSweepSpec = "@every 10m"

// StateMemory implements usecase.StateStore in process memory.
// Used when Redis is not configured; state is lost on restart.
type StateMemory struct {
	mu     sync.Mutex
	states map[uint]*entity.SessionState
	now    func() time.Time
}

var _ usecase.StateStore = (*StateMemory)(nil)

func NewStateMemory() *StateMemory {
	return &StateMemory{states: map[uint]*entity.SessionState{}, now: time.Now}
}

func (m *StateMemory) Load(_ context.Context, userID uint) (*entity.SessionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok := m.states[userID]; ok {
		return st.Clone(), nil
	}
	return entity.NewSessionState(userID), nil
}

func (m *StateMemory) Save(_ context.Context, st *entity.SessionState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := st.Clone()
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = m.now()
	}
	m.states[st.UserID] = c
	return nil
}

func (m *StateMemory) Delete(_ context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, userID)
	return nil
}

// Len returns the number of stored states.
func (m *StateMemory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.states)
}

// Sweep removes states not updated within idle and returns how many were removed.
func (m *StateMemory) Sweep(idle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-idle)
	n := 0
	for id, st := range m.states {
		if st.UpdatedAt.Before(cutoff) {
			delete(m.states, id)
			n++
		}
	}
	return n
}

// StartSweeper schedules Sweep on a cron spec (e.g. "@every 10m") and returns a stop func
// that waits for a running sweep to finish.
func (m *StateMemory) StartSweeper(spec string, idle time.Duration) (stop func(), err error) {
	if spec == "" {
		spec = DefaultSweepSpec
	}
	if idle <= 0 {
		idle = DefaultIdleTTL
	}
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if n := m.Sweep(idle); n > 0 {
			slog.Info("swept idle onboarding states", "removed", n)
		}
	}); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", spec, err)
	}
	c.Start()
	return func() { <-c.Stop().Done() }, nil
}
