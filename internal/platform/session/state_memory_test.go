package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twala_backend/internal/feature/onboarding/domain/entity"
)

func TestStateMemory_RoundTrip(t *testing.T) {
	t.Parallel()
	m := NewStateMemory()
	ctx := context.Background()

	st, err := m.Load(ctx, 1)
	require.NoError(t, err)
	st.Dismiss(entity.KindCustody)

	// Mutating a loaded state does not touch the store until Save.
	again, err := m.Load(ctx, 1)
	require.NoError(t, err)
	assert.False(t, again.Dismissed(entity.KindCustody))

	require.NoError(t, m.Save(ctx, st))
	st.Reset()
	got, err := m.Load(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Dismissed(entity.KindCustody))

	require.NoError(t, m.Delete(ctx, 1))
	assert.Zero(t, m.Len())
}

func TestStateMemory_Sweep(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	m := NewStateMemory()
	m.now = func() time.Time { return now }
	ctx := context.Background()

	old := entity.NewSessionState(1)
	old.UpdatedAt = now.Add(-3 * time.Hour)
	fresh := entity.NewSessionState(2)
	fresh.UpdatedAt = now.Add(-time.Minute)
	require.NoError(t, m.Save(ctx, old))
	require.NoError(t, m.Save(ctx, fresh))
	require.NoError(t, m.Save(ctx, entity.NewSessionState(3))) // stamped with now

	assert.Equal(t, 1, m.Sweep(time.Hour))
	assert.Equal(t, 2, m.Len())
}

func TestStateMemory_StartSweeper(t *testing.T) {
	t.Parallel()
	m := NewStateMemory()

	_, err := m.StartSweeper("not a schedule", time.Hour)
	assert.Error(t, err)

	stop, err := m.StartSweeper("@every 1h", time.Hour)
	require.NoError(t, err)
	stop()
}

func TestStateMemory_Concurrent(t *testing.T) {
	t.Parallel()
	m := NewStateMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := uint(1); i <= 20; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			st, _ := m.Load(ctx, id)
			st.Dismiss(entity.KindCustody)
			_ = m.Save(ctx, st)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, m.Len())
}
