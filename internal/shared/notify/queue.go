// Package notify keeps short-lived, auto-dismissing notifications per user.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a toast stays visible when no TTL is configured.
const DefaultTTL = 5 * time.Second

// Variant は通知の種類です。
type Variant string

const (
	VariantInfo    Variant = "info"
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
)

// Toast is a single notification.
type Toast struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Variant   Variant   `json:"variant"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type entry struct {
	toast Toast
	timer *time.Timer
}

// Queue holds active toasts. Each toast owns a one-shot timer that removes it
// after the TTL; Close stops every pending timer.
type Queue struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	items  map[uint][]*entry
	closed bool
}

// NewQueue は指定TTLの通知キューを生成します。ttlが0以下の場合はDefaultTTLを使います。
func NewQueue(ttl time.Duration) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{ttl: ttl, now: time.Now, items: map[uint][]*entry{}}
}

// Push adds a toast for the user and schedules its removal.
// ID, CreatedAt and ExpiresAt are filled in. After Close, Push is a no-op.
func (q *Queue) Push(userID uint, t Toast) Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	if t.Variant == "" {
		t.Variant = VariantInfo
	}
	t.ID = uuid.NewString()
	t.CreatedAt = q.now()
	t.ExpiresAt = t.CreatedAt.Add(q.ttl)
	if q.closed {
		return t
	}

	id := t.ID
	e := &entry{toast: t}
	e.timer = time.AfterFunc(q.ttl, func() { q.remove(userID, id) })
	q.items[userID] = append(q.items[userID], e)
	return t
}

// List returns the user's active toasts, oldest first.
func (q *Queue) List(userID uint) []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Toast, 0, len(q.items[userID]))
	for _, e := range q.items[userID] {
		out = append(out, e.toast)
	}
	return out
}

// Dismiss removes a toast before it expires. It reports whether the toast existed.
func (q *Queue) Dismiss(userID uint, id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	e := q.take(userID, id)
	if e == nil {
		return false
	}
	e.timer.Stop()
	return true
}

// Clear removes every toast of the user.
func (q *Queue) Clear(userID uint) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, e := range q.items[userID] {
		e.timer.Stop()
	}
	delete(q.items, userID)
}

// Close stops all pending timers and drops every toast.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, entries := range q.items {
		for _, e := range entries {
			e.timer.Stop()
		}
	}
	q.items = map[uint][]*entry{}
	q.closed = true
}

func (q *Queue) remove(userID uint, id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.take(userID, id)
}

// take unlinks the entry; callers hold q.mu.
func (q *Queue) take(userID uint, id string) *entry {
	entries := q.items[userID]
	for i, e := range entries {
		if e.toast.ID != id {
			continue
		}
		entries = append(entries[:i], entries[i+1:]...)
		if len(entries) == 0 {
			delete(q.items, userID)
		} else {
			q.items[userID] = entries
		}
		return e
	}
	return nil
}
