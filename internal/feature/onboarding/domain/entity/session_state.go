package entity

import (
	"time"

	"twala_backend/internal/shared/viewport"
)

// PrerequisiteFlags is the per-kind session memory.
type PrerequisiteFlags struct {
	Dismissed   bool `json:"dismissed"`
	Outstanding bool `json:"outstanding"` // Value seen on the last gated evaluation
	Observed    bool `json:"observed"`    // Outstanding holds a real observation
}

// SessionState is the onboarding state of one user session.
// It is owned by a StateStore and mutated only by the gate.
type SessionState struct {
	UserID    uint                       `json:"user_id"`
	Flags     map[Kind]PrerequisiteFlags `json:"flags"`
	Viewport  viewport.Snapshot          `json:"viewport"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// NewSessionState returns an empty state for the user.
func NewSessionState(userID uint) *SessionState {
	return &SessionState{UserID: userID, Flags: map[Kind]PrerequisiteFlags{}}
}

// Clone returns a deep copy.
func (s *SessionState) Clone() *SessionState {
	c := *s
	c.Flags = make(map[Kind]PrerequisiteFlags, len(s.Flags))
	for k, v := range s.Flags {
		c.Flags[k] = v
	}
	return &c
}

// Observe records the outstanding set of a gated evaluation.
// A kind whose outstanding value changed since the last observation loses its
// dismissal. It returns the kinds that went from outstanding to not outstanding.
func (s *SessionState) Observe(outstanding map[Kind]bool) []Kind {
	if s.Flags == nil {
		s.Flags = map[Kind]PrerequisiteFlags{}
	}
	var satisfied []Kind
	for _, k := range Kinds {
		now := outstanding[k]
		f := s.Flags[k]
		if f.Observed && f.Outstanding != now {
			f.Dismissed = false
			if f.Outstanding {
				satisfied = append(satisfied, k)
			}
		}
		f.Outstanding = now
		f.Observed = true
		s.Flags[k] = f
	}
	return satisfied
}

// Dismiss marks the kind's panel as closed for the session.
func (s *SessionState) Dismiss(k Kind) {
	if s.Flags == nil {
		s.Flags = map[Kind]PrerequisiteFlags{}
	}
	f := s.Flags[k]
	f.Dismissed = true
	s.Flags[k] = f
}

// Dismissed reports whether the kind's panel was closed.
func (s *SessionState) Dismissed(k Kind) bool {
	return s.Flags[k].Dismissed
}

// Reset clears every dismissal and observation. The viewport measurement is kept.
func (s *SessionState) Reset() {
	s.Flags = map[Kind]PrerequisiteFlags{}
}
