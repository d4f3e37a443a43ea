// Package usecase implements the onboarding prerequisite gate.
package usecase

import (
	"twala_backend/internal/feature/onboarding/domain/entity"
)

// Input is what the evaluator needs to know about the current render.
type Input struct {
	CustodyAccounts int64
	Transactions    int64
	AuthRoute       bool // Rendering /login, /signup, ...
	Ready           bool // Counts are available for this render
}

// Gated reports whether prerequisites apply to this render at all.
func (in Input) Gated() bool {
	return in.Ready && !in.AuthRoute
}

// Outstanding returns which kinds are unmet. transactions is never outstanding
// while custody is, so the user is walked through custody first.
func Outstanding(in Input) map[entity.Kind]bool {
	out := map[entity.Kind]bool{}
	if !in.Gated() {
		return out
	}
	if in.CustodyAccounts == 0 {
		out[entity.KindCustody] = true
	}
	if in.CustodyAccounts > 0 && in.Transactions == 0 {
		out[entity.KindTransactions] = true
	}
	return out
}

// Evaluate returns one record per kind in priority order. At most one record
// is open: the first outstanding kind whose panel the session has not dismissed.
// A nil state means nothing has been dismissed.
func Evaluate(in Input, st *entity.SessionState) []entity.Prerequisite {
	outstanding := Outstanding(in)
	out := make([]entity.Prerequisite, 0, len(entity.Kinds))
	opened := false
	for _, k := range entity.Kinds {
		p := entity.Prerequisite{Kind: k, Outstanding: outstanding[k]}
		if p.Outstanding && !opened && (st == nil || !st.Dismissed(k)) {
			p.Open = true
			opened = true
		}
		out = append(out, p)
	}
	return out
}

// satisfied reports whether the condition behind k is met by the counts.
func satisfied(k entity.Kind, in Input) bool {
	switch k {
	case entity.KindCustody:
		return in.CustodyAccounts > 0
	case entity.KindTransactions:
		return in.Transactions > 0
	}
	return false
}
