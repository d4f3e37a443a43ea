package entity

// Prerequisite is one evaluated onboarding condition.
type Prerequisite struct {
	Kind        Kind
	Outstanding bool // The user has not met the condition yet
	Open        bool // The panel for this kind is eligible to display
}

// DismissReason records how a panel was closed.
type DismissReason string

const (
	DismissClose  DismissReason = "close"
	DismissLater  DismissReason = "later"
	DismissAction DismissReason = "action"
)

// Valid reports whether r is a known reason.
func (r DismissReason) Valid() bool {
	switch r {
	case DismissClose, DismissLater, DismissAction:
		return true
	}
	return false
}
