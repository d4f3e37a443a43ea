package entity

import "time"

// CustodyAccountStatus は保管口座の状態です。
type CustodyAccountStatus string

const (
	CustodyAccountActive  CustodyAccountStatus = "active"
	CustodyAccountPending CustodyAccountStatus = "pending"
	CustodyAccountClosed  CustodyAccountStatus = "closed"
)

// CustodyAccount is a brokerage/custodian account through which a user holds assets.
// Accounts are created by the account-management flow; onboarding only reads them.
type CustodyAccount struct {
	ID            uint
	UserID        uint
	Name          string
	Custodian     string // Custodian institution (e.g., "BAI", "BFA")
	AccountNumber string
	Status        CustodyAccountStatus
	CreatedAt     time.Time
}
