package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"twala_backend/internal/feature/onboarding/domain/entity"
	"twala_backend/internal/feature/onboarding/usecase"
)

// prerequisiteGorm reads the account and transaction tables owned by the
// account-management flow. It never writes to them.
type prerequisiteGorm struct {
	db *gorm.DB
}

var _ usecase.PrerequisiteData = (*prerequisiteGorm)(nil)

func NewPrerequisiteRepository(db *gorm.DB) *prerequisiteGorm {
	return &prerequisiteGorm{db: db}
}

type CustodyAccountModel struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"not null;index"`
	Name          string `gorm:"size:128;not null"`
	Custodian     string `gorm:"size:64;not null"`
	AccountNumber string `gorm:"size:64"`
	Status        string `gorm:"size:16;not null;default:active"`
	CreatedAt     time.Time
}

func (CustodyAccountModel) TableName() string {
	return "custody_accounts"
}

func (m CustodyAccountModel) ToEntity() entity.CustodyAccount {
	return entity.CustodyAccount{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Custodian:     m.Custodian,
		AccountNumber: m.AccountNumber,
		Status:        entity.CustodyAccountStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

type TransactionModel struct {
	ID               uint            `gorm:"primaryKey"`
	UserID           uint            `gorm:"not null;index"`
	CustodyAccountID uint            `gorm:"not null;index"`
	Ticker           string          `gorm:"size:16;not null"`
	Side             string          `gorm:"size:4;not null"` // buy | sell
	Quantity         int64           `gorm:"not null"`
	Price            decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	TradedAt         time.Time       `gorm:"not null"`
	CreatedAt        time.Time
}

func (TransactionModel) TableName() string {
	return "transactions"
}

// CountCustodyAccounts counts the user's accounts that are not closed.
func (r *prerequisiteGorm) CountCustodyAccounts(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&CustodyAccountModel{}).
		Where("user_id = ? AND status <> ?", userID, string(entity.CustodyAccountClosed)).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count custody accounts: %w", err)
	}
	return n, nil
}

func (r *prerequisiteGorm) CountTransactions(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&TransactionModel{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}
