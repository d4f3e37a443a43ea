package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"twala_backend/internal/feature/onboarding/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&CustodyAccountModel{}, &TransactionModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func seedAccount(t *testing.T, db *gorm.DB, userID uint, status entity.CustodyAccountStatus) *CustodyAccountModel {
	t.Helper()

	m := &CustodyAccountModel{
		UserID:        userID,
		Name:          "Conta principal",
		Custodian:     "BAI",
		AccountNumber: "0040-0000-1234",
		Status:        string(status),
	}
	require.NoError(t, db.Create(m).Error, "failed to seed custody account")
	return m
}

func seedTransaction(t *testing.T, db *gorm.DB, userID, accountID uint) {
	t.Helper()

	m := &TransactionModel{
		UserID:           userID,
		CustodyAccountID: accountID,
		Ticker:           "BAI",
		Side:             "buy",
		Quantity:         10,
		Price:            decimal.RequireFromString("61000.00"),
		TradedAt:         time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(m).Error, "failed to seed transaction")
}

func TestPrerequisiteRepository_CountCustodyAccounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPrerequisiteRepository(db)
	ctx := context.Background()

	n, err := repo.CountCustodyAccounts(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, n, "absence of data is a zero count")

	seedAccount(t, db, 1, entity.CustodyAccountActive)
	seedAccount(t, db, 1, entity.CustodyAccountPending)
	seedAccount(t, db, 1, entity.CustodyAccountClosed)
	seedAccount(t, db, 2, entity.CustodyAccountActive)

	n, err = repo.CountCustodyAccounts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "closed accounts are not counted")
}

func TestPrerequisiteRepository_CountTransactions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPrerequisiteRepository(db)
	ctx := context.Background()

	acc := seedAccount(t, db, 1, entity.CustodyAccountActive)
	n, err := repo.CountTransactions(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, n)

	seedTransaction(t, db, 1, acc.ID)
	seedTransaction(t, db, 1, acc.ID)
	seedTransaction(t, db, 3, acc.ID)

	n, err = repo.CountTransactions(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestPrerequisiteRepository_Errors(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	repo := NewPrerequisiteRepository(db) // tables not migrated

	_, err = repo.CountCustodyAccounts(context.Background(), 1)
	assert.ErrorContains(t, err, "count custody accounts")
	_, err = repo.CountTransactions(context.Background(), 1)
	assert.ErrorContains(t, err, "count transactions")
}

func TestCustodyAccountModel_ToEntity(t *testing.T) {
	db := setupTestDB(t)
	m := seedAccount(t, db, 7, entity.CustodyAccountPending)

	var got CustodyAccountModel
	require.NoError(t, db.First(&got, m.ID).Error)
	e := got.ToEntity()
	assert.Equal(t, uint(7), e.UserID)
	assert.Equal(t, "BAI", e.Custodian)
	assert.Equal(t, entity.CustodyAccountPending, e.Status)
}
