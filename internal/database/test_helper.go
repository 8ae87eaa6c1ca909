package database

import (
	"testing"
	"time"

	"household-ledger/internal/config"
	"household-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM transactions").Error; err != nil {
		t.Logf("failed to cleanup transactions table: %v", err)
	}
}

// CreateTestTransaction persists a transaction for the given user on
// the given date, defaulting the remaining fields to a plausible row.
func CreateTestTransaction(t *testing.T, db *DB, userID, txType string, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		Description: "test transaction",
		Amount:      decimal.NewFromFloat(amount),
		Category:    models.CategoryGeneral,
		Type:        txType,
		Date:        date,
		UserID:      userID,
	}

	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return transaction
}
