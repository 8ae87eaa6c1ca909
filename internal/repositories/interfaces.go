package repositories

import (
	"household-ledger/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction store operations
type TransactionRepositoryInterface interface {
	ListByUser(userID string) ([]models.Transaction, error)
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	Delete(id uuid.UUID) error
}
