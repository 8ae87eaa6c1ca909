package dto

import (
	"fmt"
	"time"

	"household-ledger/internal/models"
)

// dateLayout is the wire form for calendar dates
const dateLayout = "2006-01-02"

// CreateTransactionRequest is the POST /transactions body. Category is
// stored verbatim and deliberately not validated against the UI set.
type CreateTransactionRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount" validate:"required,positive_amount"`
	Category    string  `json:"category"`
	Type        string  `json:"type" validate:"required,transaction_type"`
	Date        string  `json:"date,omitempty"`
	UserID      string  `json:"user_id,omitempty"`
}

// ParseDate interprets the optional date field. The dashboard sends a
// bare calendar date; older clients sent a full RFC 3339 timestamp.
// A zero time means "default to now".
func (r *CreateTransactionRequest) ParseDate() (time.Time, error) {
	if r.Date == "" {
		return time.Time{}, nil
	}

	if d, err := time.Parse(dateLayout, r.Date); err == nil {
		return d, nil
	}

	if d, err := time.Parse(time.RFC3339, r.Date); err == nil {
		return d, nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", r.Date)
}

// TransactionResponse is the wire form of a single transaction.
// Amount travels as a JSON number with two-decimal display semantics.
type TransactionResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	UserID      string  `json:"user_id"`
}

// NewTransactionResponse converts a model to its wire form
func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Description: t.Description,
		Amount:      t.Amount.InexactFloat64(),
		Category:    t.Category,
		Type:        t.Type,
		Date:        t.Date.UTC().Format(dateLayout),
		UserID:      t.UserID,
	}
}

// NewTransactionResponses converts a slice of models to wire form
func NewTransactionResponses(transactions []models.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		result = append(result, NewTransactionResponse(&transactions[i]))
	}
	return result
}

// ListTransactionsResponse wraps the transaction list payload
type ListTransactionsResponse struct {
	Data []TransactionResponse `json:"data"`
}

// CreateTransactionResponse wraps the created transaction payload
type CreateTransactionResponse struct {
	Data TransactionResponse `json:"data"`
}

// DeleteTransactionResponse acknowledges a delete
type DeleteTransactionResponse struct {
	Success bool `json:"success"`
}
