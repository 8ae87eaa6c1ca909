package dto

import (
	"encoding/json"
	"testing"
	"time"

	"household-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransactionRequest_ParseDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    time.Time
		wantErr bool
	}{
		{name: "calendar date", date: "2024-06-02", want: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 timestamp", date: "2024-06-02T15:04:05Z", want: time.Date(2024, 6, 2, 15, 4, 5, 0, time.UTC)},
		{name: "empty defaults to zero", date: "", want: time.Time{}},
		{name: "slashes rejected", date: "02/06/2024", wantErr: true},
		{name: "garbage rejected", date: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateTransactionRequest{Date: tt.date}
			got, err := req.ParseDate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s", got)
		})
	}
}

func TestNewTransactionResponse(t *testing.T) {
	id := uuid.New()
	transaction := &models.Transaction{
		ID:          id,
		Description: "groceries",
		Amount:      decimal.NewFromFloat(40.50),
		Category:    models.CategoryFood,
		Type:        models.TransactionTypeExpense,
		Date:        time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		UserID:      models.UserRay,
	}

	response := NewTransactionResponse(transaction)

	assert.Equal(t, id.String(), response.ID)
	assert.Equal(t, "groceries", response.Description)
	assert.Equal(t, 40.50, response.Amount)
	assert.Equal(t, "2024-06-02", response.Date)
	assert.Equal(t, models.UserRay, response.UserID)
}

func TestTransactionResponse_AmountIsJSONNumber(t *testing.T) {
	transaction := &models.Transaction{
		ID:     uuid.New(),
		Amount: decimal.NewFromFloat(12.5),
		Type:   models.TransactionTypeExpense,
		Date:   time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		UserID: models.UserRay,
	}

	body, err := json.Marshal(NewTransactionResponse(transaction))
	require.NoError(t, err)

	// Amount serializes as a bare number, not a quoted string
	assert.Contains(t, string(body), `"amount":12.5`)
}

func TestNewTransactionResponses_EmptyIsNotNull(t *testing.T) {
	body, err := json.Marshal(ListTransactionsResponse{Data: NewTransactionResponses(nil)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(body))
}

func TestDeleteTransactionResponse_Shape(t *testing.T) {
	body, err := json.Marshal(DeleteTransactionResponse{Success: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true}`, string(body))
}
