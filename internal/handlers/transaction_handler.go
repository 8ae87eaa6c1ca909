package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"household-ledger/internal/dto"
	"household-ledger/internal/errors"
	"household-ledger/internal/models"
	"household-ledger/internal/repositories"
	"household-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionRepo  repositories.TransactionRepositoryInterface
	metricsCollector services.MetricsRecorderInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionRepo repositories.TransactionRepositoryInterface, metricsCollector services.MetricsRecorderInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo:  transactionRepo,
		metricsCollector: metricsCollector,
	}
}

// ListTransactions returns the full transaction history for a user
// @Summary List transactions
// @Description Retrieve all transactions for a user, newest date first
// @Tags Transactions
// @Produce json
// @Param user_id query string false "User ID (defaults to anonymous)"
// @Success 200 {object} dto.ListTransactionsResponse "Transaction list"
// @Failure 400 {object} errors.ErrorResponse "QUERY_001 - Store rejected the request"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	startTime := time.Now()

	userID := c.QueryParam("user_id")
	if userID == "" {
		userID = models.AnonymousUserID
	}

	transactions, err := h.transactionRepo.ListByUser(userID)
	if err != nil {
		slog.Error("Failed to list transactions",
			"user_id", userID,
			"error", err,
			"trace_id", getTraceID(c))

		if h.metricsCollector != nil {
			h.metricsCollector.IncrementCounter("transaction.list", map[string]string{"status": "failed"})
		}

		return SendQueryError(c, err)
	}

	if h.metricsCollector != nil {
		h.metricsCollector.IncrementCounter("transaction.list", map[string]string{"status": "success"})
		h.metricsCollector.RecordProcessingTime("transaction.list", time.Since(startTime))
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Data: dto.NewTransactionResponses(transactions),
	})
}

// CreateTransaction records a new income or expense entry
// @Summary Create a transaction
// @Description Record a new income or expense entry. Date defaults to today, user to anonymous.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 200 {object} dto.CreateTransactionResponse "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithMessage("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	date, err := req.ParseDate()
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithMessage(err.Error()))
	}

	transaction := &models.Transaction{
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Type:        strings.ToLower(req.Type),
		Date:        date,
		UserID:      req.UserID,
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		slog.Error("Failed to create transaction",
			"user_id", transaction.UserID,
			"type", transaction.Type,
			"error", err,
			"trace_id", getTraceID(c))

		if h.metricsCollector != nil {
			h.metricsCollector.IncrementCounter("transaction.created", map[string]string{"type": transaction.Type, "status": "failed"})
		}

		return SendQueryError(c, err)
	}

	slog.Info("Transaction created",
		"transaction_id", transaction.ID,
		"user_id", transaction.UserID,
		"type", transaction.Type)

	if h.metricsCollector != nil {
		h.metricsCollector.IncrementCounter("transaction.created", map[string]string{"type": transaction.Type, "status": "success"})
	}

	return c.JSON(http.StatusOK, dto.CreateTransactionResponse{
		Data: dto.NewTransactionResponse(transaction),
	})
}

// DeleteTransaction removes a transaction by ID
// @Summary Delete a transaction
// @Description Delete a transaction. Deleting an unknown id still reports success.
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.DeleteTransactionResponse "Deletion acknowledged"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID format"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithMessage("Invalid transaction ID"))
	}

	if err := h.transactionRepo.Delete(id); err != nil {
		slog.Error("Failed to delete transaction",
			"transaction_id", id,
			"error", err,
			"trace_id", getTraceID(c))
		return SendQueryError(c, err)
	}

	if h.metricsCollector != nil {
		h.metricsCollector.IncrementCounter("transaction.deleted", nil)
	}

	return c.JSON(http.StatusOK, dto.DeleteTransactionResponse{Success: true})
}
