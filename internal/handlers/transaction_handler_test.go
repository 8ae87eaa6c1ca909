package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"household-ledger/internal/dto"
	"household-ledger/internal/models"
	"household-ledger/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockTransactionRepositoryInterface
	handler  *TransactionHandler
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockRepo, nil)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

// List

func (s *TransactionHandlerTestSuite) TestListTransactions() {
	history := []models.Transaction{
		{
			ID:          uuid.New(),
			Description: "salary",
			Amount:      decimal.NewFromInt(100),
			Category:    models.CategorySalary,
			Type:        models.TransactionTypeIncome,
			Date:        time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC),
			UserID:      models.UserRay,
		},
		{
			ID:          uuid.New(),
			Description: "groceries",
			Amount:      decimal.NewFromFloat(40.50),
			Category:    models.CategoryFood,
			Type:        models.TransactionTypeExpense,
			Date:        time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
			UserID:      models.UserRay,
		},
	}
	s.mockRepo.EXPECT().ListByUser(models.UserRay).Return(history, nil)

	c, rec := s.newContext(http.MethodGet, "/transactions?user_id=ray", "")
	s.NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Data, 2)
	s.Equal("salary", response.Data[0].Description)
	s.Equal(float64(100), response.Data[0].Amount)
	s.Equal("2024-06-28", response.Data[0].Date)
	s.Equal(models.UserRay, response.Data[0].UserID)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_MissingUserDefaultsToAnonymous() {
	s.mockRepo.EXPECT().ListByUser(models.AnonymousUserID).Return([]models.Transaction{}, nil)

	c, rec := s.newContext(http.MethodGet, "/transactions", "")
	s.NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":[]}`, rec.Body.String())
}

func (s *TransactionHandlerTestSuite) TestListTransactions_StoreFailure() {
	s.mockRepo.EXPECT().ListByUser(models.UserRay).Return(nil, errors.New("failed to list transactions: connection refused"))

	c, rec := s.newContext(http.MethodGet, "/transactions?user_id=ray", "")
	s.NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusBadRequest, rec.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("failed to list transactions: connection refused", body["error"])
}

// Create

func (s *TransactionHandlerTestSuite) TestCreateTransaction() {
	s.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.Transaction) error {
		// Mirror the BeforeCreate hook the real store runs
		t.ID = uuid.New()
		if t.Date.IsZero() {
			t.Date = time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
		}
		if t.UserID == "" {
			t.UserID = models.AnonymousUserID
		}
		return nil
	})

	body := `{"description":"lunch","amount":12.5,"category":"food","type":"expense","date":"2024-06-02","user_id":"ray"}`
	c, rec := s.newContext(http.MethodPost, "/transactions", body)
	s.NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusOK, rec.Code)

	var response dto.CreateTransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotEmpty(response.Data.ID)
	s.Equal("lunch", response.Data.Description)
	s.Equal(12.5, response.Data.Amount)
	s.Equal("expense", response.Data.Type)
	s.Equal("2024-06-02", response.Data.Date)
	s.Equal(models.UserRay, response.Data.UserID)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_RFC3339Date() {
	s.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.Transaction) error {
		s.Equal(2024, t.Date.UTC().Year())
		s.Equal(time.June, t.Date.UTC().Month())
		t.ID = uuid.New()
		return nil
	})

	body := `{"description":"lunch","amount":12,"category":"food","type":"expense","date":"2024-06-02T15:04:05Z","user_id":"ray"}`
	c, rec := s.newContext(http.MethodPost, "/transactions", body)
	s.NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_ValidationFailures() {
	testCases := []struct {
		name string
		body string
	}{
		{"missing amount", `{"description":"x","type":"expense"}`},
		{"zero amount", `{"amount":0,"type":"expense"}`},
		{"negative amount", `{"amount":-5,"type":"expense"}`},
		{"missing type", `{"amount":10}`},
		{"bad type", `{"amount":10,"type":"transfer"}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, _ := s.newContext(http.MethodPost, "/transactions", tc.body)
			err := s.handler.CreateTransaction(c)
			// Validation errors bubble to the central error handler
			s.Error(err)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_BadDate() {
	body := `{"amount":10,"type":"expense","date":"02/06/2024"}`
	c, rec := s.newContext(http.MethodPost, "/transactions", body)
	s.NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "error")
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_MalformedJSON() {
	c, rec := s.newContext(http.MethodPost, "/transactions", `{"amount":`)
	s.NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

// Delete

func (s *TransactionHandlerTestSuite) TestDeleteTransaction() {
	id := uuid.New()
	s.mockRepo.EXPECT().Delete(id).Return(nil)

	c, rec := s.newContext(http.MethodDelete, "/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.DeleteTransaction(c))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":true}`, rec.Body.String())
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_UnknownIDStillSucceeds() {
	id := uuid.New()
	s.mockRepo.EXPECT().Delete(id).Return(nil)

	c, rec := s.newContext(http.MethodDelete, "/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_MalformedID() {
	c, rec := s.newContext(http.MethodDelete, "/transactions/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.DeleteTransaction(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "Invalid transaction ID")
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_StoreFailure() {
	id := uuid.New()
	s.mockRepo.EXPECT().Delete(id).Return(errors.New("failed to delete transaction: disk full"))

	c, rec := s.newContext(http.MethodDelete, "/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}
