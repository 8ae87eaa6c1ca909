package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"household-ledger/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestCustomHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	c, rec := newErrorContext(t)

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeError(t, rec))
}

func TestCustomHTTPErrorHandler_ValidationErrors(t *testing.T) {
	c, rec := newErrorContext(t)

	type createRequest struct {
		Amount float64 `json:"amount" validate:"required,positive_amount"`
		Type   string  `json:"type" validate:"required,transaction_type"`
	}
	err := validation.GetValidator().GetValidate().Struct(createRequest{Type: "transfer"})
	require.Error(t, err)
	require.IsType(t, validator.ValidationErrors{}, err)

	CustomHTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	message := decodeError(t, rec)
	assert.Contains(t, message, "amount")
	assert.Contains(t, message, "type")
	assert.Contains(t, message, "valid transaction type")
}

func TestCustomHTTPErrorHandler_UnknownErrorIsGeneric(t *testing.T) {
	c, rec := newErrorContext(t)

	CustomHTTPErrorHandler(errors.New("pq: table is on fire"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, decodeError(t, rec), "pq:")
}

func TestCustomHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	c, rec := newErrorContext(t)
	require.NoError(t, c.String(http.StatusOK, "done"))

	CustomHTTPErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
