package handlers

import (
	"net/http"

	"household-ledger/internal/models"

	"github.com/labstack/echo/v4"
)

// MetaHandler serves the fixed catalogs the dashboard renders from
type MetaHandler struct{}

// NewMetaHandler creates a new meta handler
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// ListUsers returns the fixed user identities
// @Summary List users
// @Description Retrieve the fixed user identities available for selection
// @Tags Meta
// @Produce json
// @Success 200 {object} map[string]interface{} "User catalog"
// @Router /users [get]
func (h *MetaHandler) ListUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": models.AllUsers(),
	})
}

// ListCategories returns the closed category set
// @Summary List categories
// @Description Retrieve the closed set of transaction categories
// @Tags Meta
// @Produce json
// @Success 200 {object} map[string]interface{} "Category list"
// @Router /categories [get]
func (h *MetaHandler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": models.AllCategories(),
	})
}
