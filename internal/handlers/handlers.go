package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
	"github.com/smartdelivery/smartdelivery-golang/internal/service"
	"github.com/smartdelivery/smartdelivery-golang/internal/store"
)

// Reporter produces the natural-language driver performance summary. The
// AI service implements it; tests substitute a stub.
type Reporter interface {
	DriverReport(ctx context.Context, driverName string, orders []models.Order) (string, error)
}

// Handlers holds all dependencies the HTTP layer needs.
type Handlers struct {
	Lifecycle *service.Lifecycle
	Analytics *service.Analytics
	Roster    *service.Roster
	Accounts  *service.Accounts
	Orders    store.OrderStore
	Reporter  Reporter
	JWTSecret string
}

// respondError translates an error kind into its HTTP status and the
// canonical machine-readable code. Anything outside the closed set is a
// plain 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, models.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrUpstreamUnavailable):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{
		"status": "error",
		"code":   models.ErrorCode(err),
		"error":  err.Error(),
	})
}
