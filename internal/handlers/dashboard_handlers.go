package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
)

// Read-only listing endpoints the dashboard frontend polls.

// ListOrders returns every order.
// GET /api/orders
func (h *Handlers) ListOrders(c *gin.Context) {
	orders, err := h.Orders.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// ListDrivers returns every driver profile.
// GET /api/drivers
func (h *Handlers) ListDrivers(c *gin.Context) {
	drivers, err := h.Roster.ListDrivers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if drivers == nil {
		drivers = []models.Driver{}
	}
	c.JSON(http.StatusOK, drivers)
}

// ListUsers returns every account. Passwords never serialize; the model
// hides them from JSON.
// GET /api/users
func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.Accounts.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}
