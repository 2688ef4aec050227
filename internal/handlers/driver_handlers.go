package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
)

//
// --- Driver App API ---
//

// GetMyOrders lists the driver's active (not yet delivered) orders.
// GET /api/driver/my-orders?driverName=...
func (h *Handlers) GetMyOrders(c *gin.Context) {
	driverName := c.Query("driverName")
	if driverName == "" {
		respondError(c, fmt.Errorf("driverName is required: %w", models.ErrInvalidInput))
		return
	}
	orders, err := h.Analytics.ActiveOrders(c.Request.Context(), driverName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetHistory lists the driver's 5 most recent delivered orders, newest
// first.
// GET /api/driver/history?driverName=...
func (h *Handlers) GetHistory(c *gin.Context) {
	driverName := c.Query("driverName")
	if driverName == "" {
		respondError(c, fmt.Errorf("driverName is required: %w", models.ErrInvalidInput))
		return
	}
	history, err := h.Analytics.DriverHistory(c.Request.Context(), driverName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// AcceptOrder marks an order accepted.
// POST /api/driver/accept?orderId=...
func (h *Handlers) AcceptOrder(c *gin.Context) {
	h.lifecycleAction(c, "Order Accepted", h.Lifecycle.Accept)
}

// RejectOrder returns an order to the unassigned pool.
// POST /api/driver/reject?orderId=...
func (h *Handlers) RejectOrder(c *gin.Context) {
	h.lifecycleAction(c, "Order Rejected", h.Lifecycle.Reject)
}

// CompleteOrder marks an order delivered and stamps today's date.
// POST /api/driver/complete?orderId=...
func (h *Handlers) CompleteOrder(c *gin.Context) {
	h.lifecycleAction(c, "Order Delivered", h.Lifecycle.Complete)
}

// UpdateOrderStatus overwrites an order's status. Unrecognized values are
// rejected here at the boundary; the lifecycle itself stays permissive.
// POST /api/driver/update-status?orderId=...&status=...
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Query("orderId")
	status := c.Query("status")
	if orderID == "" || status == "" {
		respondError(c, fmt.Errorf("orderId and status are required: %w", models.ErrInvalidInput))
		return
	}
	if !models.KnownOrderStatus(status) {
		respondError(c, fmt.Errorf("unknown status %q: %w", status, models.ErrInvalidInput))
		return
	}
	order, err := h.Lifecycle.UpdateStatus(c.Request.Context(), orderID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status Updated to " + order.Status, "order": order})
}

// UpdateLocation records the driver's current GPS position.
// POST /api/driver/update-location?email=...&lat=...&lng=...
func (h *Handlers) UpdateLocation(c *gin.Context) {
	email := c.Query("email")
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if email == "" || latErr != nil || lngErr != nil {
		respondError(c, fmt.Errorf("email, lat, and lng are required: %w", models.ErrInvalidInput))
		return
	}
	if _, err := h.Roster.ReportLocation(c.Request.Context(), email, lat, lng); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Location Updated"})
}

// lifecycleAction is the shared body for the accept/reject/complete
// endpoints: same parameter, same not-found handling, different mutation.
func (h *Handlers) lifecycleAction(c *gin.Context, message string, fn func(ctx context.Context, orderID string) (*models.Order, error)) {
	orderID := c.Query("orderId")
	if orderID == "" {
		respondError(c, fmt.Errorf("orderId is required: %w", models.ErrInvalidInput))
		return
	}
	order, err := fn(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "order": order})
}
