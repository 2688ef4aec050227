package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
)

//
// --- Dashboard & Analytics ---
//

// GetStats returns the headline dashboard counts.
// GET /api/admin/stats
func (h *Handlers) GetStats(c *gin.Context) {
	stats, err := h.Analytics.SystemStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetAnalytics returns system-wide pending/revenue aggregates.
// GET /api/admin/analytics
func (h *Handlers) GetAnalytics(c *gin.Context) {
	stats, err := h.Analytics.RevenueStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetDriverAnalytics returns one driver's aggregates.
// GET /api/admin/analytics/driver?email=...
func (h *Handlers) GetDriverAnalytics(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		respondError(c, fmt.Errorf("email is required: %w", models.ErrInvalidInput))
		return
	}
	stats, err := h.Analytics.DriverStats(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetDriverReport returns the AI-generated performance summary for one
// driver. A failing upstream degrades to the fallback text; this endpoint
// never fails because the model did.
// GET /api/admin/driver-report?email=...
func (h *Handlers) GetDriverReport(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		respondError(c, fmt.Errorf("email is required: %w", models.ErrInvalidInput))
		return
	}

	orders, err := h.Analytics.DriverOrders(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.Reporter.DriverReport(c.Request.Context(), email, orders)
	if err != nil {
		// The reporter already substituted readable fallback text.
		log.Printf("WARNING: driver report degraded: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

//
// --- Driver Management ---
//

// GetAllDrivers lists the driver roster.
// GET /api/admin/drivers
func (h *Handlers) GetAllDrivers(c *gin.Context) {
	drivers, err := h.Roster.ListDrivers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// GetDriverLocation returns a driver's last reported position.
// GET /api/admin/driver-location?email=...
func (h *Handlers) GetDriverLocation(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		respondError(c, fmt.Errorf("email is required: %w", models.ErrInvalidInput))
		return
	}
	lat, lng, err := h.Roster.DriverLocation(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lat": lat, "lng": lng})
}

// CreateDriverInput is the admin driver-creation payload.
type CreateDriverInput struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password"`
	Vehicle  string  `json:"vehicle"`
	Phone    string  `json:"phone"`
	Status   string  `json:"status"`
	License  string  `json:"license"`
	Lat      float64 `json:"currentLat"`
	Lng      float64 `json:"currentLng"`
}

// CreateDriver stores a new driver profile.
// POST /api/admin/drivers/create
func (h *Handlers) CreateDriver(c *gin.Context) {
	var input CreateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, fmt.Errorf("%s: %w", err.Error(), models.ErrInvalidInput))
		return
	}

	driver, err := h.Roster.CreateDriver(c.Request.Context(), &models.Driver{
		Name:       input.Name,
		Email:      input.Email,
		Password:   input.Password,
		Vehicle:    input.Vehicle,
		Phone:      input.Phone,
		Status:     input.Status,
		License:    input.License,
		CurrentLat: input.Lat,
		CurrentLng: input.Lng,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, driver)
}

// UpdateDriverStatus sets a driver's availability status.
// POST /api/admin/drivers/update-status?email=...&status=...
func (h *Handlers) UpdateDriverStatus(c *gin.Context) {
	email := c.Query("email")
	status := c.Query("status")
	if email == "" || status == "" {
		respondError(c, fmt.Errorf("email and status are required: %w", models.ErrInvalidInput))
		return
	}
	driver, err := h.Roster.UpdateDriverStatus(c.Request.Context(), email, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver status updated to " + driver.Status})
}

// ResetDrivers deletes every driver profile. Irreversible.
// DELETE /api/admin/drivers/reset
func (h *Handlers) ResetDrivers(c *gin.Context) {
	if err := h.Roster.DeleteAllDrivers(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All drivers have been deleted."})
}

// ResetSystem wipes drivers, orders, and users. Irreversible.
// GET /api/admin/system/reset-all
func (h *Handlers) ResetSystem(c *gin.Context) {
	if err := h.Roster.ResetSystem(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "SYSTEM RESET SUCCESSFUL"})
}

//
// --- Order Management ---
//

// GetAllOrders lists every order.
// GET /api/admin/orders
func (h *Handlers) GetAllOrders(c *gin.Context) {
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

// CreateOrderInput is the admin order-creation payload. Status, driver,
// and price are server-assigned defaults; the client only describes the
// delivery itself.
type CreateOrderInput struct {
	Item     string  `json:"item" binding:"required"`
	Customer string  `json:"customer" binding:"required"`
	Location string  `json:"location"`
	DestLat  float64 `json:"destLat"`
	DestLng  float64 `json:"destLng"`
}

// CreateOrder stores a new order with the creation defaults
// (status=Assigned, driver=Unassigned, price=0).
// POST /api/admin/orders/create
func (h *Handlers) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, fmt.Errorf("%s: %w", err.Error(), models.ErrInvalidInput))
		return
	}

	order, err := h.Lifecycle.CreateOrder(c.Request.Context(), &models.Order{
		Item:     input.Item,
		Customer: input.Customer,
		Location: input.Location,
		DestLat:  input.DestLat,
		DestLng:  input.DestLng,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// AssignDriver assigns a driver to an order and stamps the price.
// POST /api/admin/assign?orderId=...&driverName=...
func (h *Handlers) AssignDriver(c *gin.Context) {
	orderID := c.Query("orderId")
	driverName := c.Query("driverName")
	if orderID == "" || driverName == "" {
		respondError(c, fmt.Errorf("orderId and driverName are required: %w", models.ErrInvalidInput))
		return
	}
	order, err := h.Lifecycle.Assign(c.Request.Context(), orderID, driverName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver Assigned", "order": order})
}
