package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdelivery/smartdelivery-golang/internal/auth"
	"github.com/smartdelivery/smartdelivery-golang/internal/models"
)

//
// --- Auth ---
//

// RegisterInput is the registration payload.
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Vehicle  string `json:"vehicle"`
	Phone    string `json:"phone"`
}

// Register creates a User and, for the DRIVER role, the mirrored Driver
// profile.
// POST /api/auth/register
func (h *Handlers) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, fmt.Errorf("%s: %w", err.Error(), models.ErrInvalidInput))
		return
	}

	user, err := h.Accounts.Register(c.Request.Context(), &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
		Vehicle:  input.Vehicle,
		Phone:    input.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Registration Successful!",
		"user":    user,
	})
}

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials and returns the account identity plus a signed
// token. Bad credentials always come back as the same 401.
// POST /api/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, fmt.Errorf("%s: %w", err.Error(), models.ErrInvalidInput))
		return
	}

	user, err := h.Accounts.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status": "error",
				"code":   "INVALID_INPUT",
				"error":  "Invalid Credentials",
			})
			return
		}
		respondError(c, err)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, auth.Claims{
		UserID: user.ID,
		Role:   user.Role,
		Name:   user.Name,
		Email:  user.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"role":   user.Role,
		"name":   user.Name,
		"id":     user.ID,
		"email":  user.Email,
		"token":  token,
	})
}

// ForgotPassword issues a reset key for the account. The key is printed to
// the server console, never emailed; that is the system's out-of-band
// delivery channel.
// POST /api/auth/forgot-password?email=...
func (h *Handlers) ForgotPassword(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		respondError(c, fmt.Errorf("email is required: %w", models.ErrInvalidInput))
		return
	}

	key, err := h.Accounts.ForgotPassword(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("PASSWORD RESET REQUEST email=%s key=%s", email, key)
	c.JSON(http.StatusOK, gin.H{"message": "Key generated! Check console."})
}

// ResetPasswordInput is the reset-password payload.
type ResetPasswordInput struct {
	Email       string `json:"email" binding:"required"`
	Key         string `json:"key" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ResetPassword redeems a reset key and updates the User password plus the
// mirrored Driver password, if present.
// POST /api/auth/reset-password
func (h *Handlers) ResetPassword(c *gin.Context) {
	var input ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, fmt.Errorf("%s: %w", err.Error(), models.ErrInvalidInput))
		return
	}

	if err := h.Accounts.ResetPassword(c.Request.Context(), input.Email, input.Key, input.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password Reset Successfully!"})
}
