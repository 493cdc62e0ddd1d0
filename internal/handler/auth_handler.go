package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AliJone/Gaza/internal/service"
	"github.com/AliJone/Gaza/internal/utils"
)

// AuthHandler handles moderator authentication and account creation.
type AuthHandler struct {
	authService *service.AdminAuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AdminAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login verifies moderator credentials and returns a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		utils.Error(c, 401, "INVALID_CREDENTIALS", err.Error())
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{
		"token": token,
	})
}

// CreateUser provisions another moderator account. Only reachable
// behind the JWT middleware.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Name     string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.authService.CreateAdmin(req.Email, req.Password, req.Name); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create moderator account")
		return
	}

	utils.Success(c, 201, "Moderator account created", gin.H{
		"email": req.Email,
	})
}
