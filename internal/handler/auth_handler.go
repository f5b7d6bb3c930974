package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/service"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type registerRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=150"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Role         string `json:"role" binding:"required,oneof=patient doctor admin"`
	Phone        string `json:"phone" binding:"omitempty,max=20"`
	Address      string `json:"address"`
	ProfilePhoto string `json:"profile_photo"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Register creates a new user account
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(service.RegisterInput{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		Phone:        req.Phone,
		Address:      req.Address,
		ProfilePhoto: req.ProfilePhoto,
	})
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.CreatedResponse(c, user)
}

// Login authenticates a user and returns an access/refresh token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

// Refresh rotates a refresh token and issues a fresh token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

// Logout revokes the presented refresh token
func (h *AuthHandler) Logout(c *gin.Context) {
	var req refreshRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Logged out successfully")
}
