package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/middleware"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/service"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/utils"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type profileRequest struct {
	Username     *string `json:"username" binding:"omitempty,min=3,max=150"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone" binding:"omitempty,max=20"`
	Address      *string `json:"address"`
	ProfilePhoto *string `json:"profile_photo"`
	Role         *string `json:"role"`
}

type doctorProfileRequest struct {
	HospitalID     *uint               `json:"hospital_id"`
	Specialization *string             `json:"specialization"`
	Qualifications *string             `json:"qualifications"`
	Experience     *int                `json:"experience" binding:"omitempty,min=0"`
	Availability   models.Availability `json:"availability"`
}

type updateProfileRequest struct {
	profileRequest
	Doctor *doctorProfileRequest `json:"doctor"`
}

// GetAllUsers lists every account (admin only)
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	users, err := h.userService.GetAllUsers(p)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"users": users,
		"count": len(users),
	})
}

// GetAuditLogs lists the most recent audit entries (admin only). An optional
// limit query parameter caps the page size.
func (h *UserHandler) GetAuditLogs(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.FailResponse(c, apperr.ValidationField("limit", "must be an integer"))
			return
		}
		limit = parsed
	}

	logs, err := h.userService.GetAuditLogs(p, limit)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"audit_logs": logs,
		"count":      len(logs),
	})
}

// GetUser retrieves one account by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(p, id)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, user)
}

// UpdateUser updates an account's profile fields by ID
func (h *UserHandler) UpdateUser(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	var req profileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(p, id, profileInput(req))
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, user)
}

// GetProfile returns the caller's own profile. Doctors get their extended
// profile alongside the account.
func (h *UserHandler) GetProfile(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := h.userService.GetOwnProfile(p)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, profile)
}

// UpdateProfile updates the caller's own profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req updateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	var doctorIn *service.DoctorProfileInput
	if req.Doctor != nil {
		doctorIn = &service.DoctorProfileInput{
			HospitalID:     req.Doctor.HospitalID,
			Specialization: req.Doctor.Specialization,
			Qualifications: req.Doctor.Qualifications,
			Experience:     req.Doctor.Experience,
			Availability:   req.Doctor.Availability,
		}
	}

	profile, err := h.userService.UpdateOwnProfile(p, profileInput(req.profileRequest), doctorIn)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, profile)
}

func profileInput(req profileRequest) service.ProfileInput {
	return service.ProfileInput{
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		ProfilePhoto: req.ProfilePhoto,
		Role:         req.Role,
	}
}
