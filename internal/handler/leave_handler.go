package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/middleware"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/service"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/utils"
)

type LeaveHandler struct {
	leaveService *service.LeaveService
}

func NewLeaveHandler(leaveService *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{
		leaveService: leaveService,
	}
}

type createLeaveRequest struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"`
}

type transitionLeaveRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// GetAllLeaves lists leave requests: doctors see their own, admins see all
func (h *LeaveHandler) GetAllLeaves(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	leaves, err := h.leaveService.ListLeaves(p)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"leaves": leaves,
		"count":  len(leaves),
	})
}

// CreateLeave files a leave request for the calling doctor
func (h *LeaveHandler) CreateLeave(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req createLeaveRequest
	if !bindJSON(c, &req) {
		return
	}

	leave, err := h.leaveService.CreateLeave(p, req.StartDate, req.EndDate, req.Reason)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.CreatedResponse(c, leave)
}

// GetLeave retrieves a specific leave request by ID
func (h *LeaveHandler) GetLeave(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "leave")
	if !ok {
		return
	}

	leave, err := h.leaveService.GetLeaveByID(p, id)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, leave)
}

// TransitionLeave approves or rejects a pending leave request (admin only)
func (h *LeaveHandler) TransitionLeave(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "leave")
	if !ok {
		return
	}

	var req transitionLeaveRequest
	if !bindJSON(c, &req) {
		return
	}

	leave, err := h.leaveService.TransitionLeave(p, id, req.Status)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, leave)
}

// DeleteLeave removes a leave request (admin only)
func (h *LeaveHandler) DeleteLeave(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "leave")
	if !ok {
		return
	}

	if err := h.leaveService.DeleteLeave(p, id); err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Leave request deleted successfully")
}
