package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/middleware"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/service"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/utils"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

type createAppointmentRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Time     string `json:"time" binding:"required,datetime=15:04"`
}

type updateAppointmentRequest struct {
	Date   *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time   *string `json:"time" binding:"omitempty,datetime=15:04"`
	Status *string `json:"status" binding:"omitempty,oneof=booked completed cancelled"`
}

// GetAllAppointments lists the appointments visible to the caller
func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	appointments, err := h.appointmentService.ListAppointments(p)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// CreateAppointment books an appointment with a doctor (patient only)
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req createAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(p, req.DoctorID, req.Date, req.Time)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.CreatedResponse(c, appointment)
}

// GetAppointment retrieves a specific appointment by ID
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "appointment")
	if !ok {
		return
	}

	appointment, err := h.appointmentService.GetAppointmentByID(p, id)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, appointment)
}

// UpdateAppointment reschedules or changes the status of an appointment
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "appointment")
	if !ok {
		return
	}

	var req updateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	appointment, err := h.appointmentService.UpdateAppointment(p, id, service.AppointmentUpdateInput{
		Date:   req.Date,
		Time:   req.Time,
		Status: req.Status,
	})
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, appointment)
}

// DeleteAppointment cancels and removes an appointment
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "appointment")
	if !ok {
		return
	}

	if err := h.appointmentService.DeleteAppointment(p, id); err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Appointment deleted successfully")
}
