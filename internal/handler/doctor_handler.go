package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/middleware"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/service"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/utils"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

type createDoctorRequest struct {
	Username       string              `json:"username" binding:"required,min=3,max=150"`
	Email          string              `json:"email" binding:"required,email"`
	Password       string              `json:"password" binding:"required,min=8"`
	Phone          string              `json:"phone" binding:"omitempty,max=20"`
	Address        string              `json:"address"`
	HospitalID     uint                `json:"hospital_id" binding:"required"`
	Specialization string              `json:"specialization" binding:"required,max=100"`
	Qualifications string              `json:"qualifications"`
	Experience     int                 `json:"experience" binding:"min=0"`
	Availability   models.Availability `json:"availability"`
}

type updateDoctorRequest struct {
	HospitalID     *uint               `json:"hospital_id"`
	Specialization *string             `json:"specialization" binding:"omitempty,max=100"`
	Qualifications *string             `json:"qualifications"`
	Experience     *int                `json:"experience" binding:"omitempty,min=0"`
	Availability   models.Availability `json:"availability"`
}

// GetAllDoctors lists all doctors with their hospital assignment
func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	doctors, err := h.doctorService.GetAllDoctors(p)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// GetDoctor retrieves a specific doctor by ID
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "doctor")
	if !ok {
		return
	}

	doctor, err := h.doctorService.GetDoctorByID(p, id)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, doctor)
}

// CreateDoctor creates a doctor account and profile in one step (admin only)
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req createDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	doctor, err := h.doctorService.CreateDoctor(p, service.CreateDoctorInput{
		User: service.RegisterInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			Phone:    req.Phone,
			Address:  req.Address,
		},
		HospitalID:     req.HospitalID,
		Specialization: req.Specialization,
		Qualifications: req.Qualifications,
		Experience:     req.Experience,
		Availability:   req.Availability,
	})
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.CreatedResponse(c, doctor)
}

// UpdateDoctor updates a doctor profile (admin or the doctor themselves)
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "doctor")
	if !ok {
		return
	}

	var req updateDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	doctor, err := h.doctorService.UpdateDoctor(p, id, service.DoctorUpdateInput{
		HospitalID:     req.HospitalID,
		Specialization: req.Specialization,
		Qualifications: req.Qualifications,
		Experience:     req.Experience,
		Availability:   req.Availability,
	})
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, doctor)
}

// DeleteDoctor removes a doctor profile (admin only)
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "doctor")
	if !ok {
		return
	}

	if err := h.doctorService.DeleteDoctor(p, id); err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Doctor deleted successfully")
}
