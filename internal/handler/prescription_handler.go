package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/middleware"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/service"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/utils"
)

type PrescriptionHandler struct {
	prescriptionService *service.PrescriptionService
}

func NewPrescriptionHandler(prescriptionService *service.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionService: prescriptionService,
	}
}

type createPrescriptionRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Medication    string `json:"medication" binding:"required"`
	Dosage        string `json:"dosage" binding:"required,max=100"`
	Instructions  string `json:"instructions"`
}

type updatePrescriptionRequest struct {
	Medication   *string `json:"medication"`
	Dosage       *string `json:"dosage" binding:"omitempty,max=100"`
	Instructions *string `json:"instructions"`
}

// GetAllPrescriptions lists the prescriptions visible to the caller
func (h *PrescriptionHandler) GetAllPrescriptions(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	prescriptions, err := h.prescriptionService.ListPrescriptions(p)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"prescriptions": prescriptions,
		"count":         len(prescriptions),
	})
}

// CreatePrescription issues a prescription against an appointment the
// calling doctor owns
func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req createPrescriptionRequest
	if !bindJSON(c, &req) {
		return
	}

	prescription, err := h.prescriptionService.CreatePrescription(p, req.AppointmentID, req.Medication, req.Dosage, req.Instructions)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.CreatedResponse(c, prescription)
}

// GetPrescription retrieves a specific prescription by ID
func (h *PrescriptionHandler) GetPrescription(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "prescription")
	if !ok {
		return
	}

	prescription, err := h.prescriptionService.GetPrescriptionByID(p, id)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, prescription)
}

// UpdatePrescription modifies a prescription's medication details
func (h *PrescriptionHandler) UpdatePrescription(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "prescription")
	if !ok {
		return
	}

	var req updatePrescriptionRequest
	if !bindJSON(c, &req) {
		return
	}

	prescription, err := h.prescriptionService.UpdatePrescription(p, id, service.PrescriptionInput{
		Medication:   req.Medication,
		Dosage:       req.Dosage,
		Instructions: req.Instructions,
	})
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, prescription)
}

// DeletePrescription removes a prescription
func (h *PrescriptionHandler) DeletePrescription(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "prescription")
	if !ok {
		return
	}

	if err := h.prescriptionService.DeletePrescription(p, id); err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Prescription deleted successfully")
}
