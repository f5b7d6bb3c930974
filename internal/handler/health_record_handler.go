package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/middleware"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/service"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/utils"
)

type HealthRecordHandler struct {
	recordService *service.HealthRecordService
}

func NewHealthRecordHandler(recordService *service.HealthRecordService) *HealthRecordHandler {
	return &HealthRecordHandler{
		recordService: recordService,
	}
}

type createHealthRecordRequest struct {
	PatientID     uint   `json:"patient_id" binding:"required"`
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Diagnosis     string `json:"diagnosis" binding:"required"`
	Treatment     string `json:"treatment"`
}

type updateHealthRecordRequest struct {
	Diagnosis *string `json:"diagnosis"`
	Treatment *string `json:"treatment"`
}

// GetAllHealthRecords lists the health records visible to the caller
func (h *HealthRecordHandler) GetAllHealthRecords(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	records, err := h.recordService.ListHealthRecords(p)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"health_records": records,
		"count":          len(records),
	})
}

// CreateHealthRecord files a record against an appointment the calling
// doctor owns
func (h *HealthRecordHandler) CreateHealthRecord(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req createHealthRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.recordService.CreateHealthRecord(p, req.PatientID, req.AppointmentID, req.Diagnosis, req.Treatment)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.CreatedResponse(c, record)
}

// GetHealthRecord retrieves a specific health record by ID
func (h *HealthRecordHandler) GetHealthRecord(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "health record")
	if !ok {
		return
	}

	record, err := h.recordService.GetHealthRecordByID(p, id)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, record)
}

// UpdateHealthRecord modifies a record's diagnosis or treatment
func (h *HealthRecordHandler) UpdateHealthRecord(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "health record")
	if !ok {
		return
	}

	var req updateHealthRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.recordService.UpdateHealthRecord(p, id, service.HealthRecordInput{
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
	})
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, record)
}

// DeleteHealthRecord removes a health record
func (h *HealthRecordHandler) DeleteHealthRecord(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "health record")
	if !ok {
		return
	}

	if err := h.recordService.DeleteHealthRecord(p, id); err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Health record deleted successfully")
}
