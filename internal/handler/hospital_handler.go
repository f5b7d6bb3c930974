package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/middleware"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/service"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/utils"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
}

func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

type hospitalRequest struct {
	Name      string  `json:"name" binding:"required,max=200"`
	Address   string  `json:"address" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
	Contact   string  `json:"contact" binding:"omitempty,max=20"`
}

// GetAllHospitals lists hospitals. When lat and lon query parameters are
// present, only hospitals within the proximity radius are returned.
func (h *HospitalHandler) GetAllHospitals(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	lat, ok := coordQuery(c, "lat")
	if !ok {
		return
	}
	lon, ok := coordQuery(c, "lon")
	if !ok {
		return
	}
	if (lat == nil) != (lon == nil) {
		utils.FailResponse(c, apperr.ValidationField("lat", "lat and lon must be provided together"))
		return
	}

	hospitals, err := h.hospitalService.GetAllHospitals(p, lat, lon)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// GetHospital retrieves a specific hospital by ID
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "hospital")
	if !ok {
		return
	}

	hospital, err := h.hospitalService.GetHospitalByID(p, id)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, hospital)
}

// CreateHospital creates a new hospital (admin only)
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req hospitalRequest
	if !bindJSON(c, &req) {
		return
	}

	hospital, err := h.hospitalService.CreateHospital(p, service.HospitalInput{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Contact:   req.Contact,
	})
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.CreatedResponse(c, hospital)
}

// UpdateHospital updates an existing hospital (admin only)
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "hospital")
	if !ok {
		return
	}

	var req hospitalRequest
	if !bindJSON(c, &req) {
		return
	}

	hospital, err := h.hospitalService.UpdateHospital(p, id, service.HospitalInput{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Contact:   req.Contact,
	})
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, hospital)
}

// DeleteHospital removes a hospital (admin only)
func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := pathID(c, "hospital")
	if !ok {
		return
	}

	if err := h.hospitalService.DeleteHospital(p, id); err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Hospital deleted successfully")
}

// coordQuery parses an optional float query parameter, writing the error
// response when the value is present but malformed
func coordQuery(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		utils.FailResponse(c, apperr.ValidationField(name, "must be a number"))
		return nil, false
	}
	return &v, true
}
