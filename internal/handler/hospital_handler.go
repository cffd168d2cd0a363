package handler

import (
	"anaesthesia-staffing-service/internal/middleware"
	"anaesthesia-staffing-service/internal/service"
	"anaesthesia-staffing-service/internal/validation"
	"anaesthesia-staffing-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	staffing *service.StaffingService
}

func NewHospitalHandler(staffing *service.StaffingService) *HospitalHandler {
	return &HospitalHandler{
		staffing: staffing,
	}
}

// ListHospitals returns the loaded hospitals matching ?search= with their coverage
func (h *HospitalHandler) ListHospitals(c *gin.Context) {
	rows := h.staffing.HospitalRows(c.Query("search"))

	utils.SuccessResponse(c, gin.H{
		"hospitals": rows,
		"count":     len(rows),
		"loading":   h.staffing.Hospitals.Loading(),
	})
}

// CreateHospital creates a new hospital (admin only)
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var form validation.HospitalForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindError(c, err)
		return
	}

	hospital, err := h.staffing.Hospitals.CreateHospital(c.Request.Context(), form.Hospital(), middleware.Actor(c))
	if err != nil {
		respondServiceError(c, err, "Failed to add hospital")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Hospital created successfully",
		"hospital": hospital,
	})
}

// UpdateHospital writes the provided fields of a hospital (admin only)
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	var form validation.HospitalPatchForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindError(c, err)
		return
	}

	hospital, found, err := h.staffing.Hospitals.UpdateHospital(c.Request.Context(), c.Param("id"), form.Patch(), middleware.Actor(c))
	if err != nil {
		respondServiceError(c, err, "Failed to update hospital")
		return
	}

	if !found {
		utils.MessageResponse(c, "Hospital updated successfully")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"message":  "Hospital updated successfully",
		"hospital": hospital,
	})
}

// DeleteHospital removes a hospital (admin only). Assigned people keep the reference.
func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	if err := h.staffing.Hospitals.DeleteHospital(c.Request.Context(), c.Param("id"), middleware.Actor(c)); err != nil {
		respondServiceError(c, err, "Failed to delete hospital")
		return
	}

	utils.MessageResponse(c, "Hospital deleted successfully")
}
