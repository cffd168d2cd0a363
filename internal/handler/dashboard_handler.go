package handler

import (
	"io"
	"net/http"

	"anaesthesia-staffing-service/internal/service"
	"anaesthesia-staffing-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

// eventBuffer is the per-client backlog; a client further behind misses events
const eventBuffer = 16

type DashboardHandler struct {
	staffing *service.StaffingService
}

func NewDashboardHandler(staffing *service.StaffingService) *DashboardHandler {
	return &DashboardHandler{
		staffing: staffing,
	}
}

// GetDashboard returns system totals and the first hospitals with their status
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	utils.SuccessResponse(c, h.staffing.Dashboard())
}

// Refresh reloads hospitals and the first page of people from the store
func (h *DashboardHandler) Refresh(c *gin.Context) {
	if err := h.staffing.Refresh(c.Request.Context()); err != nil {
		_ = c.Error(err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to refresh data")
		return
	}

	utils.MessageResponse(c, "Data refreshed successfully")
}

// Events streams change events as server-sent events until the client disconnects
func (h *DashboardHandler) Events(c *gin.Context) {
	events, cancel := h.staffing.Subscribe(eventBuffer)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case e, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(e.Kind), e)
			return true
		}
	})
}

// GetReports is not available yet
func (h *DashboardHandler) GetReports(c *gin.Context) {
	utils.ErrorResponse(c, http.StatusNotImplemented, "Reports are not available yet")
}

func (h *DashboardHandler) Health(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"status":  "healthy",
		"service": "anaesthesia-staffing-service",
	})
}
