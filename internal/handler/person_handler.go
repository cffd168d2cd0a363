package handler

import (
	"errors"
	"net/http"

	"anaesthesia-staffing-service/internal/middleware"
	"anaesthesia-staffing-service/internal/repository"
	"anaesthesia-staffing-service/internal/service"
	"anaesthesia-staffing-service/internal/validation"
	"anaesthesia-staffing-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PersonHandler struct {
	staffing *service.StaffingService
}

func NewPersonHandler(staffing *service.StaffingService) *PersonHandler {
	return &PersonHandler{
		staffing: staffing,
	}
}

// ListPeople returns the pages loaded so far, filtered by ?search=
func (h *PersonHandler) ListPeople(c *gin.Context) {
	h.respondPage(c)
}

// LoadMore fetches the next page and returns the extended list. A ?cursor=
// token from a previous response makes the call conditional on that position.
func (h *PersonHandler) LoadMore(c *gin.Context) {
	err := h.staffing.People.LoadMoreAfter(c.Request.Context(), c.Query("cursor"))
	switch {
	case errors.Is(err, repository.ErrInvalidCursor):
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid cursor")
		return
	case errors.Is(err, service.ErrStaleCursor):
		utils.ErrorResponse(c, http.StatusConflict, "The list has changed, reload it and try again")
		return
	case err != nil:
		respondServiceError(c, err, "Failed to load more people")
		return
	}
	h.respondPage(c)
}

func (h *PersonHandler) respondPage(c *gin.Context) {
	rows := h.staffing.PeopleRows(c.Query("search"))
	people := h.staffing.People

	utils.SuccessResponse(c, gin.H{
		"people":   rows,
		"count":    len(rows),
		"has_more": people.HasMore(),
		"cursor":   people.Cursor(),
		"loading":  people.Loading(),
	})
}

// CreatePerson creates a new person with an initial timeline entry (admin only)
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var form validation.PersonForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindError(c, err)
		return
	}

	person, err := h.staffing.People.CreatePerson(c.Request.Context(), form.Person(), middleware.Actor(c))
	if err != nil {
		respondServiceError(c, err, "Failed to add person")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Person created successfully",
		"person":  person,
	})
}

// UpdatePerson writes the provided fields; a hospital or grade change extends the timeline (admin only)
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	var form validation.PersonPatchForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindError(c, err)
		return
	}

	person, err := h.staffing.People.UpdatePerson(c.Request.Context(), c.Param("id"), form.Patch(), middleware.Actor(c))
	if err != nil {
		respondServiceError(c, err, "Failed to update person")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Person updated successfully",
		"person":  person,
	})
}

// DeletePerson removes a person (admin only)
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	if err := h.staffing.People.DeletePerson(c.Request.Context(), c.Param("id"), middleware.Actor(c)); err != nil {
		respondServiceError(c, err, "Failed to delete person")
		return
	}

	utils.MessageResponse(c, "Person deleted successfully")
}
