package handler

import (
	"errors"
	"net/http"

	"anaesthesia-staffing-service/internal/service"
	"anaesthesia-staffing-service/internal/validation"
	"anaesthesia-staffing-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondBindError answers a request whose body failed to bind or validate
func respondBindError(c *gin.Context, err error) {
	var verr *validation.ValidationError
	if errors.As(validation.Translate(err), &verr) {
		utils.ValidationErrorResponse(c, verr.Fields)
		return
	}
	utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
}

// respondServiceError maps a service failure to a status: 404 for an unknown
// record, 500 otherwise. message is used for the 500 case.
func respondServiceError(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	if service.IsNotFound(err) {
		utils.ErrorResponse(c, http.StatusNotFound, "Record not found")
		return
	}
	utils.ErrorResponse(c, http.StatusInternalServerError, message)
}
