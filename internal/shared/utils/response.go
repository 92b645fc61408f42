package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myra/internal/shared/errors"
)

// ErrorBody is the wire shape for every error the API reports.
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse sends an error response with the given status code and message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Status: statusCode, Message: message})
}

// ErrorResponseWithError maps an error value to the {status, message} wire
// shape. AppError values carry their own status code; anything else is
// reported as a 500 without exposing internal details.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{Status: appErr.Code, Message: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{
		Status:  http.StatusInternalServerError,
		Message: "internal server error",
	})
}

// JSONResponse sends a successful response carrying the entity payload as-is.
// Callers are responsible for externalizing ids before reaching this point.
func JSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// NoContentResponse completes a destroy operation.
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
