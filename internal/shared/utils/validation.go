package utils

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"myra/internal/shared/errors"
)

// BindJSON binds the request body into obj and converts binding failures into
// validation errors naming the offending fields, so clients see which
// required field they dropped rather than a generic parse error.
func BindJSON(c *gin.Context, obj interface{}) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return errors.NewValidationError(
			fmt.Sprintf("required fields missing or invalid: %s", strings.Join(fields, ", ")),
		)
	}

	return errors.NewValidationError("invalid request body")
}
