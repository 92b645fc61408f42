package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"myra/internal/shared/constants"
	"myra/internal/shared/errors"
)

// ParseIDParam parses a numeric URL path parameter. Every externally visible
// id in this API is a canonical id, never a storage primary key.
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(fmt.Sprintf("%s must be provided in path", entityName))
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s: %q", entityName, raw))
	}

	return uint(id), nil
}

// RequestingUser captures the authenticated caller placed into the gin
// context by the auth middleware.
type RequestingUser struct {
	ID   uint
	Role string
}

// UserFromContext extracts the requesting user set by the auth middleware.
func UserFromContext(c *gin.Context) (RequestingUser, error) {
	rawID, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return RequestingUser{}, errors.WithCode("user not authenticated", 401)
	}

	id, ok := rawID.(uint)
	if !ok || id == 0 {
		return RequestingUser{}, errors.WithCode("user not authenticated", 401)
	}

	return RequestingUser{
		ID:   id,
		Role: c.GetString(constants.ContextKeyUserRole),
	}, nil
}
