// Package zone exposes range-zone administration endpoints.
package zone

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"myra/internal/application/zone/usecases"
	apperrors "myra/internal/shared/errors"
	"myra/internal/shared/logger"
	"myra/internal/shared/utils"
)

type ZoneHandler struct {
	zones  *usecases.ZoneUseCases
	logger logger.Interface
}

func NewZoneHandler(zones *usecases.ZoneUseCases, log logger.Interface) *ZoneHandler {
	return &ZoneHandler{zones: zones, logger: log}
}

// ListZones returns all zones, optionally filtered by ?districtId=.
func (h *ZoneHandler) ListZones(c *gin.Context) {
	var districtID *uint
	if raw := c.Query("districtId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, apperrors.NewValidationError("districtId must be a positive integer"))
			return
		}
		id := uint(parsed)
		districtID = &id
	}

	views, err := h.zones.List(c.Request.Context(), districtID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, views)
}

type assignUserRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

func (h *ZoneHandler) AssignUser(c *gin.Context) {
	zoneID, err := utils.ParseIDParam(c, "zoneId", "zone id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req assignUserRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.zones.AssignUser(c.Request.Context(), zoneID, req.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}
