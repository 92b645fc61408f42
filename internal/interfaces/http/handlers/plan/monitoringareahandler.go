package plan

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myra/internal/application/plan/usecases"
	"myra/internal/shared/logger"
	"myra/internal/shared/utils"
)

type MonitoringAreaHandler struct {
	areas  *usecases.MonitoringAreaUseCases
	logger logger.Interface
}

func NewMonitoringAreaHandler(areas *usecases.MonitoringAreaUseCases, log logger.Interface) *MonitoringAreaHandler {
	return &MonitoringAreaHandler{areas: areas, logger: log}
}

func (h *MonitoringAreaHandler) CreateMonitoringArea(c *gin.Context) {
	user, planID, pastureID, err := treeParams(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	communityID, err := utils.ParseIDParam(c, "communityId", "plant community id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req MonitoringAreaRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.areas.Create(c.Request.Context(), user, planID, pastureID, communityID, monitoringAreaCommand(req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *MonitoringAreaHandler) UpdateMonitoringArea(c *gin.Context) {
	user, planID, pastureID, err := treeParams(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	communityID, err := utils.ParseIDParam(c, "communityId", "plant community id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	areaID, err := utils.ParseIDParam(c, "areaId", "monitoring area id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req MonitoringAreaRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.areas.Update(c.Request.Context(), user, planID, pastureID, communityID, areaID, monitoringAreaCommand(req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *MonitoringAreaHandler) DestroyMonitoringArea(c *gin.Context) {
	user, planID, pastureID, err := treeParams(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	communityID, err := utils.ParseIDParam(c, "communityId", "plant community id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	areaID, err := utils.ParseIDParam(c, "areaId", "monitoring area id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.areas.Destroy(c.Request.Context(), user, planID, pastureID, communityID, areaID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func monitoringAreaCommand(req MonitoringAreaRequest) usecases.MonitoringAreaCommand {
	return usecases.MonitoringAreaCommand{
		Name:              req.Name,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		RangelandHealthID: req.RangelandHealthID,
		TransectAzimuth:   req.TransectAzimuth,
		Location:          req.Location,
		OtherPurpose:      req.OtherPurpose,
		PurposeTypeIDs:    req.PurposeTypeIDs,
	}
}
