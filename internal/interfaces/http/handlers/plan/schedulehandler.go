package plan

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myra/internal/application/plan/usecases"
	"myra/internal/shared/logger"
	"myra/internal/shared/utils"
)

type GrazingScheduleHandler struct {
	schedules *usecases.GrazingScheduleUseCases
	logger    logger.Interface
}

func NewGrazingScheduleHandler(schedules *usecases.GrazingScheduleUseCases, log logger.Interface) *GrazingScheduleHandler {
	return &GrazingScheduleHandler{schedules: schedules, logger: log}
}

func (h *GrazingScheduleHandler) CreateSchedule(c *gin.Context) {
	user, err := requestingUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	planID, err := utils.ParseIDParam(c, "planId", "plan id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req GrazingScheduleRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.schedules.Create(c.Request.Context(), user, planID, scheduleCommand(req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *GrazingScheduleHandler) UpdateSchedule(c *gin.Context) {
	user, err := requestingUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	planID, err := utils.ParseIDParam(c, "planId", "plan id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	scheduleID, err := utils.ParseIDParam(c, "scheduleId", "grazing schedule id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req GrazingScheduleRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.schedules.Update(c.Request.Context(), user, planID, scheduleID, scheduleCommand(req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *GrazingScheduleHandler) DestroySchedule(c *gin.Context) {
	user, err := requestingUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	planID, err := utils.ParseIDParam(c, "planId", "plan id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	scheduleID, err := utils.ParseIDParam(c, "scheduleId", "grazing schedule id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.schedules.Destroy(c.Request.Context(), user, planID, scheduleID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func scheduleCommand(req GrazingScheduleRequest) usecases.GrazingScheduleCommand {
	cmd := usecases.GrazingScheduleCommand{
		Year:      req.Year,
		Narrative: req.Narrative,
	}
	for _, entry := range req.Entries {
		cmd.Entries = append(cmd.Entries, usecases.GrazingScheduleEntryCommand{
			PastureID:       entry.PastureID,
			LivestockTypeID: entry.LivestockTypeID,
			LivestockCount:  entry.LivestockCount,
			DateIn:          entry.DateIn,
			DateOut:         entry.DateOut,
			GraceDays:       entry.GraceDays,
		})
	}
	return cmd
}
