package plan

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myra/internal/application/plan/usecases"
	"myra/internal/shared/logger"
	"myra/internal/shared/utils"
)

type PastureHandler struct {
	pastures *usecases.PastureUseCases
	logger   logger.Interface
}

func NewPastureHandler(pastures *usecases.PastureUseCases, log logger.Interface) *PastureHandler {
	return &PastureHandler{pastures: pastures, logger: log}
}

func (h *PastureHandler) CreatePasture(c *gin.Context) {
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

	var req PastureRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.pastures.Create(c.Request.Context(), user, planID, usecases.PastureCommand{
		Name:         req.Name,
		AllowableAUM: req.AllowableAUM,
		GraceDays:    req.GraceDays,
		PldPercent:   req.PldPercent,
		Notes:        req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *PastureHandler) UpdatePasture(c *gin.Context) {
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
	pastureID, err := utils.ParseIDParam(c, "pastureId", "pasture id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PastureRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.pastures.Update(c.Request.Context(), user, planID, pastureID, usecases.PastureCommand{
		Name:         req.Name,
		AllowableAUM: req.AllowableAUM,
		GraceDays:    req.GraceDays,
		PldPercent:   req.PldPercent,
		Notes:        req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *PastureHandler) DestroyPasture(c *gin.Context) {
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
	pastureID, err := utils.ParseIDParam(c, "pastureId", "pasture id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.pastures.Destroy(c.Request.Context(), user, planID, pastureID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
