package plan

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myra/internal/application/plan/usecases"
	"myra/internal/shared/logger"
	"myra/internal/shared/utils"
)

// PlanExtrasHandler serves additional requirements and management
// considerations, the two flat plan-level collections.
type PlanExtrasHandler struct {
	extras *usecases.PlanExtrasUseCases
	logger logger.Interface
}

func NewPlanExtrasHandler(extras *usecases.PlanExtrasUseCases, log logger.Interface) *PlanExtrasHandler {
	return &PlanExtrasHandler{extras: extras, logger: log}
}

func (h *PlanExtrasHandler) CreateAdditionalRequirement(c *gin.Context) {
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

	var req AdditionalRequirementRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.extras.CreateRequirement(c.Request.Context(), user, planID, usecases.AdditionalRequirementCommand{
		CategoryID: req.CategoryID,
		Detail:     req.Detail,
		URL:        req.URL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *PlanExtrasHandler) UpdateAdditionalRequirement(c *gin.Context) {
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
	requirementID, err := utils.ParseIDParam(c, "requirementId", "additional requirement id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AdditionalRequirementRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.extras.UpdateRequirement(c.Request.Context(), user, planID, requirementID, usecases.AdditionalRequirementCommand{
		CategoryID: req.CategoryID,
		Detail:     req.Detail,
		URL:        req.URL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *PlanExtrasHandler) DestroyAdditionalRequirement(c *gin.Context) {
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
	requirementID, err := utils.ParseIDParam(c, "requirementId", "additional requirement id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.extras.DestroyRequirement(c.Request.Context(), user, planID, requirementID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *PlanExtrasHandler) CreateManagementConsideration(c *gin.Context) {
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

	var req ManagementConsiderationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.extras.CreateConsideration(c.Request.Context(), user, planID, usecases.ManagementConsiderationCommand{
		ConsiderationTypeID: req.ConsiderationTypeID,
		Detail:              req.Detail,
		URL:                 req.URL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *PlanExtrasHandler) UpdateManagementConsideration(c *gin.Context) {
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
	considerationID, err := utils.ParseIDParam(c, "considerationId", "management consideration id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ManagementConsiderationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.extras.UpdateConsideration(c.Request.Context(), user, planID, considerationID, usecases.ManagementConsiderationCommand{
		ConsiderationTypeID: req.ConsiderationTypeID,
		Detail:              req.Detail,
		URL:                 req.URL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *PlanExtrasHandler) DestroyManagementConsideration(c *gin.Context) {
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
	considerationID, err := utils.ParseIDParam(c, "considerationId", "management consideration id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.extras.DestroyConsideration(c.Request.Context(), user, planID, considerationID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
