package plan

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myra/internal/application/plan/usecases"
	"myra/internal/domain/agreement"
	"myra/internal/shared/logger"
	"myra/internal/shared/utils"
)

type PlanHandler struct {
	plans  *usecases.PlanUseCases
	logger logger.Interface
}

func NewPlanHandler(plans *usecases.PlanUseCases, log logger.Interface) *PlanHandler {
	return &PlanHandler{plans: plans, logger: log}
}

// requestingUser extracts the authenticated caller as the access check
// expects it.
func requestingUser(c *gin.Context) (agreement.User, error) {
	u, err := utils.UserFromContext(c)
	if err != nil {
		return agreement.User{}, err
	}
	return agreement.User{ID: u.ID, Role: u.Role}, nil
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
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

	view, err := h.plans.Get(c.Request.Context(), user, planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	user, err := requestingUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreatePlanRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.plans.Create(c.Request.Context(), user, usecases.CreatePlanCommand{
		AgreementID:     req.AgreementID,
		RangeName:       req.RangeName,
		AltBusinessName: req.AltBusinessName,
		PlanStartDate:   req.PlanStartDate,
		PlanEndDate:     req.PlanEndDate,
		Notes:           req.Notes,
		StatusID:        req.StatusID,
		ExtensionID:     req.ExtensionID,
		AmendmentTypeID: req.AmendmentTypeID,
		Uploaded:        req.Uploaded,
		StaffInitiated:  req.StaffInitiated,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
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

	var req UpdatePlanRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.plans.Update(c.Request.Context(), user, planID, usecases.UpdatePlanCommand{
		RangeName:       req.RangeName,
		AltBusinessName: req.AltBusinessName,
		PlanStartDate:   req.PlanStartDate,
		PlanEndDate:     req.PlanEndDate,
		Notes:           req.Notes,
		ExtensionID:     req.ExtensionID,
		AmendmentTypeID: req.AmendmentTypeID,
		Uploaded:        req.Uploaded,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *PlanHandler) UpdatePlanStatus(c *gin.Context) {
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

	var req UpdatePlanStatusRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.plans.UpdateStatus(c.Request.Context(), user, planID, req.StatusID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

// CreateVersion archives the current version and installs a fresh copy as
// the new current version of the same plan.
func (h *PlanHandler) CreateVersion(c *gin.Context) {
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

	view, err := h.plans.CreateVersion(c.Request.Context(), user, planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

// CopyPlan deep-copies the plan into a brand new plan.
func (h *PlanHandler) CopyPlan(c *gin.Context) {
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

	// the body is optional; an empty body copies within the same agreement
	var req CopyPlanRequest
	if c.Request.ContentLength > 0 {
		if err := utils.BindJSON(c, &req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	view, err := h.plans.Copy(c.Request.Context(), user, planID, usecases.CopyPlanCommand{
		AgreementID: req.AgreementID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}
