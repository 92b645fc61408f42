package plan

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myra/internal/application/plan/usecases"
	"myra/internal/shared/logger"
	"myra/internal/shared/utils"
)

type MinisterIssueHandler struct {
	issues *usecases.MinisterIssueUseCases
	logger logger.Interface
}

func NewMinisterIssueHandler(issues *usecases.MinisterIssueUseCases, log logger.Interface) *MinisterIssueHandler {
	return &MinisterIssueHandler{issues: issues, logger: log}
}

func (h *MinisterIssueHandler) CreateIssue(c *gin.Context) {
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

	var req MinisterIssueRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.issues.Create(c.Request.Context(), user, planID, ministerIssueCommand(req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *MinisterIssueHandler) UpdateIssue(c *gin.Context) {
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
	issueID, err := utils.ParseIDParam(c, "issueId", "minister issue id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req MinisterIssueRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.issues.Update(c.Request.Context(), user, planID, issueID, ministerIssueCommand(req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *MinisterIssueHandler) DestroyIssue(c *gin.Context) {
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
	issueID, err := utils.ParseIDParam(c, "issueId", "minister issue id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.issues.Destroy(c.Request.Context(), user, planID, issueID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func ministerIssueCommand(req MinisterIssueRequest) usecases.MinisterIssueCommand {
	return usecases.MinisterIssueCommand{
		IssueTypeID: req.IssueTypeID,
		Detail:      req.Detail,
		Objective:   req.Objective,
		Identified:  req.Identified,
		PastureIDs:  req.Pastures,
	}
}

func (h *MinisterIssueHandler) CreateAction(c *gin.Context) {
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
	issueID, err := utils.ParseIDParam(c, "issueId", "minister issue id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req MinisterIssueActionRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.issues.CreateAction(c.Request.Context(), user, planID, issueID, ministerIssueActionCommand(req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *MinisterIssueHandler) UpdateAction(c *gin.Context) {
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
	issueID, err := utils.ParseIDParam(c, "issueId", "minister issue id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	actionID, err := utils.ParseIDParam(c, "actionId", "minister issue action id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req MinisterIssueActionRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.issues.UpdateAction(c.Request.Context(), user, planID, issueID, actionID, ministerIssueActionCommand(req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *MinisterIssueHandler) DestroyAction(c *gin.Context) {
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
	issueID, err := utils.ParseIDParam(c, "issueId", "minister issue id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	actionID, err := utils.ParseIDParam(c, "actionId", "minister issue action id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.issues.DestroyAction(c.Request.Context(), user, planID, issueID, actionID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func ministerIssueActionCommand(req MinisterIssueActionRequest) usecases.MinisterIssueActionCommand {
	return usecases.MinisterIssueActionCommand{
		ActionTypeID:      req.ActionTypeID,
		Detail:            req.Detail,
		Other:             req.Other,
		NoGrazeStartDay:   req.NoGrazeStartDay,
		NoGrazeStartMonth: req.NoGrazeStartMonth,
		NoGrazeEndDay:     req.NoGrazeEndDay,
		NoGrazeEndMonth:   req.NoGrazeEndMonth,
	}
}
