package plan

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myra/internal/application/plan/usecases"
	"myra/internal/domain/agreement"
	"myra/internal/shared/logger"
	"myra/internal/shared/utils"
)

// PlantCommunityHandler covers plant communities and their nested children:
// indicator plants and plant community actions.
type PlantCommunityHandler struct {
	communities *usecases.PlantCommunityUseCases
	plants      *usecases.IndicatorPlantUseCases
	actions     *usecases.PlantCommunityActionUseCases
	logger      logger.Interface
}

func NewPlantCommunityHandler(communities *usecases.PlantCommunityUseCases, plants *usecases.IndicatorPlantUseCases, actions *usecases.PlantCommunityActionUseCases, log logger.Interface) *PlantCommunityHandler {
	return &PlantCommunityHandler{
		communities: communities,
		plants:      plants,
		actions:     actions,
		logger:      log,
	}
}

// treeParams parses the caller plus the plan/pasture ancestry every nested
// route carries.
func treeParams(c *gin.Context) (agreement.User, uint, uint, error) {
	user, err := requestingUser(c)
	if err != nil {
		return agreement.User{}, 0, 0, err
	}
	planID, err := utils.ParseIDParam(c, "planId", "plan id")
	if err != nil {
		return agreement.User{}, 0, 0, err
	}
	pastureID, err := utils.ParseIDParam(c, "pastureId", "pasture id")
	if err != nil {
		return agreement.User{}, 0, 0, err
	}
	return user, planID, pastureID, nil
}

func (h *PlantCommunityHandler) CreatePlantCommunity(c *gin.Context) {
	user, planID, pastureID, err := treeParams(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PlantCommunityRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.communities.Create(c.Request.Context(), user, planID, pastureID, plantCommunityCommand(req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *PlantCommunityHandler) UpdatePlantCommunity(c *gin.Context) {
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

	var req PlantCommunityRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.communities.Update(c.Request.Context(), user, planID, pastureID, communityID, plantCommunityCommand(req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *PlantCommunityHandler) DestroyPlantCommunity(c *gin.Context) {
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

	if err := h.communities.Destroy(c.Request.Context(), user, planID, pastureID, communityID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func plantCommunityCommand(req PlantCommunityRequest) usecases.PlantCommunityCommand {
	return usecases.PlantCommunityCommand{
		CommunityTypeID: req.CommunityTypeID,
		ElevationID:     req.ElevationID,
		PurposeOfAction: req.PurposeOfAction,
		Name:            req.Name,
		Aspect:          req.Aspect,
		URL:             req.URL,
		Notes:           req.Notes,
		Approved:        req.Approved,
	}
}

func (h *PlantCommunityHandler) CreateIndicatorPlant(c *gin.Context) {
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

	var req IndicatorPlantRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.plants.Create(c.Request.Context(), user, planID, pastureID, communityID, indicatorPlantCommand(req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *PlantCommunityHandler) UpdateIndicatorPlant(c *gin.Context) {
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
	plantID, err := utils.ParseIDParam(c, "plantId", "indicator plant id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req IndicatorPlantRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.plants.Update(c.Request.Context(), user, planID, pastureID, communityID, plantID, indicatorPlantCommand(req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *PlantCommunityHandler) DestroyIndicatorPlant(c *gin.Context) {
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
	plantID, err := utils.ParseIDParam(c, "plantId", "indicator plant id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.plants.Destroy(c.Request.Context(), user, planID, pastureID, communityID, plantID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func indicatorPlantCommand(req IndicatorPlantRequest) usecases.IndicatorPlantCommand {
	return usecases.IndicatorPlantCommand{
		PlantSpeciesID: req.PlantSpeciesID,
		Criteria:       req.Criteria,
		Value:          req.Value,
		Name:           req.Name,
	}
}

func (h *PlantCommunityHandler) CreateAction(c *gin.Context) {
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

	var req PlantCommunityActionRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.actions.Create(c.Request.Context(), user, planID, pastureID, communityID, plantCommunityActionCommand(req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *PlantCommunityHandler) UpdateAction(c *gin.Context) {
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
	actionID, err := utils.ParseIDParam(c, "actionId", "plant community action id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PlantCommunityActionRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.actions.Update(c.Request.Context(), user, planID, pastureID, communityID, actionID, plantCommunityActionCommand(req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

func (h *PlantCommunityHandler) DestroyAction(c *gin.Context) {
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
	actionID, err := utils.ParseIDParam(c, "actionId", "plant community action id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.actions.Destroy(c.Request.Context(), user, planID, pastureID, communityID, actionID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func plantCommunityActionCommand(req PlantCommunityActionRequest) usecases.PlantCommunityActionCommand {
	return usecases.PlantCommunityActionCommand{
		ActionTypeID:      req.ActionTypeID,
		Name:              req.Name,
		Details:           req.Details,
		NoGrazeStartDay:   req.NoGrazeStartDay,
		NoGrazeStartMonth: req.NoGrazeStartMonth,
		NoGrazeEndDay:     req.NoGrazeEndDay,
		NoGrazeEndMonth:   req.NoGrazeEndMonth,
	}
}
