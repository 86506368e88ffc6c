package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tcworld/magadmin/internal/application/plan/dto"
	"github.com/tcworld/magadmin/internal/application/plan/usecases"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC createPlanUseCase
	updatePlanUC updatePlanUseCase
	getPlanUC    getPlanUseCase
	listPlansUC  listPlansUseCase
	deletePlanUC deletePlanUseCase
	logger       logger.Interface
}

func NewPlanHandler(
	createPlanUC createPlanUseCase,
	updatePlanUC updatePlanUseCase,
	getPlanUC getPlanUseCase,
	listPlansUC listPlansUseCase,
	deletePlanUC deletePlanUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC: createPlanUC,
		updatePlanUC: updatePlanUC,
		getPlanUC:    getPlanUC,
		listPlansUC:  listPlansUC,
		deletePlanUC: deletePlanUC,
		logger:       logger,
	}
}

// CreatePlan creates a subscription plan; the version is derived from the
// price history of its language and mode.
// @Summary Create plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body dto.CreatePlanRequest true "Plan"
// @Success 201 {object} utils.APIResponse{data=dto.PlanDTO}
// @Failure 400 {object} utils.APIResponse
// @Security Bearer
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req dto.CreatePlanRequest
	if !bindJSON(c, &req, h.logger, "create plan") {
		return
	}

	cmd := usecases.CreatePlanCommand{
		ID:               req.ID,
		Version:          req.Version,
		Name:             req.Name,
		StartDate:        req.StartDate,
		Price:            req.SubscriptionPrice,
		LanguageID:       req.SubscriptionLanguage,
		ModeID:           req.SubscriptionMode,
		DurationInMonths: req.DurationInMonths,
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

// UpdatePlan applies a partial update
// @Summary Update plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param request body dto.UpdatePlanRequest true "Changes"
// @Success 200 {object} utils.APIResponse{data=dto.PlanDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security Bearer
// @Router /plans/{id} [patch]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id", "Plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdatePlanRequest
	if !bindJSON(c, &req, h.logger, "update plan") {
		return
	}

	cmd := usecases.UpdatePlanCommand{
		ID:               planID,
		Name:             req.Name,
		StartDate:        req.StartDate,
		Price:            req.SubscriptionPrice,
		LanguageID:       req.SubscriptionLanguage,
		ModeID:           req.SubscriptionMode,
		DurationInMonths: req.DurationInMonths,
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

// GetPlan returns one plan
// @Summary Get plan
// @Tags Plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=dto.PlanDTO}
// @Failure 404 {object} utils.APIResponse
// @Security Bearer
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id", "Plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlanUC.Execute(c.Request.Context(), planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPlans pages through plans
// @Summary List plans
// @Tags Plans
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param language query string false "Language ID"
// @Param mode query string false "Mode ID"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Security Bearer
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	p := utils.ParsePagination(c)
	query := usecases.ListPlansQuery{
		Page:       p.Page,
		PageSize:   p.PageSize,
		LanguageID: c.Query("language"),
		ModeID:     c.Query("mode"),
	}

	result, err := h.listPlansUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// DeletePlan removes a plan no subscription refers to
// @Summary Delete plan
// @Tags Plans
// @Param id path string true "Plan ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security Bearer
// @Router /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id", "Plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePlanUC.Execute(c.Request.Context(), planID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
