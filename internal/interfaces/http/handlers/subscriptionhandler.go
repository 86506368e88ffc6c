package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tcworld/magadmin/internal/application/subscription/dto"
	"github.com/tcworld/magadmin/internal/application/subscription/usecases"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

type SubscriptionHandler struct {
	createUC           createSubscriptionUseCase
	updateUC           updateSubscriptionUseCase
	getUC              getSubscriptionUseCase
	listUC             listSubscriptionsUseCase
	listBySubscriberUC listBySubscriberUseCase
	deleteUC           deleteSubscriptionUseCase
	logger             logger.Interface
}

func NewSubscriptionHandler(
	createUC createSubscriptionUseCase,
	updateUC updateSubscriptionUseCase,
	getUC getSubscriptionUseCase,
	listUC listSubscriptionsUseCase,
	listBySubscriberUC listBySubscriberUseCase,
	deleteUC deleteSubscriptionUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createUC:           createUC,
		updateUC:           updateUC,
		getUC:              getUC,
		listUC:             listUC,
		listBySubscriberUC: listBySubscriberUC,
		deleteUC:           deleteUC,
		logger:             logger,
	}
}

// CreateSubscription records a subscriber taking a plan
// @Summary Create subscription
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body dto.CreateSubscriptionRequest true "Subscription"
// @Success 201 {object} utils.APIResponse{data=dto.SubscriptionDTO}
// @Failure 400 {object} utils.APIResponse
// @Security Bearer
// @Router /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req dto.CreateSubscriptionRequest
	if !bindJSON(c, &req, h.logger, "create subscription") {
		return
	}

	cmd := usecases.CreateSubscriptionCommand{
		ID:            req.ID,
		SubscriberID:  req.Subscriber,
		PlanID:        req.SubscriptionPlan,
		PaymentModeID: req.PaymentMode,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		PaymentStatus: req.PaymentStatus,
		Active:        req.Active,
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription created successfully")
}

// UpdateSubscription applies a partial update
// @Summary Update subscription
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param request body dto.UpdateSubscriptionRequest true "Changes"
// @Success 200 {object} utils.APIResponse{data=dto.SubscriptionDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security Bearer
// @Router /subscriptions/{id} [patch]
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateSubscriptionRequest
	if !bindJSON(c, &req, h.logger, "update subscription") {
		return
	}

	cmd := usecases.UpdateSubscriptionCommand{
		ID:            id,
		SubscriberID:  req.Subscriber,
		PlanID:        req.SubscriptionPlan,
		PaymentModeID: req.PaymentMode,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		PaymentStatus: req.PaymentStatus,
		Active:        req.Active,
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription updated successfully", result)
}

// GetSubscription returns one subscription
// @Summary Get subscription
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} utils.APIResponse{data=dto.SubscriptionDTO}
// @Failure 404 {object} utils.APIResponse
// @Security Bearer
// @Router /subscriptions/{id} [get]
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListSubscriptions pages through subscriptions
// @Summary List subscriptions
// @Tags Subscriptions
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param subscriber query string false "Subscriber ID"
// @Param subscription_plan query string false "Plan ID"
// @Param active query bool false "Active filter"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Security Bearer
// @Router /subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	active, err := utils.QueryBool(c, "active")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)
	query := usecases.ListSubscriptionsQuery{
		Page:         p.Page,
		PageSize:     p.PageSize,
		SubscriberID: c.Query("subscriber"),
		PlanID:       c.Query("subscription_plan"),
		Active:       active,
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListBySubscriber returns every subscription of one subscriber
// @Summary Subscriptions of a subscriber
// @Tags Subscriptions
// @Produce json
// @Param subscriberId path string true "Subscriber ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.SubscriptionDTO}
// @Security Bearer
// @Router /subscriptions/by-subscriber/{subscriberId} [get]
func (h *SubscriptionHandler) ListBySubscriber(c *gin.Context) {
	subscriberID, err := utils.ParseIDParam(c, "subscriberId", "Subscriber")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listBySubscriberUC.Execute(c.Request.Context(), subscriberID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteSubscription removes a subscription
// @Summary Delete subscription
// @Tags Subscriptions
// @Param id path string true "Subscription ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Security Bearer
// @Router /subscriptions/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
