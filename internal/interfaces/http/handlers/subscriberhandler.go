package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tcworld/magadmin/internal/application/subscriber/dto"
	"github.com/tcworld/magadmin/internal/application/subscriber/usecases"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/shared/constants"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

type SubscriberHandler struct {
	createUC   createSubscriberUseCase
	updateUC   updateSubscriberUseCase
	getUC      getSubscriberUseCase
	listUC     listSubscribersUseCase
	deleteUC   subscriberLifecycleUseCase
	activateUC subscriberLifecycleUseCase
	reportUC   subscriberReportUseCase
	logger     logger.Interface
}

func NewSubscriberHandler(
	createUC createSubscriberUseCase,
	updateUC updateSubscriberUseCase,
	getUC getSubscriberUseCase,
	listUC listSubscribersUseCase,
	deleteUC subscriberLifecycleUseCase,
	activateUC subscriberLifecycleUseCase,
	reportUC subscriberReportUseCase,
	logger logger.Interface,
) *SubscriberHandler {
	return &SubscriberHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		getUC:      getUC,
		listUC:     listUC,
		deleteUC:   deleteUC,
		activateUC: activateUC,
		reportUC:   reportUC,
		logger:     logger,
	}
}

// CreateSubscriber creates a subscriber
// @Summary Create subscriber
// @Tags Subscribers
// @Accept json
// @Produce json
// @Param request body dto.CreateSubscriberRequest true "Subscriber"
// @Success 201 {object} utils.APIResponse{data=dto.SubscriberDTO}
// @Failure 400 {object} utils.APIResponse
// @Security Bearer
// @Router /subscribers [post]
func (h *SubscriberHandler) CreateSubscriber(c *gin.Context) {
	var req dto.CreateSubscriberRequest
	if !bindJSON(c, &req, h.logger, "create subscriber") {
		return
	}

	cmd := usecases.CreateSubscriberCommand{
		ID:                 req.ID,
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Address:            req.Address,
		CityTown:           req.CityTown,
		District:           req.District,
		State:              req.State,
		Pincode:            req.Pincode,
		Phone:              req.Phone,
		Email:              req.Email,
		CategoryID:         req.Category,
		TypeID:             req.Stype,
		Notes:              req.Notes,
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscriber created successfully")
}

// UpdateSubscriber applies a partial update
// @Summary Update subscriber
// @Tags Subscribers
// @Accept json
// @Produce json
// @Param id path string true "Subscriber ID"
// @Param request body dto.UpdateSubscriberRequest true "Changes"
// @Success 200 {object} utils.APIResponse{data=dto.SubscriberDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security Bearer
// @Router /subscribers/{id} [patch]
func (h *SubscriberHandler) UpdateSubscriber(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Subscriber")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateSubscriberRequest
	if !bindJSON(c, &req, h.logger, "update subscriber") {
		return
	}

	cmd := usecases.UpdateSubscriberCommand{
		ID: id,
		Changes: subscriber.Changes{
			Name:               req.Name,
			RegistrationNumber: req.RegistrationNumber,
			Address:            req.Address,
			CityTown:           req.CityTown,
			District:           req.District,
			State:              req.State,
			Pincode:            req.Pincode,
			Phone:              req.Phone,
			Email:              req.Email,
			CategoryID:         req.Category,
			TypeID:             req.Stype,
			Notes:              req.Notes,
		},
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscriber updated successfully", result)
}

// GetSubscriber returns the subscriber with its subscriptions
// @Summary Get subscriber
// @Tags Subscribers
// @Produce json
// @Param id path string true "Subscriber ID"
// @Success 200 {object} utils.APIResponse{data=dto.SubscriberDTO}
// @Failure 404 {object} utils.APIResponse
// @Security Bearer
// @Router /subscribers/{id} [get]
func (h *SubscriberHandler) GetSubscriber(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Subscriber")
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

// ListSubscribers pages through subscribers
// @Summary List subscribers
// @Tags Subscribers
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param is_deleted query bool false "Lifecycle filter"
// @Param category query string false "Category ID"
// @Param stype query string false "Type ID"
// @Param search query string false "Name contains"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Security Bearer
// @Router /subscribers [get]
func (h *SubscriberHandler) ListSubscribers(c *gin.Context) {
	isDeleted, err := utils.QueryBool(c, "is_deleted")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)
	query := usecases.ListSubscribersQuery{
		Page:       p.Page,
		PageSize:   p.PageSize,
		IsDeleted:  isDeleted,
		CategoryID: c.Query("category"),
		TypeID:     c.Query("stype"),
		Search:     c.Query("search"),
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// DeleteSubscriber marks the subscriber deleted; repeat calls are harmless
// @Summary Delete subscriber
// @Tags Subscribers
// @Produce json
// @Param id path string true "Subscriber ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security Bearer
// @Router /subscribers/{id} [delete]
func (h *SubscriberHandler) DeleteSubscriber(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Subscriber")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscriber marked as deleted.", nil)
}

// ActivateSubscriber clears the deleted mark
// @Summary Activate subscriber
// @Tags Subscribers
// @Produce json
// @Param id path string true "Subscriber ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security Bearer
// @Router /subscribers/{id}/activate [post]
func (h *SubscriberHandler) ActivateSubscriber(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Subscriber")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.activateUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscriber activated.", nil)
}

// Report returns one label row per subscriber not deleted
// @Summary Subscriber label report
// @Tags Reports
// @Produce json
// @Param char_limit query int false "Characters per address line" default(42)
// @Success 200 {object} utils.APIResponse{data=[]dto.ReportRowDTO}
// @Failure 400 {object} utils.APIResponse
// @Security Bearer
// @Router /subscribers/report [get]
func (h *SubscriberHandler) Report(c *gin.Context) {
	charLimit, err := queryInt(c, "char_limit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rows, err := h.reportUC.Rows(c.Request.Context(), charLimit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", rows)
}

// ReportPDF streams the label sheet
// @Summary Subscriber label sheet
// @Tags Reports
// @Produce application/pdf
// @Param char_limit query int false "Characters per line" default(42)
// @Success 200 {file} binary
// @Failure 400 {object} utils.APIResponse
// @Security Bearer
// @Router /subscribers/report/pdf [get]
func (h *SubscriberHandler) ReportPDF(c *gin.Context) {
	charLimit, err := queryInt(c, "char_limit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pdf, err := h.reportUC.PDF(c.Request.Context(), charLimit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.writePDF(c, h.reportUC.FileName(), pdf)
}

// SampleReportPDF streams a sheet of placeholder labels
// @Summary Sample label sheet
// @Tags Reports
// @Produce application/pdf
// @Param char_limit query int false "Characters per line" default(42)
// @Success 200 {file} binary
// @Security Bearer
// @Router /subscribers/report/pdf/sample [get]
func (h *SubscriberHandler) SampleReportPDF(c *gin.Context) {
	charLimit, err := queryInt(c, "char_limit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pdf, err := h.reportUC.SamplePDF(charLimit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.writePDF(c, "sample_"+h.reportUC.FileName(), pdf)
}

// EmailReport mails the label sheet
// @Summary Mail label sheet
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body dto.SendReportRequest true "Recipient"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security Bearer
// @Router /subscribers/report/email [post]
func (h *SubscriberHandler) EmailReport(c *gin.Context) {
	var req dto.SendReportRequest
	if !bindJSON(c, &req, h.logger, "email report") {
		return
	}

	if err := h.reportUC.Email(c.Request.Context(), req.Email, req.CharLimit); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report sent to "+req.Email, nil)
}

func (h *SubscriberHandler) writePDF(c *gin.Context, fileName string, pdf []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, constants.ContentTypePDF, pdf)
}
