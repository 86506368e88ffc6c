package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tcworld/magadmin/internal/application/reference/dto"
	"github.com/tcworld/magadmin/internal/application/reference/usecases"
	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

// ReferenceHandler serves every reference registry. Each route binds the
// registry kind when it is registered.
type ReferenceHandler struct {
	createUC createReferenceUseCase
	updateUC updateReferenceUseCase
	getUC    getReferenceUseCase
	listUC   listReferencesUseCase
	deleteUC deleteReferenceUseCase
	logger   logger.Interface
}

func NewReferenceHandler(
	createUC createReferenceUseCase,
	updateUC updateReferenceUseCase,
	getUC getReferenceUseCase,
	listUC listReferencesUseCase,
	deleteUC deleteReferenceUseCase,
	logger logger.Interface,
) *ReferenceHandler {
	return &ReferenceHandler{
		createUC: createUC,
		updateUC: updateUC,
		getUC:    getUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// Create registers a new registry record
// @Summary Create reference record
// @Description Create a category, type, language, mode or payment mode
// @Tags References
// @Accept json
// @Produce json
// @Param kind path string true "Registry" Enums(categories, types, languages, modes, payment-modes)
// @Param request body dto.CreateReferenceRequest true "Record"
// @Success 201 {object} utils.APIResponse{data=dto.ReferenceDTO}
// @Failure 400 {object} utils.APIResponse
// @Security Bearer
// @Router /{kind} [post]
func (h *ReferenceHandler) Create(kind reference.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateReferenceRequest
		if !bindJSON(c, &req, h.logger, "create "+kind.String()) {
			return
		}

		result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateReferenceCommand{
			Kind: kind,
			ID:   req.ID,
			Name: req.Name,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.CreatedResponse(c, result, kind.ModelName()+" created successfully")
	}
}

// Update renames a registry record
// @Summary Update reference record
// @Tags References
// @Accept json
// @Produce json
// @Param kind path string true "Registry"
// @Param id path string true "Record ID"
// @Param request body dto.UpdateReferenceRequest true "Changes"
// @Success 200 {object} utils.APIResponse{data=dto.ReferenceDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security Bearer
// @Router /{kind}/{id} [patch]
func (h *ReferenceHandler) Update(kind reference.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseIDParam(c, "id", kind.ModelName())
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		var req dto.UpdateReferenceRequest
		if !bindJSON(c, &req, h.logger, "update "+kind.String()) {
			return
		}

		result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateReferenceCommand{
			Kind: kind,
			ID:   id,
			Name: req.Name,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, kind.ModelName()+" updated successfully", result)
	}
}

// Get returns one registry record
// @Summary Get reference record
// @Tags References
// @Produce json
// @Param kind path string true "Registry"
// @Param id path string true "Record ID"
// @Success 200 {object} utils.APIResponse{data=dto.ReferenceDTO}
// @Failure 404 {object} utils.APIResponse
// @Security Bearer
// @Router /{kind}/{id} [get]
func (h *ReferenceHandler) Get(kind reference.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseIDParam(c, "id", kind.ModelName())
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		result, err := h.getUC.Execute(c.Request.Context(), kind, id)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "", result)
	}
}

// List pages through a registry
// @Summary List reference records
// @Tags References
// @Produce json
// @Param kind path string true "Registry"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Name contains"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Security Bearer
// @Router /{kind} [get]
func (h *ReferenceHandler) List(kind reference.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := utils.ParsePagination(c)

		result, err := h.listUC.Execute(c.Request.Context(), usecases.ListReferencesQuery{
			Kind:     kind,
			Page:     p.Page,
			PageSize: p.PageSize,
			Search:   c.Query("search"),
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
	}
}

// Delete removes a registry record
// @Summary Delete reference record
// @Tags References
// @Param kind path string true "Registry"
// @Param id path string true "Record ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Security Bearer
// @Router /{kind}/{id} [delete]
func (h *ReferenceHandler) Delete(kind reference.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseIDParam(c, "id", kind.ModelName())
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		if err := h.deleteUC.Execute(c.Request.Context(), kind, id); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.NoContentResponse(c)
	}
}
