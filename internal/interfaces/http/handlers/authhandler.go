package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tcworld/magadmin/internal/application/admin/dto"
	"github.com/tcworld/magadmin/internal/application/admin/usecases"
	"github.com/tcworld/magadmin/internal/interfaces/http/middleware"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

type AuthHandler struct {
	loginUC  loginUseCase
	logoutUC logoutUseCase
	logger   logger.Interface
}

func NewAuthHandler(loginUC loginUseCase, logoutUC logoutUseCase, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC:  loginUC,
		logoutUC: logoutUC,
		logger:   logger,
	}
}

// Login exchanges credentials for a bearer token
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req, h.logger, "login") {
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.IsAuthError(err) {
			h.logger.Infow("login rejected", "username", req.Username, "client_ip", c.ClientIP())
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// Logout ends the caller's session
// @Summary Admin logout
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security Bearer
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	if err := h.logoutUC.Execute(c.Request.Context(), principal); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logout successful!", nil)
}

// Me returns the authenticated caller
// @Summary Current admin
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.PrincipalDTO}
// @Failure 401 {object} utils.APIResponse
// @Security Bearer
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenMissingError())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToPrincipalDTO(principal))
}

type AdminUserHandler struct {
	signupUC signupUseCase
	getUC    getAdminUserUseCase
	listUC   listAdminUsersUseCase
	logger   logger.Interface
}

func NewAdminUserHandler(
	signupUC signupUseCase,
	getUC getAdminUserUseCase,
	listUC listAdminUsersUseCase,
	logger logger.Interface,
) *AdminUserHandler {
	return &AdminUserHandler{
		signupUC: signupUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// Signup creates an admin account
// @Summary Create admin user
// @Tags Admin users
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Account"
// @Success 201 {object} utils.APIResponse{data=dto.AdminUserDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security Bearer
// @Router /admin-users [post]
func (h *AdminUserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(c, &req, h.logger, "admin signup") {
		return
	}

	result, err := h.signupUC.Execute(c.Request.Context(), usecases.SignupCommand{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Aadhaar:   req.Aadhaar,
		Mobile:    req.Mobile,
		Role:      req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if creator, ok := middleware.GetPrincipal(c); ok {
		h.logger.Infow("admin user created", "id", result.ID, "created_by", creator.AdminID)
	}
	utils.CreatedResponse(c, result, "Admin user created successfully")
}

// GetAdminUser returns one admin account
// @Summary Get admin user
// @Tags Admin users
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} utils.APIResponse{data=dto.AdminUserDTO}
// @Failure 404 {object} utils.APIResponse
// @Security Bearer
// @Router /admin-users/{id} [get]
func (h *AdminUserHandler) GetAdminUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "Admin user")
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

// ListAdminUsers pages through admin accounts
// @Summary List admin users
// @Tags Admin users
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param role query string false "Role" Enums(admin, staff)
// @Param search query string false "Username or email contains"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Security Bearer
// @Router /admin-users [get]
func (h *AdminUserHandler) ListAdminUsers(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAdminUsersQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
		Role:     c.Query("role"),
		Search:   c.Query("search"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}
