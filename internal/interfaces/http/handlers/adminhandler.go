package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ttaiwl/chronopass/internal/application/engine/usecases"
	"github.com/Ttaiwl/chronopass/internal/domain/chain"
	"github.com/Ttaiwl/chronopass/internal/interfaces/http/middleware"
	"github.com/Ttaiwl/chronopass/internal/shared/errors"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
	"github.com/Ttaiwl/chronopass/internal/shared/utils"
)

type AdminHandler struct {
	service        adminService
	clock          chain.Clock
	heightSetter   heightSetter
	adminPrincipal string
	logger         logger.Interface
}

// NewAdminHandler wires the operator surface. heightSetter is nil unless the
// deployment runs the manual clock.
func NewAdminHandler(service adminService, clock chain.Clock, setter heightSetter, adminPrincipal string) *AdminHandler {
	return &AdminHandler{
		service:        service,
		clock:          clock,
		heightSetter:   setter,
		adminPrincipal: adminPrincipal,
		logger:         logger.NewLogger(),
	}
}

type SetChainHeightRequest struct {
	Height uint64 `json:"height" binding:"required"`
}

// ToggleService flips the global sales gate. Admin only.
func (h *AdminHandler) ToggleService(c *gin.Context) {
	cmd := usecases.ToggleServiceCommand{
		Caller: middleware.PrincipalFromContext(c),
	}

	result, err := h.service.ToggleService(c.Request.Context(), cmd)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service gate updated", result)
}

func (h *AdminHandler) GetServiceStatus(c *gin.Context) {
	result, err := h.service.ServiceStatus(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	height, err := h.clock.Height(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"service_enabled": result.ServiceEnabled,
		"token_counter":   result.TokenCounter,
		"chain_height":    height,
	})
}

// SetChainHeight advances the manual clock. Admin only, rejected when the
// deployment derives heights from wall time.
func (h *AdminHandler) SetChainHeight(c *gin.Context) {
	if middleware.PrincipalFromContext(c) != h.adminPrincipal {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("caller is not the administrator"))
		return
	}

	if h.heightSetter == nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("chain height is not manually settable in this deployment"))
		return
	}

	var req SetChainHeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set chain height", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := h.heightSetter.SetHeight(req.Height); err != nil {
		utils.ErrorResponseWithError(c, errors.NewConflictError(err.Error()))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Chain height updated", gin.H{
		"height": req.Height,
	})
}

// HealthCheck reports process liveness.
func (h *AdminHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
