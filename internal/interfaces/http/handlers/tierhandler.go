package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ttaiwl/chronopass/internal/application/tier/usecases"
	"github.com/Ttaiwl/chronopass/internal/domain/tier"
	"github.com/Ttaiwl/chronopass/internal/interfaces/http/middleware"
	"github.com/Ttaiwl/chronopass/internal/shared/errors"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
	"github.com/Ttaiwl/chronopass/internal/shared/utils"
)

type TierHandler struct {
	service tierService
	logger  logger.Interface
}

func NewTierHandler(service tierService) *TierHandler {
	return &TierHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

type ConfigureTierRequest struct {
	TierID       uint64 `json:"tier_id" binding:"required" validate:"required"`
	Price        uint64 `json:"price"`
	DurationDays uint32 `json:"duration_days" binding:"required" validate:"required,lte=365"`
	MaxRenewals  uint32 `json:"max_renewals" validate:"lte=100"`
}

type TierResponse struct {
	TierID       uint64 `json:"tier_id"`
	Price        uint64 `json:"price"`
	DurationDays uint32 `json:"duration_days"`
	MaxRenewals  uint32 `json:"max_renewals"`
}

func tierResponseFrom(t *tier.Tier) TierResponse {
	return TierResponse{
		TierID:       t.ID(),
		Price:        t.Price(),
		DurationDays: t.DurationDays(),
		MaxRenewals:  t.MaxRenewals(),
	}
}

// ConfigureTier inserts or replaces a tier definition. Admin only.
func (h *TierHandler) ConfigureTier(c *gin.Context) {
	var req ConfigureTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for configure tier", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ConfigureTierCommand{
		TierID:       req.TierID,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		MaxRenewals:  req.MaxRenewals,
		Caller:       middleware.PrincipalFromContext(c),
	}

	result, err := h.service.ConfigureTier(c.Request.Context(), cmd)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tier configured successfully", result)
}

func (h *TierHandler) GetTier(c *gin.Context) {
	tierID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	t, err := h.service.GetTier(c.Request.Context(), tierID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", tierResponseFrom(t))
}

func (h *TierHandler) ListTiers(c *gin.Context) {
	tiers, err := h.service.ListTiers(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	responses := make([]TierResponse, 0, len(tiers))
	for _, t := range tiers {
		responses = append(responses, tierResponseFrom(t))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// parseIDParam parses a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return id, nil
}
