package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ttaiwl/chronopass/internal/application/subscription/usecases"
	"github.com/Ttaiwl/chronopass/internal/interfaces/http/middleware"
	"github.com/Ttaiwl/chronopass/internal/shared/errors"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
	"github.com/Ttaiwl/chronopass/internal/shared/utils"
)

type SubscriptionHandler struct {
	service subscriptionService
	logger  logger.Interface
}

func NewSubscriptionHandler(service subscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

type MintRequest struct {
	TierID uint64 `json:"tier_id" binding:"required"`
}

type TransferRequest struct {
	Recipient    string `json:"recipient" binding:"required" validate:"required,max=128"`
	WithFeatures bool   `json:"with_features"`
}

// Mint charges the caller the tier price and issues a new pass.
func (h *SubscriptionHandler) Mint(c *gin.Context) {
	var req MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for mint", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.MintPassCommand{
		TierID: req.TierID,
		Caller: middleware.PrincipalFromContext(c),
	}

	result, err := h.service.Mint(c.Request.Context(), cmd)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription minted successfully")
}

// Renew extends a still-valid pass at the current tier terms.
func (h *SubscriptionHandler) Renew(c *gin.Context) {
	tokenID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RenewPassCommand{
		TokenID: tokenID,
		Caller:  middleware.PrincipalFromContext(c),
	}

	result, err := h.service.Renew(c.Request.Context(), cmd)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription renewed successfully", result)
}

// ToggleAutoRenew flips the auto-renewal flag. Owner only.
func (h *SubscriptionHandler) ToggleAutoRenew(c *gin.Context) {
	tokenID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ToggleAutoRenewCommand{
		TokenID: tokenID,
		Caller:  middleware.PrincipalFromContext(c),
	}

	result, err := h.service.ToggleAutoRenew(c.Request.Context(), cmd)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Auto-renewal updated", result)
}

// Transfer hands a pass to a new owner, optionally carrying its feature list.
func (h *SubscriptionHandler) Transfer(c *gin.Context) {
	h.transfer(c, false)
}

// TransferLegacy is the historical transfer entry point; the recipient always
// starts with an empty feature list.
func (h *SubscriptionHandler) TransferLegacy(c *gin.Context) {
	h.transfer(c, true)
}

func (h *SubscriptionHandler) transfer(c *gin.Context, legacy bool) {
	tokenID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for transfer", "token_id", tokenID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal := middleware.PrincipalFromContext(c)
	cmd := usecases.TransferPassCommand{
		TokenID:      tokenID,
		Sender:       principal,
		Recipient:    req.Recipient,
		Caller:       principal,
		WithFeatures: req.WithFeatures,
	}

	var result *usecases.TransferPassResult
	if legacy {
		result, err = h.service.TransferLegacy(c.Request.Context(), cmd)
	} else {
		result, err = h.service.Transfer(c.Request.Context(), cmd)
	}
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription transferred successfully", result)
}
