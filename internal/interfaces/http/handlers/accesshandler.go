package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ttaiwl/chronopass/internal/shared/errors"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
	"github.com/Ttaiwl/chronopass/internal/shared/utils"
)

// AccessHandler serves the read-only verification surface relying services
// poll. None of these endpoints mutate state and expiry is reported as data,
// not as an error.
type AccessHandler struct {
	service accessService
	logger  logger.Interface
}

func NewAccessHandler(service accessService) *AccessHandler {
	return &AccessHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

func (h *AccessHandler) GetSubscription(c *gin.Context) {
	tokenID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetSubscription(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AccessHandler) HasFeature(c *gin.Context) {
	tokenID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	featureKey := c.Param("key")
	if featureKey == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("missing feature key"))
		return
	}

	hasFeature, err := h.service.HasFeature(c.Request.Context(), tokenID, featureKey)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"token_id":    tokenID,
		"feature_key": featureKey,
		"has_feature": hasFeature,
	})
}

func (h *AccessHandler) VerifyOwnership(c *gin.Context) {
	tokenID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	owner := c.Query("owner")
	if owner == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("missing owner query parameter"))
		return
	}

	isOwner, err := h.service.VerifyOwnership(c.Request.Context(), tokenID, owner)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"token_id": tokenID,
		"owner":    owner,
		"is_owner": isOwner,
	})
}

func (h *AccessHandler) VerifyAccess(c *gin.Context) {
	tokenID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	featureKey := c.Param("key")
	if featureKey == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("missing feature key"))
		return
	}

	result, err := h.service.VerifyAccess(c.Request.Context(), tokenID, featureKey)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
