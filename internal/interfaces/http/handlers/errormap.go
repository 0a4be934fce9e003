package handlers

import (
	goerrors "errors"

	"github.com/gin-gonic/gin"

	"github.com/Ttaiwl/chronopass/internal/domain/engine"
	"github.com/Ttaiwl/chronopass/internal/domain/ledger"
	"github.com/Ttaiwl/chronopass/internal/domain/subscription"
	"github.com/Ttaiwl/chronopass/internal/domain/tier"
	"github.com/Ttaiwl/chronopass/internal/domain/token"
	"github.com/Ttaiwl/chronopass/internal/shared/errors"
	"github.com/Ttaiwl/chronopass/internal/shared/utils"
)

// respondDomainError translates domain sentinel errors into the API error
// contract. Unrecognized errors fall through as opaque internal errors.
func respondDomainError(c *gin.Context, err error) {
	utils.ErrorResponseWithError(c, toAppError(err))
}

func toAppError(err error) error {
	switch {
	case goerrors.Is(err, engine.ErrNotAdministrator):
		return errors.NewForbiddenError("caller is not the administrator")
	case goerrors.Is(err, engine.ErrServiceDisabled):
		return errors.NewForbiddenError("service is currently disabled")
	case goerrors.Is(err, subscription.ErrNotOwner):
		return errors.NewUnauthorizedError("caller does not own this subscription")
	case goerrors.Is(err, tier.ErrTierNotFound):
		return errors.NewNotFoundError("tier not found")
	case goerrors.Is(err, subscription.ErrSubscriptionNotFound),
		goerrors.Is(err, token.ErrTokenNotFound):
		return errors.NewNotFoundError("subscription not found")
	case goerrors.Is(err, subscription.ErrSubscriptionExpired):
		return errors.NewConflictError("subscription has expired")
	case goerrors.Is(err, subscription.ErrTransferExpired):
		return errors.NewConflictError("cannot transfer an expired subscription")
	case goerrors.Is(err, subscription.ErrRenewalLimitReached):
		return errors.NewConflictError("renewal limit reached for this tier")
	case goerrors.Is(err, subscription.ErrSelfTransfer):
		return errors.NewBadRequestError("cannot transfer to the calling identity")
	case goerrors.Is(err, tier.ErrInvalidTierConfig):
		return errors.NewBadRequestError("invalid tier configuration", err.Error())
	case goerrors.Is(err, ledger.ErrInsufficientFunds):
		return errors.NewPaymentRequiredError("insufficient funds", err.Error())
	case goerrors.Is(err, ledger.ErrInvalidTransfer),
		goerrors.Is(err, ledger.ErrUnknownAccount):
		return errors.NewBadRequestError("ledger rejected the transfer", err.Error())
	case goerrors.Is(err, subscription.ErrTooManyFeatures),
		goerrors.Is(err, subscription.ErrInvalidTokenID),
		goerrors.Is(err, subscription.ErrOwnerRequired),
		goerrors.Is(err, subscription.ErrTierRequired),
		goerrors.Is(err, subscription.ErrInvalidWindow):
		return errors.NewBadRequestError(err.Error())
	default:
		return err
	}
}
