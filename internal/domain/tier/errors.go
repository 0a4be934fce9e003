package tier

import (
	"errors"
	"fmt"

	"github.com/Ttaiwl/chronopass/internal/shared/constants"
)

var (
	ErrTierNotFound      = errors.New("tier not found")
	ErrInvalidTierConfig = errors.New("invalid tier configuration")
)

func ErrInvalidID(id uint64) error {
	return fmt.Errorf("%w: tier id must be positive, got %d", ErrInvalidTierConfig, id)
}

func ErrPriceOutOfRange(price uint64) error {
	return fmt.Errorf("%w: price %d exceeds maximum %d", ErrInvalidTierConfig, price, constants.MaxTierPrice)
}

func ErrDurationOutOfRange(days uint32) error {
	return fmt.Errorf("%w: duration %d days outside [%d, %d]",
		ErrInvalidTierConfig, days, constants.MinDurationDays, constants.MaxDurationDays)
}

func ErrMaxRenewalsOutOfRange(maxRenewals uint32) error {
	return fmt.Errorf("%w: max renewals %d exceeds cap %d", ErrInvalidTierConfig, maxRenewals, constants.MaxRenewalsCap)
}
