package subscription

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrSubscriptionExpired  = errors.New("subscription expired")
	ErrTransferExpired      = errors.New("cannot transfer expired subscription")
	ErrSelfTransfer         = errors.New("cannot transfer to the calling identity")
	ErrNotOwner             = errors.New("caller is not the subscription owner")
	ErrRenewalLimitReached  = errors.New("renewal limit reached")
	ErrTooManyFeatures      = errors.New("feature list exceeds capacity")
	ErrInvalidTokenID       = errors.New("token id must be positive")
	ErrOwnerRequired        = errors.New("owner principal is required")
	ErrTierRequired         = errors.New("tier id is required")
	ErrInvalidWindow        = errors.New("end height precedes start height")
)
