package ledger

import "errors"

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownAccount    = errors.New("unknown ledger account")
	ErrInvalidTransfer   = errors.New("invalid transfer")
)
