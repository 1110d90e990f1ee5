package splitter

import "errors"

var (
	ErrEmptyAmount    = errors.New("amount is empty")
	ErrInvalidAmount  = errors.New("amount is not an unsigned integer")
	ErrAmountOverflow = errors.New("amount exceeds 256 bits")
)
