package services

import "errors"

var (
	ErrEmptyBatch    = errors.New("batch contains no amounts")
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")
	ErrConservation  = errors.New("split parts do not sum to the amount")
)
