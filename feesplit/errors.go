package feesplit

import "errors"

var (
	// ErrLengthMismatch indicates recipients and BPS slices differ in length.
	ErrLengthMismatch = errors.New("feesplit: recipients and bps length mismatch")

	// ErrBPSExceeded indicates the basis points sum to more than 10000.
	ErrBPSExceeded = errors.New("feesplit: bps sum exceeds 10000")

	// ErrZeroPayment indicates a distribution was requested for zero value.
	ErrZeroPayment = errors.New("feesplit: zero payment amount")
)
