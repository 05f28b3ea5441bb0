package royalty

import "errors"

var (
	// ErrNoPayees indicates a splitter configuration with no payees.
	ErrNoPayees = errors.New("royalty: no payees")

	// ErrBadTotalBPS indicates payee shares do not sum to exactly 10000.
	ErrBadTotalBPS = errors.New("royalty: payee shares must sum to 10000 bps")

	// ErrZeroShare indicates a payee with a zero share.
	ErrZeroShare = errors.New("royalty: zero payee share")

	// ErrZeroPayee indicates a payee with a zero address.
	ErrZeroPayee = errors.New("royalty: zero payee address")

	// ErrDuplicatePayee indicates an address listed twice in a configuration.
	ErrDuplicatePayee = errors.New("royalty: duplicate payee")

	// ErrUnknownPayee indicates the address is not a payee of the splitter.
	ErrUnknownPayee = errors.New("royalty: unknown payee")

	// ErrNothingDue indicates a release for a payee with no pending balance.
	ErrNothingDue = errors.New("royalty: nothing due")

	// ErrZeroPayment indicates a zero-amount payment into the splitter.
	ErrZeroPayment = errors.New("royalty: zero payment")

	// ErrInvalidSplitterData indicates serialized splitter state is malformed.
	ErrInvalidSplitterData = errors.New("royalty: invalid splitter data")

	// ErrTooManyPayees indicates the payee list exceeds the codec limit.
	ErrTooManyPayees = errors.New("royalty: too many payees")
)
