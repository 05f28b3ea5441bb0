package sale

import "errors"

var (
	// ErrNotPrepared indicates the blueprint has no prepared sale.
	ErrNotPrepared = errors.New("sale: blueprint not prepared")

	// ErrAlreadyStarted indicates re-preparation was attempted on a live sale.
	ErrAlreadyStarted = errors.New("sale: sale already started")

	// ErrSaleNotStarted indicates the operation needs an ongoing sale.
	ErrSaleNotStarted = errors.New("sale: sale not started")

	// ErrSaleNotPaused indicates unpause was attempted on a sale that is not paused.
	ErrSaleNotPaused = errors.New("sale: sale not paused")

	// ErrSaleEnded indicates the sale end timestamp has passed.
	ErrSaleEnded = errors.New("sale: sale ended")

	// ErrNotMintable indicates a reserved mint outside the presale or public sale window.
	ErrNotMintable = errors.New("sale: must be presale or public sale")

	// ErrCapacityExceeded indicates the requested quantity exceeds remaining capacity.
	ErrCapacityExceeded = errors.New("sale: quantity exceeds capacity")

	// ErrAllocationExceeded indicates a reserved mint beyond its remaining allocation.
	ErrAllocationExceeded = errors.New("sale: quantity exceeds mint allocation")

	// ErrZeroQuantity indicates a purchase or mint of zero tokens.
	ErrZeroQuantity = errors.New("sale: zero quantity")

	// ErrZeroCapacity indicates preparation with no sellable capacity.
	ErrZeroCapacity = errors.New("sale: zero capacity")

	// ErrURILocked indicates the base token URI has been irreversibly locked.
	ErrURILocked = errors.New("sale: token uri locked")

	// ErrRecordNotFound indicates no sale record exists for the edition.
	ErrRecordNotFound = errors.New("sale: record not found")

	// ErrInvalidRecordData indicates a persisted record fails decoding.
	ErrInvalidRecordData = errors.New("sale: invalid record data")

	// ErrNilRecord indicates a required record parameter is nil.
	ErrNilRecord = errors.New("sale: record is nil")
)
