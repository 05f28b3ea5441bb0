package factory

import "errors"

var (
	// ErrZeroAddress indicates a zero address where a real one is required.
	ErrZeroAddress = errors.New("factory: zero address")

	// ErrAlreadyDeployed indicates the artist already has a creator contract.
	ErrAlreadyDeployed = errors.New("factory: already deployed")

	// ErrNotDeployed indicates no creator contract exists for the artist.
	ErrNotDeployed = errors.New("factory: not deployed")
)
