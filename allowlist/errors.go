package allowlist

import "errors"

var (
	// ErrNoProof indicates a gated purchase was attempted without a proof.
	ErrNoProof = errors.New("allowlist: no proof provided")

	// ErrNotAvailable indicates the claim does not verify against the root,
	// or the claimed allowance cannot cover the requested quantity.
	ErrNotAvailable = errors.New("allowlist: not available to purchase")

	// ErrNoEntries indicates an attempt to build a tree with no entries.
	ErrNoEntries = errors.New("allowlist: no entries")

	// ErrDuplicateEntry indicates the same account appears twice in a tree.
	ErrDuplicateEntry = errors.New("allowlist: duplicate account entry")

	// ErrEntryNotFound indicates the account is not present in the tree.
	ErrEntryNotFound = errors.New("allowlist: entry not found")

	// ErrInsufficientAllowance indicates a decrement below zero.
	ErrInsufficientAllowance = errors.New("allowlist: insufficient allowance")
)
