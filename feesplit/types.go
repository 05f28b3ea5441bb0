// Package feesplit implements basis-point fee splitting for primary sale
// proceeds. A fee configuration names an ordered list of recipients and their
// shares in basis points; whatever the named recipients do not claim accrues
// to the platform's default fee recipient.
package feesplit

import "github.com/ethereum/go-ethereum/common"

// TotalBPS is the basis-point denominator (10000 bps = 100%).
const TotalBPS = 10000

// Config is an ordered primary fee configuration. Recipients and BPS are
// parallel slices; BPS may sum to less than TotalBPS, in which case the
// shortfall accrues to the default platform fee recipient.
type Config struct {
	Recipients []common.Address
	BPS        []uint32
}

// Payment is a single computed payout.
type Payment struct {
	To     common.Address
	Amount uint64
}
