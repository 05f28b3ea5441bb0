package feesplit

import "github.com/ethereum/go-ethereum/common"

// ComputeShares calculates the payout for each configured recipient and the
// platform remainder for a total payment.
//
// Each named recipient receives floor(total * bps / 10000), in configuration
// order. The unallocated remainder, arising both from configurations summing
// below 10000 and from integer truncation, is appended last as a payment to
// the default platform fee recipient. Payments of zero are omitted.
//
// The returned payments always conserve value: their amounts sum to total.
func ComputeShares(total uint64, cfg Config, platform common.Address) ([]Payment, error) {
	if total == 0 {
		return nil, ErrZeroPayment
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	payments := make([]Payment, 0, len(cfg.Recipients)+1)
	var allocated uint64
	for i, to := range cfg.Recipients {
		amount := share(total, uint64(cfg.BPS[i]))
		if amount == 0 {
			continue
		}
		payments = append(payments, Payment{To: to, Amount: amount})
		allocated += amount
	}

	// Remainder goes to the platform, after all named recipients.
	if remainder := total - allocated; remainder > 0 {
		payments = append(payments, Payment{To: platform, Amount: remainder})
	}
	return payments, nil
}

// share computes floor(total * bps / 10000) without overflowing uint64.
func share(total, bps uint64) uint64 {
	return (total/TotalBPS)*bps + (total%TotalBPS)*bps/TotalBPS
}
