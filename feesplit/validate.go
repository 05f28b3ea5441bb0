package feesplit

import "fmt"

// Validate checks a fee configuration at the point of setting. Length
// mismatches and basis points summing above TotalBPS are rejected here, never
// at disbursement time.
func Validate(cfg Config) error {
	if len(cfg.Recipients) != len(cfg.BPS) {
		return fmt.Errorf("%w: %d recipients, %d bps entries",
			ErrLengthMismatch, len(cfg.Recipients), len(cfg.BPS))
	}
	var sum uint64
	for _, bps := range cfg.BPS {
		sum += uint64(bps)
	}
	if sum > TotalBPS {
		return fmt.Errorf("%w: sum is %d", ErrBPSExceeded, sum)
	}
	return nil
}
