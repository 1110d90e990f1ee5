package splitter

import "github.com/holiman/uint256"

// PercentResult is the outcome of a single-percentage calculation.
//
// Remainder is diagnostic only. It is not the arithmetic leftover, so
// Share + Remainder == amount does not hold in general.
type PercentResult struct {
	Share     *uint256.Int
	Remainder *uint256.Int
}

// SplitResult holds the 30/10/60 partition of an amount.
// Thirty + Ten + Remaining always equals the input amount.
type SplitResult struct {
	Thirty    *uint256.Int
	Ten       *uint256.Int
	Remaining *uint256.Int
	// TotalRemainder is the number of units lost to truncation relative to a
	// single floor(amount*4/10). Always 0 or 1.
	TotalRemainder *uint256.Int
}

// Sum returns Thirty + Ten + Remaining.
func (sr *SplitResult) Sum() *uint256.Int {
	sum := new(uint256.Int).Add(sr.Thirty, sr.Ten)
	return sum.Add(sum, sr.Remaining)
}

// Conserves reports whether the three parts add back up to amount.
func (sr *SplitResult) Conserves(amount *uint256.Int) bool {
	sum, overflow := new(uint256.Int).AddOverflow(sr.Thirty, sr.Ten)
	if overflow {
		return false
	}
	if _, overflow = sum.AddOverflow(sum, sr.Remaining); overflow {
		return false
	}
	return sum.Eq(orZero(amount))
}

// FastSplitResult is the uint64 counterpart of SplitResult.
type FastSplitResult struct {
	Thirty         uint64
	Ten            uint64
	Remaining      uint64
	TotalRemainder uint64
}

// ToSplitResult widens a uint64 split to its 256-bit form.
func (f FastSplitResult) ToSplitResult() SplitResult {
	return SplitResult{
		Thirty:         uint256.NewInt(f.Thirty),
		Ten:            uint256.NewInt(f.Ten),
		Remaining:      uint256.NewInt(f.Remaining),
		TotalRemainder: uint256.NewInt(f.TotalRemainder),
	}
}
