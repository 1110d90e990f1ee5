package splitter

import "math/bits"

// Fast variants work on uint64 amounts with a 128-bit intermediate product.
// Each must agree with its uint256 counterpart for every uint64 input.

// mulDiv64 computes floor(a*b/c). The caller guarantees the quotient fits in
// 64 bits (hi < c); panics if c == 0.
func mulDiv64(a, b, c uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo / c
	}
	quo, _ := bits.Div64(hi, lo, c)
	return quo
}

// ThirtyPercentFast is ThirtyPercent for uint64 amounts.
func ThirtyPercentFast(amount uint64) (share, remainder uint64) {
	share = mulDiv64(amount, 3, 10)
	// share*10 <= 3*amount < 3*2^64, so the high word is below 3
	return share, amount - mulDiv64(share, 10, 3)
}

// TenPercentFast is TenPercent for uint64 amounts.
func TenPercentFast(amount uint64) (share, remainder uint64) {
	share = amount / 10
	return share, amount - share*10
}

// SplitFast is Split for uint64 amounts.
func SplitFast(amount uint64) FastSplitResult {
	thirty := mulDiv64(amount, 3, 10)
	ten := amount / 10
	allocated := thirty + ten

	var totalRemainder uint64
	if perfect40 := mulDiv64(amount, 4, 10); perfect40 > allocated {
		totalRemainder = perfect40 - allocated
	}

	return FastSplitResult{
		Thirty:         thirty,
		Ten:            ten,
		Remaining:      amount - allocated,
		TotalRemainder: totalRemainder,
	}
}
