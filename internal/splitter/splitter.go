// Package splitter partitions a 256-bit unsigned amount into fixed 30% and 10%
// shares plus the leftover, using truncating division.
//
// Every function is total over [0, 2^256-1]: products that could exceed 256
// bits are rewritten as quotient/remainder sums, so nothing wraps. Inputs are
// never modified and all functions are safe for concurrent use.
package splitter

import "github.com/holiman/uint256"

// ThirtyPercent returns floor(amount*3/10).
//
// Remainder is amount - floor(Share*10/3). Double truncation means it can be
// zero even when the share itself was truncated.
func ThirtyPercent(amount *uint256.Int) PercentResult {
	amount = orZero(amount)

	share := new(uint256.Int)
	mulDivSmall(share, amount, u256Three, u256Ten, u256MaxDivThree)

	// Share*10 overflows once amount is above ~3*MAX/10, so reconstruct by 3.
	back := GetU256()
	defer PutU256(back)
	mulDivSmall(back, share, u256Ten, u256Three, u256MaxDivTen)

	return PercentResult{
		Share:     share,
		Remainder: new(uint256.Int).Sub(amount, back),
	}
}

// TenPercent returns floor(amount/10). Remainder is exactly amount mod 10.
func TenPercent(amount *uint256.Int) PercentResult {
	amount = orZero(amount)

	share := new(uint256.Int).Div(amount, u256Ten)
	rem := new(uint256.Int).Mul(share, u256Ten)
	rem.Sub(amount, rem)

	return PercentResult{
		Share:     share,
		Remainder: rem,
	}
}

// Split partitions amount into 30%, 10% and the remaining 60%-plus-change.
func Split(amount *uint256.Int) SplitResult {
	amount = orZero(amount)

	thirty := new(uint256.Int)
	mulDivSmall(thirty, amount, u256Three, u256Ten, u256MaxDivThree)
	ten := new(uint256.Int).Div(amount, u256Ten)

	allocated := GetU256()
	perfect40 := GetU256()
	defer func() {
		PutU256(allocated)
		PutU256(perfect40)
	}()

	// thirty + ten <= floor(amount*4/10) <= amount
	allocated.Add(thirty, ten)
	remaining := new(uint256.Int).Sub(amount, allocated)

	mulDivSmall(perfect40, amount, u256Four, u256Ten, u256MaxDivFour)
	totalRemainder := new(uint256.Int)
	if perfect40.Gt(allocated) {
		totalRemainder.Sub(perfect40, allocated)
	}

	return SplitResult{
		Thirty:         thirty,
		Ten:            ten,
		Remaining:      remaining,
		TotalRemainder: totalRemainder,
	}
}

// IsDivisibleByTen reports whether amount mod 10 == 0.
func IsDivisibleByTen(amount *uint256.Int) bool {
	rem := GetU256()
	defer PutU256(rem)
	return rem.Mod(orZero(amount), u256Ten).IsZero()
}

// RemainderModTen returns amount mod 10, in [0, 9].
func RemainderModTen(amount *uint256.Int) *uint256.Int {
	return new(uint256.Int).Mod(orZero(amount), u256Ten)
}

// Decomposes reports whether Split needs the quotient/remainder path for
// amount, i.e. amount*4 would not fit in 256 bits.
func Decomposes(amount *uint256.Int) bool {
	return orZero(amount).Gt(u256MaxDivFour)
}

// DecomposesThirty reports whether ThirtyPercent needs the quotient/remainder
// path. Below MAX/3 the share is at most MAX/10, so the diagnostic's share*10
// fits as well.
func DecomposesThirty(amount *uint256.Int) bool {
	return orZero(amount).Gt(u256MaxDivThree)
}
