package splitter

import (
	"sync"

	"github.com/holiman/uint256"
)

// Pre-computed constants (avoid allocation on every call)
var (
	u256Zero  = uint256.NewInt(0)
	u256Three = uint256.NewInt(3)
	u256Four  = uint256.NewInt(4)
	u256Ten   = uint256.NewInt(10)

	// MaxAmount is the largest representable amount, 2^256 - 1.
	MaxAmount = new(uint256.Int).SetAllOne()

	// Above these bounds amount*3 (resp. *4, *10) no longer fits in 256 bits.
	u256MaxDivThree = new(uint256.Int).Div(MaxAmount, u256Three)
	u256MaxDivFour  = new(uint256.Int).Div(MaxAmount, u256Four)
	u256MaxDivTen   = new(uint256.Int).Div(MaxAmount, u256Ten)
)

var uint256Pool = sync.Pool{
	New: func() interface{} {
		return new(uint256.Int)
	},
}

// GetU256 gets a uint256.Int from the pool
func GetU256() *uint256.Int {
	return uint256Pool.Get().(*uint256.Int)
}

// PutU256 returns a uint256.Int to the pool
func PutU256(v *uint256.Int) {
	v.Clear()
	uint256Pool.Put(v)
}

// mulDivSmall sets out = floor(x * num / den) for small constants num and den.
// The result itself must fit in 256 bits.
//
// When x <= limit (limit = MAX/num) the product is computed directly. Above the
// limit x is split into q*den + r and the result is q*num + floor(r*num/den),
// which is the same value with every intermediate bounded by MAX.
// Returns true when the decomposed path was taken.
func mulDivSmall(out, x, num, den, limit *uint256.Int) bool {
	if x.Cmp(limit) <= 0 {
		out.Mul(x, num)
		out.Div(out, den)
		return false
	}

	q := GetU256()
	r := GetU256()
	defer func() {
		PutU256(q)
		PutU256(r)
	}()

	// q = x / den, r = x % den
	q.DivMod(x, den, r)
	// r*num < den*num, never overflows
	r.Mul(r, num)
	r.Div(r, den)
	// q*num <= floor(x*num/den), which fits
	out.Mul(q, num)
	out.Add(out, r)
	return true
}

// mulDivDirect computes floor(x*num/den) without any overflow guard. It wraps
// for large x and only exists so tests can compare both paths.
func mulDivDirect(out, x, num, den *uint256.Int) *uint256.Int {
	out.Mul(x, num)
	out.Div(out, den)
	return out
}

// mulDivDecomposed always takes the quotient/remainder path.
func mulDivDecomposed(out, x, num, den *uint256.Int) *uint256.Int {
	mulDivSmall(out, x, num, den, u256Zero)
	return out
}

func orZero(x *uint256.Int) *uint256.Int {
	if x == nil {
		return u256Zero
	}
	return x
}
