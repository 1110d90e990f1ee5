package splitter

import (
	"math"
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
)

// TestSplitFastMatchesU256 ensures the uint64 path agrees with the 256-bit path
func TestSplitFastMatchesU256(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	amounts := []uint64{0, 1, 3, 4, 7, 9, 10, 15, 100, math.MaxUint64, math.MaxUint64 - 1, math.MaxUint64 / 3, math.MaxUint64/3 + 1}
	for i := 0; i < 5000; i++ {
		amounts = append(amounts, rng.Uint64())
	}

	for _, a := range amounts {
		fast := SplitFast(a)
		full := Split(uint256.NewInt(a))

		if fast.Thirty != full.Thirty.Uint64() ||
			fast.Ten != full.Ten.Uint64() ||
			fast.Remaining != full.Remaining.Uint64() ||
			fast.TotalRemainder != full.TotalRemainder.Uint64() {
			t.Fatalf("SplitFast(%d) = %+v, Split = (%s, %s, %s, %s)", a, fast,
				full.Thirty.Dec(), full.Ten.Dec(), full.Remaining.Dec(), full.TotalRemainder.Dec())
		}
		if fast.Thirty+fast.Ten+fast.Remaining != a {
			t.Fatalf("SplitFast(%d) does not conserve: %+v", a, fast)
		}

		if widened := fast.ToSplitResult(); !widened.Thirty.Eq(full.Thirty) || !widened.Remaining.Eq(full.Remaining) ||
			!widened.Ten.Eq(full.Ten) || !widened.TotalRemainder.Eq(full.TotalRemainder) {
			t.Fatalf("ToSplitResult(%d) does not match Split", a)
		}

		share, rem := ThirtyPercentFast(a)
		ref := ThirtyPercent(uint256.NewInt(a))
		if share != ref.Share.Uint64() || rem != ref.Remainder.Uint64() {
			t.Fatalf("ThirtyPercentFast(%d) = (%d, %d), expected (%s, %s)", a, share, rem, ref.Share.Dec(), ref.Remainder.Dec())
		}

		share, rem = TenPercentFast(a)
		if share != a/10 || rem != a%10 {
			t.Fatalf("TenPercentFast(%d) = (%d, %d)", a, share, rem)
		}
	}
}

func TestMulDiv64(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  uint64
		expected uint64
	}{
		{name: "no high word", a: 1000, b: 3, c: 10, expected: 300},
		{name: "Max uint64 * 3 / 10", a: math.MaxUint64, b: 3, c: 10, expected: 5534023222112865484},
		{name: "Max uint64 * 4 / 10", a: math.MaxUint64, b: 4, c: 10, expected: 7378697629483820646},
		{name: "zero", a: 0, b: 3, c: 10, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mulDiv64(tt.a, tt.b, tt.c); got != tt.expected {
				t.Errorf("mulDiv64(%d, %d, %d) = %d, expected %d", tt.a, tt.b, tt.c, got, tt.expected)
			}
		})
	}
}

func BenchmarkSplitFast(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		SplitFast(uint64(i) * 7919)
	}
}
