package splitter

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{name: "zero", input: "0", expected: "0"},
		{name: "decimal", input: "1000000000000000000", expected: "1000000000000000000"},
		{name: "surrounding spaces", input: "  42 ", expected: "42"},
		{name: "leading zeros", input: "00010", expected: "10"},
		{name: "hex", input: "0xff", expected: "255"},
		{name: "hex upper prefix", input: "0XFF", expected: "255"},
		{name: "hex leading zeros", input: "0x000a", expected: "10"},
		{name: "max", input: "115792089237316195423570985008687907853269984665640564039457584007913129639935", expected: "115792089237316195423570985008687907853269984665640564039457584007913129639935"},
		{name: "max hex", input: "0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", expected: "115792089237316195423570985008687907853269984665640564039457584007913129639935"},
		{name: "empty", input: "", err: ErrEmptyAmount},
		{name: "blank", input: "   ", err: ErrEmptyAmount},
		{name: "negative", input: "-1", err: ErrInvalidAmount},
		{name: "plus sign", input: "+1", err: ErrInvalidAmount},
		{name: "fraction", input: "1.5", err: ErrInvalidAmount},
		{name: "letters", input: "abc", err: ErrInvalidAmount},
		{name: "bare hex prefix", input: "0x", err: ErrInvalidAmount},
		{name: "bad hex digit", input: "0xfg", err: ErrInvalidAmount},
		{name: "underscore", input: "1_000", err: ErrInvalidAmount},
		{name: "max plus one", input: "115792089237316195423570985008687907853269984665640564039457584007913129639936", err: ErrAmountOverflow},
		{name: "hex 257 bits", input: "0x1ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", err: ErrAmountOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.input)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("ParseAmount(%q) error = %v, expected %v", tt.input, err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			}
			if got := FormatAmount(amount); got != tt.expected {
				t.Errorf("ParseAmount(%q) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMustParseAmountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	MustParseAmount("not a number")
}

func TestFormatAmountNil(t *testing.T) {
	if got := FormatAmount(nil); got != "0" {
		t.Errorf("FormatAmount(nil) = %q, expected \"0\"", got)
	}
}
