package ipformat

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

// sampleOctets covers the interesting octet boundaries: zero, octal
// single-digit edge, powers of two, and the maximum.
var sampleOctets = []int{0, 1, 5, 7, 8, 9, 63, 64, 127, 128, 255}

func TestStandardFormIsIdempotent(t *testing.T) {
	converter, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	forEachSampleQuad(func(canonical string) {
		expansion, err := converter.Expand(ctx, canonical)
		if err != nil {
			t.Fatalf("Expand(%q) error = %v", canonical, err)
		}

		normalization, err := converter.Normalize(ctx, expansion.Standard)
		if err != nil {
			t.Fatalf("Normalize(%q) error = %v", expansion.Standard, err)
		}
		if normalization.Canonical != canonical {
			t.Fatalf("Normalize(%q) = %q, want %q", expansion.Standard, normalization.Canonical, canonical)
		}
	})
}

func TestDecimalAndHexEncodeSameValue(t *testing.T) {
	converter, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	forEachSampleQuad(func(canonical string) {
		expansion, err := converter.Expand(ctx, canonical)
		if err != nil {
			t.Fatalf("Expand(%q) error = %v", canonical, err)
		}

		hexValue, err := strconv.ParseUint(strings.TrimPrefix(expansion.Hex32, "0x"), 16, 32)
		if err != nil {
			t.Fatalf("ParseUint(%q) error = %v", expansion.Hex32, err)
		}
		if uint32(hexValue) != expansion.Decimal32 {
			t.Fatalf("%q: hex %q = %d, decimal = %d", canonical, expansion.Hex32, hexValue, expansion.Decimal32)
		}
	})
}

func TestOctalFormRoundTrips(t *testing.T) {
	converter, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	forEachSampleQuad(func(canonical string) {
		expansion, err := converter.Expand(ctx, canonical)
		if err != nil {
			t.Fatalf("Expand(%q) error = %v", canonical, err)
		}

		normalization, err := converter.Normalize(ctx, expansion.Octal)
		if err != nil {
			t.Fatalf("Normalize(%q) error = %v", expansion.Octal, err)
		}
		if normalization.Canonical != canonical {
			t.Fatalf("Normalize(%q) = %q, want %q", expansion.Octal, normalization.Canonical, canonical)
		}
	})
}

func TestOverflowFormRoundTrips(t *testing.T) {
	converter, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	forEachSampleQuad(func(canonical string) {
		expansion, err := converter.Expand(ctx, canonical)
		if err != nil {
			t.Fatalf("Expand(%q) error = %v", canonical, err)
		}
		if expansion.Overflow == "" {
			return
		}

		normalization, err := converter.Normalize(ctx, expansion.Overflow)
		if err != nil {
			t.Fatalf("Normalize(%q) error = %v", expansion.Overflow, err)
		}
		if normalization.Canonical != canonical {
			t.Fatalf("Normalize(%q) = %q, want %q", expansion.Overflow, normalization.Canonical, canonical)
		}
	})
}

// TestTruncatedDetectionPadsMissingOctets verifies the padding semantics of
// the truncated detection rule over the sample octet grid: the final group
// always lands in the last octet, with zeros filling the gap.
func TestTruncatedDetectionPadsMissingOctets(t *testing.T) {
	converter, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	for _, g1 := range sampleOctets {
		for _, g2 := range sampleOctets {
			input := fmt.Sprintf("%d.%d", g1, g2)
			want := fmt.Sprintf("%d.0.0.%d", g1, g2)

			normalization, err := converter.Normalize(ctx, input)
			if err != nil {
				t.Fatalf("Normalize(%q) error = %v", input, err)
			}
			if normalization.Canonical != want {
				t.Fatalf("Normalize(%q) = %q, want %q", input, normalization.Canonical, want)
			}

			for _, g3 := range sampleOctets {
				input := fmt.Sprintf("%d.%d.%d", g1, g2, g3)
				want := fmt.Sprintf("%d.%d.0.%d", g1, g2, g3)

				normalization, err := converter.Normalize(ctx, input)
				if err != nil {
					t.Fatalf("Normalize(%q) error = %v", input, err)
				}
				if normalization.Canonical != want {
					t.Fatalf("Normalize(%q) = %q, want %q", input, normalization.Canonical, want)
				}
			}
		}
	}
}

// TestTruncatedDetectionSplitsCombinedGroup verifies the two-group branch
// where the second group encodes the final two octets.
func TestTruncatedDetectionSplitsCombinedGroup(t *testing.T) {
	converter, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	for _, combined := range []int{256, 257, 999, 4095, 65535} {
		input := fmt.Sprintf("10.%d", combined)
		want := fmt.Sprintf("10.0.%d.%d", combined/256, combined%256)

		normalization, err := converter.Normalize(ctx, input)
		if err != nil {
			t.Fatalf("Normalize(%q) error = %v", input, err)
		}
		if normalization.Canonical != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, normalization.Canonical, want)
		}
	}
}

func forEachSampleQuad(fn func(canonical string)) {
	for _, o0 := range sampleOctets {
		for _, o1 := range sampleOctets {
			for _, o2 := range sampleOctets {
				for _, o3 := range sampleOctets {
					fn(fmt.Sprintf("%d.%d.%d.%d", o0, o1, o2, o3))
				}
			}
		}
	}
}
