package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if sum, ok := AddOverflowSafe(math.MaxInt-1, 1); !ok || sum != math.MaxInt {
		t.Fatalf("AddOverflowSafe(MaxInt-1,1)=%d,%v want MaxInt,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte("oranges")
	got, ok := Slice(data, 1, 3)
	if !ok || string(got) != "ran" {
		t.Fatalf("Slice(data,1,3)=%q,%v want \"ran\",true", got, ok)
	}
	if cap(got) != 3 {
		t.Fatalf("Slice should cap the result at its length, cap=%d", cap(got))
	}
	if got, ok := Slice(data, len(data), 0); !ok || len(got) != 0 {
		t.Fatalf("empty slice at the end should be valid: %q, %v", got, ok)
	}
	if _, ok := Slice(data, 5, 3); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if _, ok := Slice(data, 2, math.MaxInt); ok {
		t.Fatalf("Slice should fail when off+n overflows")
	}
	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(data, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}

	if Has(data, 6, 2) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 6, 1) {
		t.Fatalf("Has should be true for the last byte")
	}
}
