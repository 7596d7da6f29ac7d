package word

import "testing"

func TestWidths(t *testing.T) {
	tests := []struct {
		name  string
		bytes int
		bits  int
	}{
		{"uint8", Bytes[uint8](), Bits[uint8]()},
		{"uint16", Bytes[uint16](), Bits[uint16]()},
		{"uint32", Bytes[uint32](), Bits[uint32]()},
		{"uint64", Bytes[uint64](), Bits[uint64]()},
	}
	want := []int{1, 2, 4, 8}
	for i, tt := range tests {
		if tt.bytes != want[i] {
			t.Errorf("%s: Bytes = %d, want %d", tt.name, tt.bytes, want[i])
		}
		if tt.bits != 8*want[i] {
			t.Errorf("%s: Bits = %d, want %d", tt.name, tt.bits, 8*want[i])
		}
	}
}

func TestMagicConstants(t *testing.T) {
	if p, q := Magic[uint8](); p != 0xB7 || q != 0x9F {
		t.Errorf("Magic[uint8] = %#x, %#x", p, q)
	}
	if p, q := Magic[uint16](); p != 0xB7E1 || q != 0x9E37 {
		t.Errorf("Magic[uint16] = %#x, %#x", p, q)
	}
	if p, q := Magic[uint32](); p != 0xB7E15163 || q != 0x9E3779B9 {
		t.Errorf("Magic[uint32] = %#x, %#x", p, q)
	}
	if p, q := Magic[uint64](); p != 0xB7E151628AED2A6B || q != 0x9E3779B97F4A7C15 {
		t.Errorf("Magic[uint64] = %#x, %#x", p, q)
	}
}

// Both constants must be odd and non-zero for every width.
func TestMagicConstantsOdd(t *testing.T) {
	check := func(name string, p, q uint64) {
		if p == 0 || q == 0 {
			t.Errorf("%s: zero magic constant", name)
		}
		if p&1 == 0 || q&1 == 0 {
			t.Errorf("%s: magic constants must be odd, got %#x, %#x", name, p, q)
		}
	}
	p8, q8 := Magic[uint8]()
	check("uint8", uint64(p8), uint64(q8))
	p16, q16 := Magic[uint16]()
	check("uint16", uint64(p16), uint64(q16))
	p32, q32 := Magic[uint32]()
	check("uint32", uint64(p32), uint64(q32))
	p64, q64 := Magic[uint64]()
	check("uint64", p64, q64)
}

func TestWraparound(t *testing.T) {
	if got := Add[uint8](0xFF, 1); got != 0 {
		t.Fatalf("Add overflow: got %#x, want 0", got)
	}
	if got := Sub[uint16](0, 1); got != 0xFFFF {
		t.Fatalf("Sub underflow: got %#x, want 0xffff", got)
	}
	if got := Add[uint32](0xFFFFFFFF, 0xFFFFFFFF); got != 0xFFFFFFFE {
		t.Fatalf("Add overflow: got %#x, want 0xfffffffe", got)
	}
	if got := Sub[uint64](1, 2); got != ^uint64(0) {
		t.Fatalf("Sub underflow: got %#x", got)
	}
}

func TestConversions(t *testing.T) {
	if got := FromByte[uint64](0xAB); got != 0xAB {
		t.Fatalf("FromByte: got %#x", got)
	}
	if got := FromInt[uint8](0x1FF); got != 0xFF {
		t.Fatalf("FromInt truncation: got %#x, want 0xff", got)
	}
	if got := FromInt[uint32](-1); got != 0xFFFFFFFF {
		t.Fatalf("FromInt(-1): got %#x", got)
	}
	if Zero[uint16]() != 0 {
		t.Fatalf("Zero not zero")
	}
}
