package word

// Word is the set of unsigned integer types RC5 can operate on.
type Word interface {
	uint8 | uint16 | uint32 | uint64
}

// Magic constants for each supported width.
// P = Odd((e-2)*2^w), Q = Odd((phi-1)*2^w).
const (
	P8  uint8  = 0xB7
	Q8  uint8  = 0x9F
	P16 uint16 = 0xB7E1
	Q16 uint16 = 0x9E37
	P32 uint32 = 0xB7E15163
	Q32 uint32 = 0x9E3779B9
	P64 uint64 = 0xB7E151628AED2A6B
	Q64 uint64 = 0x9E3779B97F4A7C15
)

// Bytes returns the width of W in bytes.
func Bytes[W Word]() int {
	var w W
	switch any(w).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// Bits returns the width of W in bits.
func Bits[W Word]() int { return 8 * Bytes[W]() }

// Zero returns the zero word.
func Zero[W Word]() W { return 0 }

// Magic returns the key schedule constants P and Q for W.
func Magic[W Word]() (p, q W) {
	// Constants go through a uint64 variable: a constant conversion to W
	// must be representable in every width of the type set.
	var wp, wq uint64
	var w W
	switch any(w).(type) {
	case uint8:
		wp, wq = uint64(P8), uint64(Q8)
	case uint16:
		wp, wq = uint64(P16), uint64(Q16)
	case uint32:
		wp, wq = uint64(P32), uint64(Q32)
	default:
		wp, wq = P64, Q64
	}
	return W(wp), W(wq)
}

// FromByte widens a key byte to a word.
func FromByte[W Word](b byte) W { return W(b) }

// FromInt converts n to a word, keeping the low w bits.
func FromInt[W Word](n int) W { return W(n) }

// Add returns a + b mod 2^w.
func Add[W Word](a, b W) W { return a + b }

// Sub returns a - b mod 2^w.
func Sub[W Word](a, b W) W { return a - b }
