package word

// RotateLeft rotates x left by y mod w bits.
// A zero effective amount returns x without shifting by the full width.
func RotateLeft[W Word](x, y W) W {
	n := W(Bits[W]())
	a := y % n
	if a == 0 {
		return x
	}
	return x<<a | x>>(n-a)
}

// RotateRight rotates x right by y mod w bits.
func RotateRight[W Word](x, y W) W {
	n := W(Bits[W]())
	a := y % n
	if a == 0 {
		return x
	}
	return x>>a | x<<(n-a)
}
