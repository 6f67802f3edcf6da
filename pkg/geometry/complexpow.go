package geometry

// Cpow raises a complex number to a non-negative integer power by repeated
// multiplication. The escape-time engines depend on this being bit-for-bit
// reproducible across runs, so no fast-power shortcut is used beyond the
// unrolled n=1 and n=2 cases.
func Cpow(c complex128, n uint64) complex128 {
	switch n {
	case 0:
		return complex(1, 0)
	case 1:
		return c
	case 2:
		return c * c
	}
	result := c
	for i := uint64(1); i < n; i++ {
		result *= c
	}
	return result
}
