package fraction

// gcd is the Euclidean algorithm on magnitudes. gcd(0, b) is b.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// absUint64 is |v|; it is exact for minInt64, where -v would overflow.
func absUint64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
