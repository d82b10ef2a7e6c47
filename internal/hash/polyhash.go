package hash

// PolynomialHash - Salted polynomial rolling hash over the runes of s, reduced modulo length at every step:
//
//	h = (h*salt + r) mod length
//
// The result is always within 0 and length - 1 for a positive length.
func PolynomialHash(s string, salt, length int64) int64 {
	var h int64
	for _, r := range s {
		h = (h*salt + int64(r)) % length
	}
	return h
}
