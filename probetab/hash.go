package probetab

// HashFunc maps a key to its home slot index in [0, capacity).
type HashFunc func(key string, capacity int) int

// PolyHash is the default hash: a base-31 polynomial over the key's bytes,
// reduced modulo capacity at every step. The result depends on the capacity,
// so it must be recomputed (never cached) after a resize.
func PolyHash(key string, capacity int) int {
	h := 0
	for i := 0; i < len(key); i++ {
		h = (h*31 + int(key[i])) % capacity
	}

	return h
}
