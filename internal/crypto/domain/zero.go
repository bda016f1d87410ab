package domain

// Zero overwrites b with zeros so key material and plaintext do not linger in memory.
func Zero(b []byte) {
	clear(b)
}
