package gf929

// Location converts a 0-based position within a data[] slice of length
// dataLen into the "location number" convention the Berlekamp-Massey and
// Chien-search steps operate in (counting from the end of the buffer, the
// same space Decode's computed loc[] values live in). Index is its
// inverse. Callers needing to declare a known erasure index call
// Location to obtain the eras_pos[] value Decode expects; callers reading
// back corrected positions from eras_pos call Index.
func Location(dataLen, index int) int {
	return dataLen - index
}

// Index is the inverse of Location.
func Index(dataLen, loc int) int {
	return dataLen - loc
}
