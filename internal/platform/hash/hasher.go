package hash

// Hasher defines methods for one-way password hashing.
type Hasher interface {
	Hash(plain string) (string, error)
	// Verify reports whether plain matches hashed. A mismatch is not an error;
	// an error is returned only when hashed is malformed.
	Verify(plain, hashed string) (bool, error)
}
