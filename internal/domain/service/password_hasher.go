package service

// PasswordHasher abstracts one-way password hashing so the use cases never
// see plaintext-equality comparisons.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
