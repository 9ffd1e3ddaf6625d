package ports

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns errs.ErrForbidden when the password does not match.
	Compare(hash, password string) error
}
