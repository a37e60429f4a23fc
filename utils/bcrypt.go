package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash for storage on the users table.
func HashPassword(plain string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
}

// ComparePassword checks a login attempt against the stored hash. Any
// non nil error means the attempt is rejected.
func ComparePassword(storedHash string, attempt string) error {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(attempt))
}
