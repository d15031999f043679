package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash for the given password.
func HashPassword(p string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(p), 12)
	return string(bytes), err
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
	return err == nil
}
