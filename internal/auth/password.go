package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/ecap-org/ecap-directory/internal/apperr"
)

// PasswordCost is the bcrypt work factor for admin passwords.
const PasswordCost = 10

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

var ErrPasswordTooLong = apperr.Validation("password must be at most %d bytes", maxPasswordBytes)

// HashPassword returns a salted bcrypt hash of plaintext.
func HashPassword(plaintext string) (string, error) {
	if len(plaintext) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), PasswordCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext produced hash. Malformed hashes never match.
func VerifyPassword(plaintext, hash string) bool {
	if hash == "" || len(plaintext) > maxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
