package service

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier decides whether a name, email and password identify an administrator
type CredentialVerifier interface {
	Verify(name, email, password string) bool
}

// BcryptVerifier checks a single configured administrator against a bcrypt hash
type BcryptVerifier struct {
	name         string
	email        string
	passwordHash []byte
}

// NewBcryptVerifier creates a verifier for one administrator
func NewBcryptVerifier(name, email, passwordHash string) *BcryptVerifier {
	return &BcryptVerifier{
		name:         strings.TrimSpace(name),
		email:        strings.TrimSpace(email),
		passwordHash: []byte(passwordHash),
	}
}

// Verify implements CredentialVerifier
func (v *BcryptVerifier) Verify(name, email, password string) bool {
	if v.name == "" || len(v.passwordHash) == 0 {
		return false
	}
	nameOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(name)), []byte(v.name)) == 1
	emailOK := strings.EqualFold(strings.TrimSpace(email), v.email)
	if !nameOK || !emailOK {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil
}

// HashPassword hashes a password with bcrypt's default cost
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
