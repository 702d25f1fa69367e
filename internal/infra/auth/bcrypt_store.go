package auth

import (
	"golang.org/x/crypto/bcrypt"

	"gwdining/internal/domain/service"
)

// bcryptStore is a CredentialStore backed by bcrypt, for deployments
// that want real credential checks instead of the permissive default.
type bcryptStore struct {
	// For bcrypt, the cost factor could be configurable here if needed.
	// cost int
}

// NewBcryptStore is the constructor for bcryptStore.
// It returns the implementation as a service.CredentialStore interface.
func NewBcryptStore() service.CredentialStore {
	return &bcryptStore{}
}

// Seal generates a salted hash from a plaintext credential using bcrypt.
// bcrypt automatically handles salt generation.
func (s *bcryptStore) Seal(credential string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	return string(bytes), err
}

// Check compares a plaintext credential with a bcrypt hash.
func (s *bcryptStore) Check(credential, stored string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(credential))
	// err is nil if the credential and hash match.
	return err == nil
}
