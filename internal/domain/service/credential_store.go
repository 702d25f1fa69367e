package service

// CredentialStore abstracts how a login credential is persisted and later
// checked. The default implementation stores the credential as-is and
// accepts anything, preserving the original no-real-authentication
// behavior; a hashing implementation can be substituted without touching
// the cart/checkout logic.
type CredentialStore interface {
	// Seal transforms a plaintext credential into its stored form.
	Seal(credential string) (string, error)

	// Check compares a plaintext credential with its stored form.
	Check(credential, stored string) bool
}
