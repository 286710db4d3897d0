package auth

import (
	"crypto/subtle"
	"portfolio/internal/providers"
	"portfolio/internal/structures"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// CredentialVerifier decides whether a username/password pair may log in.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// AllowListVerifier compares against plaintext credentials from config. It
// offers no protection for the stored secrets; prefer BcryptVerifier.
type AllowListVerifier struct {
	creds map[string]string
}

func NewAllowListVerifier(creds map[string]string) *AllowListVerifier {
	return &AllowListVerifier{creds: creds}
}

func (v *AllowListVerifier) Verify(username, password string) bool {
	expected, ok := v.creds[username]
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(password)) == 1
}

type BcryptVerifier struct {
	hashes map[string][]byte
}

func NewBcryptVerifier(hashes map[string]string) *BcryptVerifier {
	v := &BcryptVerifier{hashes: make(map[string][]byte, len(hashes))}
	for user, h := range hashes {
		v.hashes[user] = []byte(h)
	}
	return v
}

func (v *BcryptVerifier) Verify(username, password string) bool {
	hash, ok := v.hashes[username]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// HashPassword returns a bcrypt hash suitable for auth.credentials[].passwordHash.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// NewCredentialVerifierProvider uses bcrypt as soon as one hash is configured;
// plaintext entries are then ignored.
func NewCredentialVerifierProvider(conf *structures.Config, logger providers.Logger) CredentialVerifier {
	hashes := make(map[string]string)
	plain := make(map[string]string)
	for _, c := range conf.Auth.Credentials {
		if c.PasswordHash != "" {
			hashes[c.Username] = c.PasswordHash
		} else {
			plain[c.Username] = c.Password
		}
	}

	if len(hashes) > 0 {
		if len(plain) > 0 {
			logger.Warnf(providers.TypeAuth, "Ignoring %d plaintext credentials, bcrypt hashes are configured", len(plain))
		}
		return NewBcryptVerifier(hashes)
	}
	if len(plain) == 0 {
		logger.Warnf(providers.TypeAuth, "No admin credentials configured, every login will fail")
	} else {
		logger.Warnf(providers.TypeAuth, "Admin credentials are stored in plaintext, use passwordHash instead")
	}
	return NewAllowListVerifier(plain)
}
