package gateway

import "time"

// PasswordHasher hashes and verifies account passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash
	Compare(hash, password string) error
}

// TokenIssuer issues and resolves bearer tokens
type TokenIssuer interface {
	// Issue returns a signed token for the account and its expiry
	Issue(accountID string) (token string, expiresAt time.Time, err error)

	// Resolve returns the account id carried by a valid token.
	//
	// Possible errors:
	// - ErrInvalidToken: If the token is malformed, expired or badly signed
	Resolve(token string) (string, error)
}
