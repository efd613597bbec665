package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
)

// DefaultTokenTTL is used when no TTL is configured
const DefaultTokenTTL = 30 * 24 * time.Hour

// JWTIssuer implements gateway.TokenIssuer with HS256 signed tokens
type JWTIssuer struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTIssuer creates a token issuer
func NewJWTIssuer(secret, issuer string, ttl time.Duration, timeProvider coreport.TimeProvider) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTIssuer{
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

var _ gateway.TokenIssuer = (*JWTIssuer)(nil)

// Issue signs a token whose subject is the account id
func (j *JWTIssuer) Issue(accountID string) (string, time.Time, error) {
	now := j.timeProvider.Now()
	expiresAt := now.Add(j.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		Issuer:    j.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Resolve verifies the token and returns its subject
func (j *JWTIssuer) Resolve(token string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.timeProvider.Now),
		jwt.WithExpirationRequired(),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", errs.ErrInvalidToken
	}
	return claims.Subject, nil
}
