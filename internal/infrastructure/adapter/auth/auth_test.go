package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/companion-ledger/mocks/port/core"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	t.Run("Round trip", func(t *testing.T) {
		hash, err := h.Hash("secret1")
		require.NoError(t, err)
		assert.NotEqual(t, "secret1", hash)

		assert.NoError(t, h.Compare(hash, "secret1"))
		assert.ErrorIs(t, h.Compare(hash, "secret2"), errs.ErrUnauthenticated)
	})

	t.Run("Garbage hash", func(t *testing.T) {
		assert.ErrorIs(t, h.Compare("not-a-hash", "secret1"), errs.ErrUnauthenticated)
	})

	t.Run("Password too long", func(t *testing.T) {
		_, err := h.Hash(strings.Repeat("x", 73))
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Invalid cost falls back", func(t *testing.T) {
		assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	})
}

func TestJWTIssuer(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	secret := "0123456789abcdef0123456789abcdef"

	clock := func(t *testing.T, at time.Time) *mockcore.MockTimeProvider {
		tp := mockcore.NewMockTimeProvider(t)
		tp.EXPECT().Now().Return(at).Maybe()
		return tp
	}

	t.Run("Issue and resolve", func(t *testing.T) {
		// Arrange
		issuer, err := NewJWTIssuer(secret, "companion-ledger", time.Hour, clock(t, now))
		require.NoError(t, err)

		// Act
		token, expiresAt, err := issuer.Issue("acct_1")
		require.NoError(t, err)
		subject, resolveErr := issuer.Resolve(token)

		// Assert
		assert.Equal(t, now.Add(time.Hour), expiresAt)
		require.NoError(t, resolveErr)
		assert.Equal(t, "acct_1", subject)
	})

	t.Run("Expired token", func(t *testing.T) {
		signer, err := NewJWTIssuer(secret, "", time.Hour, clock(t, now))
		require.NoError(t, err)
		token, _, err := signer.Issue("acct_1")
		require.NoError(t, err)

		later, err := NewJWTIssuer(secret, "", time.Hour, clock(t, now.Add(2*time.Hour)))
		require.NoError(t, err)

		_, err = later.Resolve(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Wrong secret or issuer", func(t *testing.T) {
		signer, err := NewJWTIssuer(secret, "a", time.Hour, clock(t, now))
		require.NoError(t, err)
		token, _, err := signer.Issue("acct_1")
		require.NoError(t, err)

		otherSecret, err := NewJWTIssuer(strings.Repeat("z", 32), "a", time.Hour, clock(t, now))
		require.NoError(t, err)
		otherIssuer, err := NewJWTIssuer(secret, "b", time.Hour, clock(t, now))
		require.NoError(t, err)

		_, err = otherSecret.Resolve(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
		_, err = otherIssuer.Resolve(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Unsigned token is rejected", func(t *testing.T) {
		issuer, err := NewJWTIssuer(secret, "", time.Hour, clock(t, now))
		require.NoError(t, err)
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "acct_1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.Resolve(unsigned)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Missing secret", func(t *testing.T) {
		_, err := NewJWTIssuer("", "", time.Hour, clock(t, now))
		assert.Error(t, err)
	})
}
