package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/dto"
)

const accountIDKey = "account_id"

// Authenticator resolves a bearer token to an account id
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// RequireAuth rejects requests without a valid bearer token
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidToken,
				Message: "Missing bearer token",
			})
			return
		}

		accountID, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			status := http.StatusUnauthorized
			message := "Invalid or expired token"
			if !domainerr.IsAuthError(err) {
				status = http.StatusInternalServerError
				message = "Internal server error"
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(status, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: message,
			})
			return
		}

		c.Set(accountIDKey, accountID)
		c.Next()
	}
}

// GetAccountID returns the authenticated account id, empty when unauthenticated
func GetAccountID(c *gin.Context) string {
	return c.GetString(accountIDKey)
}
