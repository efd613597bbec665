package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler turns a panicking handler into a 500 carrying the request id.
// Ledger work is already rolled back or compensated by the time the panic
// reaches this point, so only the response is left to settle.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			// the client went away; net/http expects this panic to propagate
			if err, ok := recovered.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(recovered)
			}

			requestID := GetRequestID(c)
			logger.Error("Panic recovered in API request", map[string]any{
				"panic":      fmt.Sprint(recovered),
				"route":      c.FullPath(),
				"method":     c.Request.Method,
				"request_id": requestID,
				"account_id": GetAccountID(c),
				"written":    c.Writer.Written(),
				"stack":      string(debug.Stack()),
			})

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
				Message: "Internal server error",
				Details: map[string]any{"requestId": requestID},
			})
		}()

		c.Next()
	}
}
