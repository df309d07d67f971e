package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"clinic-agenda/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxOperatorKey = "operator"

// OperatorMiddleware guards the manual maintenance endpoints with the
// operator JWT.
type OperatorMiddleware struct {
	tokens *jwt.Service
}

func NewOperatorMiddleware(tokens *jwt.Service) *OperatorMiddleware {
	return &OperatorMiddleware{tokens: tokens}
}

func (m *OperatorMiddleware) RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Operator token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Operator token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxOperatorKey, claims.Subject)
		c.Next()
	}
}

func GetOperator(c *gin.Context) (string, bool) {
	operator, exists := c.Get(ctxOperatorKey)
	if !exists {
		return "", false
	}
	name, ok := operator.(string)
	return name, ok
}
