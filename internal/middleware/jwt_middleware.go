package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AliJone/Gaza/internal/utils"
)

// JWTMiddleware guards the moderation endpoints with bearer tokens.
type JWTMiddleware struct {
	secret []byte
}

// NewJWTMiddleware constructs a JWTMiddleware verifying tokens against
// the given secret.
func NewJWTMiddleware(secret string) *JWTMiddleware {
	return &JWTMiddleware{secret: []byte(secret)}
}

// Handle validates the Authorization header and stores the moderator
// identity on the request context.
func (m *JWTMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, 401, "UNAUTHORIZED", "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, 401, "UNAUTHORIZED", "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(m.secret, parts[1])
		if err != nil {
			utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
