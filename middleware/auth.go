// middleware/auth.go
package middleware

import (
	"strings"

	"dochouse/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware guards routes that require a bearer token. On
// success the token's email claim is stored in the context as "email".
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.AbortWithError(c, utils.NewError(utils.ErrUnauthorized, "Missing or invalid Authorization header"))
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			utils.AbortWithError(c, utils.NewError(utils.ErrUnauthorized, "Invalid token"))
			return
		}

		c.Set("email", email)
		c.Next()
	}
}
