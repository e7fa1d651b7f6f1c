// middleware/admin.go
package middleware

import (
	"dochouse/services/account"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware must run after JWTAuthMiddleware. It looks up
// the authenticated user and rejects anyone without the admin role.
func AdminOnlyMiddleware(accounts account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			utils.AbortWithError(c, utils.NewError(utils.ErrUnauthorized, "Missing authenticated identity"))
			return
		}

		isAdmin, err := accounts.IsAdmin(email)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}
		if !isAdmin {
			utils.AbortWithError(c, utils.NewError(utils.ErrForbidden, "Admin access required"))
			return
		}

		c.Next()
	}
}
