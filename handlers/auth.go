// handlers/auth.go
package handlers

import (
	"net/http"

	"dochouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IssueTokenHandler handles POST /jwt. The request body is the
// identity payload to embed in the token; it is signed as-is with a
// fixed expiry.
func IssueTokenHandler(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.ErrBadRequest, err.Error())
		return
	}

	token, err := utils.IssueToken(payload, utils.TokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to sign token", zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
