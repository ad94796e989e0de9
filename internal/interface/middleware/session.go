package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dentalcare360/storefront/internal/application"
	"github.com/dentalcare360/storefront/pkg/response"
)

// SessionRequired guards account routes: requests are rejected while the
// store is in guest mode. The session lives in the account store itself, so
// there is no token to parse.
func SessionRequired(accounts *application.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !accounts.IsAuthenticated() {
			response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
