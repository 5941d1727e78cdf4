package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"nftmarket/model"
	"nftmarket/service"
)

// WalletKey gin context key of the authenticated wallet
const WalletKey = "wallet"

// Authenticator resolves an access token to its user
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// Auth requires a valid "Authorization: Bearer <token>" header
func Auth(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, service.ErrRes{ErrStr: "Access token missing"})
			return
		}
		user, err := a.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, service.ErrRes{ErrStr: err.Error()})
			return
		}
		c.Set(WalletKey, user.WalletAddress)
		c.Next()
	}
}

// Wallet the wallet stored by Auth, empty on public routes
func Wallet(c *gin.Context) string {
	return c.GetString(WalletKey)
}
