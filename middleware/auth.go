package middleware

import (
	"net/http"

	"havenhotel/utils"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key under which the authenticated email is stored.
const IdentityKey = "userEmail"

// SessionAuth enforces a valid session cookie on protected routes. On success
// the decoded email is attached to the request context; every failure is the
// same opaque 401.
func SessionAuth(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("token")
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		email, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		c.Set(IdentityKey, email)
		c.Next()
	}
}

// AuthedEmail returns the authenticated identity set by SessionAuth.
func AuthedEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}
