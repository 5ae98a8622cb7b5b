package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dicetrails/go-shop-api/internal/store"
)

// AdminOnly gates admin endpoints by looking the caller up by the email in
// the X-User-Email header and checking the admin flag. There are no session
// tokens; identity is the opaque email the client presents.
func AdminOnly(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetHeader("X-User-Email")
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing user email"})
			return
		}

		user, err := st.UserByEmail(email)
		if err != nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}

		c.Set("adminEmail", user.Email)
		c.Next()
	}
}

func AdminEmail(c *gin.Context) string {
	email, _ := c.Get("adminEmail")
	e, _ := email.(string)
	return e
}
