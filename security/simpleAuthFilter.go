package security

import (
	"changeflow/bizerror"

	"github.com/gin-gonic/gin"
)

// AdminRequired guards destructive routes. It is a pass-through while the
// admin gate is disabled.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !AdminGateEnabled() {
			c.Next()
			return
		}
		token, _ := c.Cookie(KeySecToken)
		if token == "" {
			token = c.GetHeader("X-Admin-Token")
		}
		if token == "" {
			panic(bizerror.ErrUnauthenticated)
		}
		if _, found := TokenCache.Get(token); !found {
			panic(bizerror.ErrUnauthenticated)
		}
		c.Next()
	}
}
