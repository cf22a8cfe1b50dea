package middleware

import (
	"github.com/gin-gonic/gin"
)

const anonymousUser = "anonymous"

// NoAuth is a pass-through middleware for when AUTH_MODE=none.
// It allows all requests without authentication.
func NoAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Set a placeholder user for logging and preset ownership.
		// Without auth the single local user manages presets.
		c.Set("user_id", anonymousUser)
		c.Set("user_role", roleAdmin)
		c.Next()
	}
}
