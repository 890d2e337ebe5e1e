package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"shopsync-backend/utils"
)

// AuthRequired validates the bearer token and puts the caller's uid on the
// context. With redis available, signed-out tokens are rejected via the
// blacklist written by the logout handler.
func AuthRequired(secret string, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.Unauthorized(c, "Missing or malformed authorization header")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		if rdb != nil {
			if n, err := rdb.Exists(c.Request.Context(), "bl:"+tokenString).Result(); err == nil && n > 0 {
				utils.Unauthorized(c, "Token has been signed out")
				c.Abort()
				return
			}
		}

		claims, err := utils.ParseToken(secret, tokenString)
		if err != nil {
			utils.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_uid", claims.UserUid)
		c.Set("user_email", claims.Email)
		c.Set("token", tokenString)
		if claims.ExpiresAt != nil {
			c.Set("token_expires", claims.ExpiresAt.Time)
		}
		c.Next()
	}
}
