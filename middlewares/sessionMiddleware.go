package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bitbucket.org/kuhldata/merchdash_backend/config"
	"bitbucket.org/kuhldata/merchdash_backend/models"
	"bitbucket.org/kuhldata/merchdash_backend/utils"
)

func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Request.Header.Get("token")
		if token == "" {
			c.Next()
			return
		}
		username, exists, err := config.GetRedisValue("Token:" + token)
		if err != nil || !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		ctx := utils.SetTokenInContext(c.Request.Context(), token)
		ctx = utils.SetUsernameInContext(ctx, username)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireSession rejects requests that carry no valid session token.
// SessionMiddleware lets anonymous requests pass so the login route can
// work; mutating routes stack this on top.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := utils.GetUsernameFromContext(c.Request.Context())
		if !ok || username == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin allows only admin users through. Imports and deletes are
// destructive, so viewers are read only.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		// service callers authenticated via bearer JWT carry the admin
		// flag directly
		if isAdmin, ok := utils.GetIsAdminFromContext(ctx); ok && isAdmin {
			c.Next()
			return
		}
		username, ok := utils.GetUsernameFromContext(ctx)
		if !ok || username == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		user, err := models.GetUserByUsername(ctx, username)
		if err != nil || user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			c.Abort()
			return
		}
		c.Request = c.Request.WithContext(utils.SetIsAdminInContext(ctx, true))
		c.Next()
	}
}
