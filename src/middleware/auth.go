package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vendora/vendora-server/src/models"
	"github.com/vendora/vendora-server/src/services"
)

// UserContextKey is the gin context key the authenticated account is
// stored under
const UserContextKey = "user"

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, models.NewError(http.StatusUnauthorized, message))
	c.Abort()
}

// RequireAuth verifies the bearer token and the account behind it:
// signature and expiry first, then existence, then status. Banned
// accounts are rejected even when their token is still valid. On
// success the account is attached to the request context.
//
// RequireAuth must run before RequireRoles on every protected route.
func RequireAuth(tokens *services.TokenService, users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			if errors.Is(err, services.ErrTokenExpired) {
				abortUnauthorized(c, "token expired")
			} else {
				abortUnauthorized(c, "invalid token")
			}
			return
		}

		id, err := claims.SubjectID()
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		user, err := users.FindForAuth(c.Request.Context(), id)
		if err != nil {
			abortUnauthorized(c, "user not found")
			return
		}

		if user.IsBanned() {
			abortUnauthorized(c, "account banned")
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// RequireRoles rejects authenticated accounts whose role is not in the
// allowed set. An empty set means no restriction. Roles are declared
// explicitly at the route definition; there is no runtime metadata
// lookup.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		if len(allowed) == 0 {
			c.Next()
			return
		}

		user := CurrentUser(c)
		if user == nil {
			// RequireAuth did not run; treat as unauthenticated
			abortUnauthorized(c, "missing authentication")
			return
		}

		if _, ok := allowed[user.Role]; !ok {
			c.JSON(http.StatusForbidden, models.NewError(http.StatusForbidden,
				"You do not have permission to access this resource"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the account attached by RequireAuth, or nil
func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get(UserContextKey)
	if !exists {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
