package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"listkeeper/internal/auth"
)

const identityKey = "listkeeper.identity"

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// authRequired runs the session guard before the handler body and
// short-circuits on failure. Handlers behind it can rely on identityFrom
// returning a verified claim set.
func authRequired(guard *auth.Guard, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := guard.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			// The internal failure kind is logged but never sent to the client.
			logger.WithError(err).Debug("session guard rejected request")

			message := "invalid token"
			if errors.Is(err, auth.ErrMissingCredentials) {
				message = "missing credentials"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

func identityFrom(c *gin.Context) (*auth.Claims, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
