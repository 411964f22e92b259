package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ClientIDHeader  = "X-Client-ID"
	ClientIDKey     = "ClientID"
	AnonymousClient = "anonymous"
)

// ClientID stores the caller's X-Client-ID in the context. Callers that send
// none share the anonymous notification queue and in-flight guard.
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(ClientIDHeader))
		if id == "" {
			id = AnonymousClient
		}
		c.Set(ClientIDKey, id)
		c.Next()
	}
}

// GetClientID returns the id set by ClientID, or AnonymousClient.
func GetClientID(c *gin.Context) string {
	if id := c.GetString(ClientIDKey); id != "" {
		return id
	}
	return AnonymousClient
}
