package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// RealIP sets the client IP into Gin context (key: "real_ip").
// The IP comes from c.ClientIP(), so X-Forwarded-For is honoured only when
// the direct peer is one of the engine's trusted proxies.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("real_ip", c.ClientIP())
		c.Next()
	}
}

// internalIP reports loopback and RFC 1918 / RFC 4193 addresses.
func internalIP(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && (ip.IsLoopback() || ip.IsPrivate())
}

// AllowPrivateIP lets internal callers (health checks, sidecars) past the
// rate limiter.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		return internalIP(ipFromCtx(c))
	}
}
