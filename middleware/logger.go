package middleware

import (
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"nftmarket/log"
	"nftmarket/metrics"
	"nftmarket/service"
)

// Logger logs one line per request and records request metrics
func Logger(l *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		code := c.Writer.Status()
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(code)).Inc()
		metrics.HTTPLatency.WithLabelValues(c.Request.Method, route).Observe(elapsed.Seconds())

		kv := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", code,
			"latency", elapsed.String(),
			"ip", c.ClientIP(),
		}
		if w := Wallet(c); w != "" {
			kv = append(kv, "wallet", w)
		}
		if len(c.Errors) > 0 {
			kv = append(kv, "err", c.Errors.String())
		}
		switch {
		case code >= http.StatusInternalServerError:
			l.Error("request", kv...)
		case code >= http.StatusBadRequest:
			l.Warn("request", kv...)
		default:
			l.Info("request", kv...)
		}
	}
}

// Recovery turns a panic into a 500 with the standard error body
func Recovery(l *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				l.Error("panic serving request", "path", c.Request.URL.Path, "panic", r, "stack", string(debug.Stack()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, service.ErrRes{ErrStr: "Internal server error"})
			}
		}()
		c.Next()
	}
}
