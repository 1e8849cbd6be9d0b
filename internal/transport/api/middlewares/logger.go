package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithFields(logrus.Fields{
		"component": "transport",
		"module":    "api",
	})
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
			"requestID": c.GetString(RequestIDKey),
		}

		if len(c.Errors) > 0 {
			entry.WithFields(fields).WithError(c.Errors.Last()).Warn("request failed")
			return
		}
		entry.WithFields(fields).Info("request")
	}
}
