package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id and logs its start and completion
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header(RequestIDHeader, reqID)

		entry := log.WithFields(logrus.Fields{
			"req_id":      reqID,
			"http_method": c.Request.Method,
			"uri":         c.Request.URL.RequestURI(),
			"remote_addr": c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
		entry.Debug("request started")

		c.Next()

		entry = entry.WithFields(logrus.Fields{
			"resp_status":       c.Writer.Status(),
			"resp_bytes_length": c.Writer.Size(),
			"resp_elapsed_ms":   float64(time.Since(start).Nanoseconds()) / 1000000.0,
		})
		if actor := Actor(c); actor != "" {
			entry = entry.WithField("actor", actor)
		}
		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Warn("request complete")
			return
		}
		entry.Info("request complete")
	}
}
