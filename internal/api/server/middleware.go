package server

import (
	"net/http"
	"time"

	"github.com/bz888/govhelper/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID echoes the caller's X-Request-ID or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.Infof("%s %s %d %s id=%s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), c.GetString("request_id"))
	}
}

// recoverJSON turns a panic in the rest of the chain into a 500 with the body
// built by fn.
func recoverJSON(l *logger.Logger, fn func(recovered any) gin.H) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				l.Errorf("Error in %s: %v", c.Request.URL.Path, recovered)
				c.AbortWithStatusJSON(http.StatusInternalServerError, fn(recovered))
			}
		}()
		c.Next()
	}
}

// recoverText is recoverJSON for routes that answer in plain text.
func recoverText(l *logger.Logger, fn func(recovered any) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				l.Errorf("Error in %s: %v", c.Request.URL.Path, recovered)
				c.String(http.StatusInternalServerError, "%s", fn(recovered))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// corsConfig allows every origin unless an explicit list is configured.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
