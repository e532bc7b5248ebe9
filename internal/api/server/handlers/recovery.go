package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Bodies written when a route panics. Each route keeps the error shape its
// callers already parse.

func ChatPanicBody(debug bool) func(recovered any) gin.H {
	return func(recovered any) gin.H {
		var details any
		if debug {
			details = fmt.Sprint(recovered)
		}
		return gin.H{
			"error":   msgTryAgain,
			"status":  string(StatusError),
			"details": details,
		}
	}
}

func HealthPanicBody(recovered any) gin.H {
	return gin.H{
		"status": "unhealthy",
		"error":  fmt.Sprint(recovered),
	}
}

func StatusPanicBody(recovered any) gin.H {
	return gin.H{"error": fmt.Sprint(recovered)}
}

// HomePanicText matches the page render failure text.
func HomePanicText(recovered any) string {
	return fmt.Sprintf("Error loading application: %v", recovered)
}
