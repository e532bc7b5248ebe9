package server

import (
	"github.com/bz888/govhelper/internal/api/server/handlers"
	"github.com/bz888/govhelper/internal/logger"
	"github.com/gin-gonic/gin"
)

func registerRoutes(engine *gin.Engine, handler *handlers.Handler, l *logger.Logger, debug bool) {
	engine.GET("/", recoverText(l, handlers.HomePanicText), handler.HomeHandler)
	engine.POST("/chat", recoverJSON(l, handlers.ChatPanicBody(debug)), handler.ChatHandler)
	engine.GET("/health", recoverJSON(l, handlers.HealthPanicBody), handler.HealthHandler)
	engine.GET("/status", recoverJSON(l, handlers.StatusPanicBody), handler.StatusHandler)
}
