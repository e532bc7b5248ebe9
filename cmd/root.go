package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bz888/govhelper/internal/api"
	"github.com/bz888/govhelper/internal/api/server"
	"github.com/bz888/govhelper/internal/api/server/client"
	"github.com/bz888/govhelper/internal/config"
	"github.com/bz888/govhelper/internal/logger"
	"github.com/gin-gonic/gin"
)

func init() {
	config.Init()
}

func Execute() {
	logger.InitLogger(config.Dev, config.LogPath, os.Stderr)
	defer logger.Close()
	localLogger := logger.NewLogger("main")

	settings, err := config.Load(config.ConfigPath)
	if err != nil {
		log.Fatal(err)
	}

	if config.Check {
		os.Exit(check(settings))
	}

	if !settings.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	geminiClient := client.NewGeminiClient(ctx, settings)
	localLogger.Infof("Application started with AI status: %+v", geminiClient.Status())

	srv, err := server.New(settings, geminiClient)
	if err != nil {
		log.Fatal(err)
	}

	localLogger.Infof("Visit http://localhost:%d to use the application", settings.Port)
	if err := srv.Run(ctx); err != nil {
		localLogger.Error("Failed to start application:", err)
		logger.Close()
		os.Exit(1)
	}
}

// check probes /health of the instance described by settings and returns
// the process exit code.
func check(settings *config.Settings) int {
	host := settings.Host
	if host == "0.0.0.0" || host == "" {
		host = "127.0.0.1"
	}

	c, err := api.NewClient(fmt.Sprintf("http://%s:%d", host, settings.Port), 5*time.Second)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	health, err := c.Health(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("%s (version %s, model %s, ai_available=%t)\n", health.Status, health.Version, health.Model, health.AIAvailable)
	return 0
}
