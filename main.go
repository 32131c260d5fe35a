package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	sessionapi "github.com/beka-birhanu/vinom-pathfinder/api/session"
	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/logger"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
)

const pruneInterval = time.Minute

// Global variables for dependencies
var (
	appLogger         *logger.Logger
	presets           *config.PresetsConfig
	sessionManager    i.SessionManager
	tokenizer         i.Tokenizer
	sessionController api.Controller
	router            *api.Router
)

func initPresets() {
	if config.Envs.PresetsPath == "" {
		appLogger.Info("Preset layouts disabled")
		return
	}

	var err error
	presets, err = config.LoadPresets(config.Envs.PresetsPath)
	if errors.Is(err, os.ErrNotExist) {
		appLogger.Warning(fmt.Sprintf("Preset file %s not found, continuing without presets", config.Envs.PresetsPath))
		return
	}
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading presets: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Loaded %d preset layouts", len(presets.Presets)))
}

func initSessionManager() {
	sessionLogger, err := logger.New("SESSION", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session logger: %v", err))
		os.Exit(1)
	}

	sessionManager, err = service.NewSessionManager(&service.Config{
		Rows:        config.Envs.GridRows,
		Cols:        config.Envs.GridCols,
		MaxSessions: config.Envs.MaxSessions,
		Presets:     presets,
		Logger:      sessionLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Session manager initialized")
}

func initJWTTokenizer() {
	secret, err := config.Envs.SigningSecret()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating signing secret: %v", err))
		os.Exit(1)
	}
	if config.Envs.JWTSecret == "" {
		appLogger.Warning("JWT_SECRET not set, using a random secret for this process")
	}

	tokenizer = token.NewJwtService(secret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initSessionController() {
	var err error
	ttl := time.Duration(config.Envs.SessionTTLMinutes) * time.Minute
	sessionController, err = sessionapi.NewController(sessionManager, tokenizer, ttl)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Session controller initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api.Controller{sessionController},
		AuthorizationMiddleware: sessionapi.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

// pruneSessions closes sessions idle for longer than the token lifetime.
func pruneSessions(ctx context.Context) {
	maxIdle := time.Duration(config.Envs.SessionTTLMinutes) * time.Minute
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sessionManager.PruneIdle(maxIdle)
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initPresets()
	initSessionManager()
	initJWTTokenizer()
	initSessionController()
	initRouter(tokenizer)

	go pruneSessions(ctx)

	// Run HTTP server
	errCh := make(chan error, 1)
	go func() {
		errCh <- router.Run()
	}()

	select {
	case err := <-errCh:
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	case <-ctx.Done():
		appLogger.Info("Shutting down")
	}
}
