package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/splittab/splittab_backend/internal/core/services"
	"github.com/splittab/splittab_backend/internal/handlers"
	"github.com/splittab/splittab_backend/internal/middleware"
	"github.com/splittab/splittab_backend/internal/platform/config"
	"github.com/splittab/splittab_backend/internal/repositories/jsonfile"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/splittab/splittab_backend/internal/core/ports/services"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load the group snapshot the read API serves
	groupRepo, err := jsonfile.NewGroupRepository(cfg.SnapshotPath)
	if err != nil {
		logger.Error("Failed to load group snapshot", slog.String("path", cfg.SnapshotPath), slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Group snapshot loaded", slog.String("path", cfg.SnapshotPath))

	serviceContainer := &portssvc.ServiceContainer{
		Group:       services.NewGroupService(groupRepo),
		Balance:     services.NewBalanceService(groupRepo, services.WithBalanceCacheSize(cfg.CacheSize)),
		Transaction: services.NewTransactionService(groupRepo, services.WithTransactionCacheSize(cfg.CacheSize)),
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowOrigins, ",")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit config", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memorystore.NewStore(), rate)))

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
