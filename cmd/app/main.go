package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/BapiMajumder1402/depoy-blog/internal/blogservice"
	"github.com/BapiMajumder1402/depoy-blog/internal/commentservice"
	"github.com/BapiMajumder1402/depoy-blog/internal/common"
	"github.com/BapiMajumder1402/depoy-blog/internal/userservice"
)

type application struct {
	config         *Config
	logger         *slog.Logger
	metrics        *common.Metrics
	registry       *prometheus.Registry
	userService    *userservice.UserService
	blogService    *blogservice.BlogService
	commentService *commentservice.CommentService
}

func main() {
	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the database
	db, err := common.NewDB(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	// Token lookups are cached; entity reads are not.
	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	registry := prometheus.NewRegistry()

	app := &application{
		config:         cfg,
		logger:         logger,
		metrics:        common.NewMetrics(registry),
		registry:       registry,
		userService:    userservice.NewUserService(db, cache),
		blogService:    blogservice.NewBlogService(db),
		commentService: commentservice.NewCommentService(db),
	}

	// Start the HTTP server
	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
