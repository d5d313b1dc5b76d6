package main

import (
	"net/http"

	"github.com/diegoclair/slack-wfo-bot/internal/config"
	"github.com/diegoclair/slack-wfo-bot/internal/database"
	"github.com/diegoclair/slack-wfo-bot/internal/domain/service"
	"github.com/diegoclair/slack-wfo-bot/internal/handlers"
	"github.com/diegoclair/slack-wfo-bot/internal/logger"
	"github.com/diegoclair/slack-wfo-bot/internal/parser"
	"github.com/diegoclair/slack-wfo-bot/internal/scheduler"
	"github.com/diegoclair/slack-wfo-bot/migrator/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Warn(".env file not found, reading config from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.Environment)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	logger.Log.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		logger.Log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Log.Info("Migrations completed successfully")

	slackClient := slack.New(cfg.SlackBotToken)

	dataManager := database.NewInstance(db)
	services := service.NewInstance(dataManager, slackClient, parser.New(parser.DefaultConfig()), service.Config{
		MinOfficeDays:  cfg.MinOfficeDays,
		AttemptCeiling: cfg.AttemptCeiling,
	})

	runner := scheduler.NewRunner(services.Scheduler, cfg.WeeklyKickoffCron, cfg.DailyFollowupCron, cfg.SweepCron)
	if err := runner.Start(); err != nil {
		logger.Log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer runner.Stop()

	slackHandler := handlers.New(slackClient, services.Collection, cfg.SlackSigningSecret, cfg.MinOfficeDays)
	apiHandler := handlers.NewAPI(services.Collection)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Post("/slack/commands", slackHandler.HandleSlashCommand)
	router.Post("/slack/events", slackHandler.HandleEvents)

	router.Route("/api/availability", func(r chi.Router) {
		r.Get("/check/{userID}", apiHandler.CheckCollection)
		r.Post("/process", apiHandler.ProcessReply)
		r.Post("/save", apiHandler.SaveSchedule)
		r.Get("/user/{userID}", apiHandler.GetUserAvailability)
	})
	router.Get("/health", apiHandler.Health)

	logger.Log.Infof("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}
