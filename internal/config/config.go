package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" env-default:"development"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`

	Port         string `env:"PORT" env-default:"8080"`
	DatabasePath string `env:"DATABASE_PATH" env-default:"./wfo-bot.db"`

	SlackBotToken      string `env:"SLACK_BOT_TOKEN" env-required:"true"`
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET" env-required:"true"`

	MinOfficeDays  int `env:"MIN_OFFICE_DAYS" env-default:"3"`
	AttemptCeiling int `env:"ATTEMPT_CEILING" env-default:"3"`

	// Cron expressions in the server's local time. Defaults: the weekly
	// kickoff goes out Friday evening, the daily pass runs every evening,
	// and the sweep dispatches due messages once a minute.
	WeeklyKickoffCron string `env:"WEEKLY_KICKOFF_CRON" env-default:"0 17 * * 5"`
	DailyFollowupCron string `env:"DAILY_FOLLOWUP_CRON" env-default:"0 17 * * 0-4"`
	SweepCron         string `env:"SWEEP_CRON" env-default:"* * * * *"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	return &cfg, nil
}
