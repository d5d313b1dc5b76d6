package service

import (
	"github.com/diegoclair/slack-wfo-bot/internal/domain"
	"github.com/diegoclair/slack-wfo-bot/internal/domain/contract"
	"github.com/diegoclair/slack-wfo-bot/internal/parser"
)

// Config holds the policy knobs every service receives at construction.
type Config struct {
	MinOfficeDays  int
	AttemptCeiling int
}

// DefaultConfig returns the standard compliance policy.
func DefaultConfig() Config {
	return Config{
		MinOfficeDays:  domain.DefaultMinOfficeDays,
		AttemptCeiling: domain.DefaultAttemptCeiling,
	}
}

type Instance struct {
	Collection *collectionService
	Scheduler  *schedulerService
}

// NewInstance wires the services with their collaborators.
func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, p *parser.Parser, cfg Config) *Instance {
	collection := newCollection(dm, slackClient, p, cfg)

	return &Instance{
		Collection: collection,
		Scheduler:  newScheduler(dm, slackClient, collection, cfg),
	}
}
