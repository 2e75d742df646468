package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/kioku/internal/card"
	"github.com/at-ishikawa/kioku/internal/config"
	"github.com/at-ishikawa/kioku/internal/database"
	"github.com/at-ishikawa/kioku/internal/learning"
	"github.com/at-ishikawa/kioku/internal/schedule"
	"github.com/at-ishikawa/kioku/internal/study"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

type repositories struct {
	cards  *card.DBRepository
	states *schedule.DBRepository
	events *learning.DBRepository
}

func openRepositories(cfg *config.Config) (*sqlx.DB, repositories, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, repositories{}, fmt.Errorf("database.Open() > %w", err)
	}
	return db, repositories{
		cards:  card.NewDBRepository(db),
		states: schedule.NewDBRepository(db),
		events: learning.NewDBRepository(db),
	}, nil
}

func newService(cfg *config.Config, repos repositories) (*study.Service, error) {
	policy, err := study.PolicyFromConfig(cfg.Scheduler)
	if err != nil {
		return nil, fmt.Errorf("study.PolicyFromConfig() > %w", err)
	}
	return study.NewService(repos.cards, repos.states, repos.events, policy), nil
}

// addSubjectFlag registers --subject. An empty subject means every subject.
func addSubjectFlag(flags *pflag.FlagSet, target *string, usage string) {
	flags.StringVar(target, "subject", "", usage)
}
