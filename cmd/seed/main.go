// Seeds the summer-house catalogue. Safe to run more than once: it writes
// nothing when the table already has rows.
package main

import (
	"context"

	"github.com/mkj/summerhouse-voting/internal/config"
	"github.com/mkj/summerhouse-voting/internal/repository/sqlite"
	"github.com/mkj/summerhouse-voting/internal/seed"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	logrus.SetLevel(cfg.ParsedLogLevel())

	db, err := sqlite.NewConnection(cfg.DatabasePath)
	if err != nil {
		logrus.Fatalf("failed to open database: %v", err)
	}

	repos := sqlite.NewRepositories(db)

	created, err := seed.Run(context.Background(), repos.SummerHouse)
	if err != nil {
		logrus.Fatalf("seeding failed: %v", err)
	}

	logrus.Infof("seeding complete, %d summer houses created", created)
}
