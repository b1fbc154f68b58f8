package sqlite

import (
	"fmt"

	"github.com/mkj/summerhouse-voting/internal/domain"
	"github.com/mkj/summerhouse-voting/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the SQLite database file and runs migrations before
// returning, so the server never accepts traffic against a missing schema.
// Foreign keys are off by default in SQLite and must be enabled per
// connection via the DSN.
func NewConnection(databasePath string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", databasePath)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the three tables and their unique/foreign-key constraints.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.SummerHouse{},
		&domain.Vote{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:        NewUserRepository(db),
		SummerHouse: NewSummerHouseRepository(db),
		Vote:        NewVoteRepository(db),
	}
}
