package database

import (
	"time"

	"lycosidae/config"
	"lycosidae/logger"
	"lycosidae/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

const (
	connectAttempts = 10
	connectBackoff  = 3 * time.Second
)

// InitDB opens the database connection, tunes the pool and migrates the
// schema. The initial connection is retried to survive the window where
// docker-compose has started the API before postgres accepts connections.
func InitDB(cfg *config.Config) error {
	var err error
	for i := 0; i < connectAttempts; i++ {
		// TranslateError turns driver unique-violation errors into
		// gorm.ErrDuplicatedKey, the backstop behind the services'
		// uniqueness checks.
		DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		logger.Log.Warnw("database not ready, retrying", "attempt", i+1, "error", err)
		time.Sleep(connectBackoff)
	}
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return Migrate(DB)
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Competition{},
		&models.Exercise{},
		&models.Tag{},
		&models.Team{},
		&models.Container{},
		&models.UserCompetition{},
		&models.UserTeam{},
		&models.TeamCompetition{},
		&models.ExerciseTag{},
		&models.ExerciseCompetition{},
		&models.ContainerCompetition{},
	)
}
