package postgres

import (
	"github.com/avoronov/notes-api/internal/domain"
	"github.com/avoronov/notes-api/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Surfaces unique-constraint violations as gorm.ErrDuplicatedKey,
		// which the auth flow maps to the duplicate-email conflict.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables. The uniqueIndex on users.user_email is the
	// backstop for the non-atomic signup existence check.
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Note{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User: NewUserRepository(db),
		Note: NewNoteRepository(db),
	}
}
