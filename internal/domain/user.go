package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	UserName     string    `json:"user_name" gorm:"not null"`
	UserEmail    string    `json:"user_email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedOn    time.Time `json:"created_on"`
	LastUpdate   time.Time `json:"last_update"`
}
