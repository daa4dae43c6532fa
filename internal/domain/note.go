package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note belongs to exactly one user. The owner never changes after creation.
type Note struct {
	NoteID      uuid.UUID `json:"note_id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	NoteTitle   string    `json:"note_title"`
	NoteContent string    `json:"note_content"`
	CreatedOn   time.Time `json:"created_on"`
	LastUpdate  time.Time `json:"last_update"`
}
