package postgres

import (
	"context"

	"github.com/avoronov/notes-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *noteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	var note domain.Note
	err := r.db.WithContext(ctx).First(&note, "note_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error) {
	var notes []*domain.Note
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_on ASC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) Update(ctx context.Context, note *domain.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Note{}, "note_id = ?", id).Error
}
