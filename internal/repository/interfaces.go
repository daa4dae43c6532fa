package repository

import (
	"context"

	"github.com/avoronov/notes-api/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	User UserRepository
	Note NoteRepository
}
