package service

import (
	"context"
	"errors"
	"time"

	"github.com/avoronov/notes-api/internal/domain"
	"github.com/avoronov/notes-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteService struct {
	notes repository.NoteRepository
}

func NewNoteService(notes repository.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

type NoteInput struct {
	Title   string
	Content string
}

func (s *NoteService) Create(ctx context.Context, owner *domain.User, input NoteInput) (*domain.Note, error) {
	now := time.Now().UTC()
	note := &domain.Note{
		NoteID:      uuid.New(),
		UserID:      owner.UserID,
		NoteTitle:   input.Title,
		NoteContent: input.Content,
		CreatedOn:   now,
		LastUpdate:  now,
	}

	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) List(ctx context.Context, owner *domain.User) ([]*domain.Note, error) {
	return s.notes.ListByUserID(ctx, owner.UserID)
}

func (s *NoteService) Get(ctx context.Context, owner *domain.User, noteID uuid.UUID) (*domain.Note, error) {
	return s.ownedNote(ctx, owner, noteID)
}

// Update replaces the note's title and content and refreshes last_update.
// The note id and owner are immutable.
func (s *NoteService) Update(ctx context.Context, owner *domain.User, noteID uuid.UUID, input NoteInput) (*domain.Note, error) {
	note, err := s.ownedNote(ctx, owner, noteID)
	if err != nil {
		return nil, err
	}

	note.NoteTitle = input.Title
	note.NoteContent = input.Content
	note.LastUpdate = time.Now().UTC()

	if err := s.notes.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, owner *domain.User, noteID uuid.UUID) error {
	note, err := s.ownedNote(ctx, owner, noteID)
	if err != nil {
		return err
	}
	return s.notes.Delete(ctx, note.NoteID)
}

// ownedNote fetches a note by id and enforces the ownership invariant. A
// note owned by someone else is reported exactly like a missing one.
func (s *NoteService) ownedNote(ctx context.Context, owner *domain.User, noteID uuid.UUID) (*domain.Note, error) {
	note, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}

	if note.UserID != owner.UserID {
		return nil, domain.ErrNoteNotFound
	}
	return note, nil
}
