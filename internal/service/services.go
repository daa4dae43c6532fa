package service

import (
	"github.com/avoronov/notes-api/internal/config"
	"github.com/avoronov/notes-api/internal/repository"
	"github.com/avoronov/notes-api/internal/security"
)

type Services struct {
	Auth *AuthService
	Note *NoteService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	tokens := security.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	return &Services{
		Auth: NewAuthService(repos.User, tokens),
		Note: NewNoteService(repos.Note),
	}
}
