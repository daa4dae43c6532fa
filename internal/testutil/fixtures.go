package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/avoronov/notes-api/internal/domain"
	"github.com/avoronov/notes-api/internal/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hash, err := security.HashPassword(b.password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		UserID:       uuid.New(),
		UserName:     b.name,
		UserEmail:    b.email,
		PasswordHash: hash,
		CreatedOn:    now,
		LastUpdate:   now,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// TokenResponse matches the login response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse matches the public user view
type UserResponse struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// NoteResponse matches the API note shape
type NoteResponse struct {
	NoteID      string `json:"note_id"`
	UserID      string `json:"user_id"`
	NoteTitle   string `json:"note_title"`
	NoteContent string `json:"note_content"`
	CreatedOn   string `json:"created_on"`
	LastUpdate  string `json:"last_update"`
}

// BuildAndAuthenticate signs the user up and logs in via the API, returning
// the public user view and a bearer token.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*UserResponse, string) {
	t.Helper()

	signupBody, _ := json.Marshal(map[string]string{
		"user_name":  b.name,
		"user_email": b.email,
		"password":   b.password,
	})

	resp, err := http.Post(ts.URL("/auth/signup"), "application/json", strings.NewReader(string(signupBody)))
	if err != nil {
		t.Fatalf("failed to sign up user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected signup status code: %d", resp.StatusCode)
	}

	var user UserResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		t.Fatalf("failed to decode signup response: %v", err)
	}

	form := url.Values{}
	form.Set("username", b.email)
	form.Set("password", b.password)

	loginResp, err := http.PostForm(ts.URL("/auth/login"), form)
	if err != nil {
		t.Fatalf("failed to log in user: %v", err)
	}
	defer loginResp.Body.Close()

	if loginResp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", loginResp.StatusCode)
	}

	var token TokenResponse
	if err := json.NewDecoder(loginResp.Body).Decode(&token); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return &user, token.AccessToken
}

// NoteBuilder creates test notes with a builder pattern
type NoteBuilder struct {
	owner   *domain.User
	title   string
	content string
}

// NewNoteBuilder creates a new NoteBuilder for the given owner
func NewNoteBuilder(owner *domain.User) *NoteBuilder {
	return &NoteBuilder{
		owner:   owner,
		title:   "test note",
		content: "test content",
	}
}

// WithTitle sets the note title
func (b *NoteBuilder) WithTitle(title string) *NoteBuilder {
	b.title = title
	return b
}

// WithContent sets the note content
func (b *NoteBuilder) WithContent(content string) *NoteBuilder {
	b.content = content
	return b
}

// Build creates the note in the database
func (b *NoteBuilder) Build(t *testing.T, db *gorm.DB) *domain.Note {
	t.Helper()

	now := time.Now().UTC()
	note := &domain.Note{
		NoteID:      uuid.New(),
		UserID:      b.owner.UserID,
		NoteTitle:   b.title,
		NoteContent: b.content,
		CreatedOn:   now,
		LastUpdate:  now,
	}

	if err := db.Create(note).Error; err != nil {
		t.Fatalf("failed to create note: %v", err)
	}

	return note
}
