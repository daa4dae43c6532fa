package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/avoronov/notes-api/internal/api/middleware"
	"github.com/avoronov/notes-api/internal/domain"
	"github.com/avoronov/notes-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type NoteHandler struct {
	noteService *service.NoteService
}

func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

type NoteRequest struct {
	NoteTitle   string `json:"note_title"`
	NoteContent string `json:"note_content"`
}

type NoteResponse struct {
	NoteID      string `json:"note_id"`
	UserID      string `json:"user_id"`
	NoteTitle   string `json:"note_title"`
	NoteContent string `json:"note_content"`
	CreatedOn   string `json:"created_on"`
	LastUpdate  string `json:"last_update"`
}

func noteResponse(note *domain.Note) NoteResponse {
	return NoteResponse{
		NoteID:      note.NoteID.String(),
		UserID:      note.UserID.String(),
		NoteTitle:   note.NoteTitle,
		NoteContent: note.NoteContent,
		CreatedOn:   note.CreatedOn.Format(time.RFC3339),
		LastUpdate:  note.LastUpdate.Format(time.RFC3339),
	}
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Invalid authentication credentials", http.StatusUnauthorized)
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	note, err := h.noteService.Create(r.Context(), user, service.NoteInput{
		Title:   req.NoteTitle,
		Content: req.NoteContent,
	})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, noteResponse(note))
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Invalid authentication credentials", http.StatusUnauthorized)
		return
	}

	notes, err := h.noteService.List(r.Context(), user)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		resp = append(resp, noteResponse(note))
	}
	writeJSON(w, resp)
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Invalid authentication credentials", http.StatusUnauthorized)
		return
	}

	noteID, ok := noteIDParam(r)
	if !ok {
		notFound(w)
		return
	}

	note, err := h.noteService.Get(r.Context(), user, noteID)
	if err != nil {
		h.noteError(w, err)
		return
	}

	writeJSON(w, noteResponse(note))
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Invalid authentication credentials", http.StatusUnauthorized)
		return
	}

	noteID, ok := noteIDParam(r)
	if !ok {
		notFound(w)
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	note, err := h.noteService.Update(r.Context(), user, noteID, service.NoteInput{
		Title:   req.NoteTitle,
		Content: req.NoteContent,
	})
	if err != nil {
		h.noteError(w, err)
		return
	}

	writeJSON(w, noteResponse(note))
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Invalid authentication credentials", http.StatusUnauthorized)
		return
	}

	noteID, ok := noteIDParam(r)
	if !ok {
		notFound(w)
		return
	}

	if err := h.noteService.Delete(r.Context(), user, noteID); err != nil {
		h.noteError(w, err)
		return
	}

	writeJSON(w, map[string]bool{"deleted": true})
}

// noteIDParam parses the note id from the URL. An unparseable id cannot
// name an existing note, so callers treat it as not found.
func noteIDParam(r *http.Request) (uuid.UUID, bool) {
	noteID, err := uuid.Parse(chi.URLParam(r, "noteID"))
	if err != nil {
		return uuid.Nil, false
	}
	return noteID, true
}

func (h *NoteHandler) noteError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNoteNotFound) {
		notFound(w)
		return
	}
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, "Note not found", http.StatusNotFound)
}
