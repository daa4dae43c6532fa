package service_test

import (
	"context"
	"testing"

	"github.com/avoronov/notes-api/internal/domain"
	"github.com/avoronov/notes-api/internal/repository/postgres"
	"github.com/avoronov/notes-api/internal/service"
	"github.com/avoronov/notes-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteService(t *testing.T) (*service.NoteService, *testutil.TestDB) {
	t.Helper()
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	return services.Note, testDB
}

func TestNoteService_CreateAndList(t *testing.T) {
	noteService, testDB := newNoteService(t)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	created, err := noteService.Create(ctx, owner, service.NoteInput{
		Title:   "T1",
		Content: "body",
	})
	require.NoError(t, err)
	assert.Equal(t, owner.UserID, created.UserID)
	assert.Equal(t, "T1", created.NoteTitle)
	assert.False(t, created.CreatedOn.IsZero())
	assert.Equal(t, created.CreatedOn, created.LastUpdate)

	// List is scoped to the owner
	ownerNotes, err := noteService.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, ownerNotes, 1)
	assert.Equal(t, created.NoteID, ownerNotes[0].NoteID)

	otherNotes, err := noteService.List(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, otherNotes)
}

func TestNoteService_OwnershipIsolation(t *testing.T) {
	noteService, testDB := newNoteService(t)
	ctx := context.Background()

	userA, _ := testutil.NewUserBuilder().WithName("A").Build(t, testDB.DB)
	userB, _ := testutil.NewUserBuilder().WithName("B").Build(t, testDB.DB)

	note := testutil.NewNoteBuilder(userA).WithTitle("private").Build(t, testDB.DB)

	// User B sees user A's note exactly as if it did not exist
	_, err := noteService.Get(ctx, userB, note.NoteID)
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)

	_, err = noteService.Update(ctx, userB, note.NoteID, service.NoteInput{Title: "stolen"})
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)

	err = noteService.Delete(ctx, userB, note.NoteID)
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)

	// The owner's calls all succeed
	got, err := noteService.Get(ctx, userA, note.NoteID)
	require.NoError(t, err)
	assert.Equal(t, "private", got.NoteTitle)

	updated, err := noteService.Update(ctx, userA, note.NoteID, service.NoteInput{
		Title:   "renamed",
		Content: "new body",
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.NoteTitle)

	require.NoError(t, noteService.Delete(ctx, userA, note.NoteID))
}

func TestNoteService_Update(t *testing.T) {
	noteService, testDB := newNoteService(t)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	note := testutil.NewNoteBuilder(owner).
		WithTitle("before").
		WithContent("old").
		Build(t, testDB.DB)

	updated, err := noteService.Update(ctx, owner, note.NoteID, service.NoteInput{
		Title:   "after",
		Content: "new",
	})
	require.NoError(t, err)

	assert.Equal(t, "after", updated.NoteTitle)
	assert.Equal(t, "new", updated.NoteContent)
	assert.Equal(t, note.NoteID, updated.NoteID)
	assert.Equal(t, owner.UserID, updated.UserID)
	assert.Equal(t, note.CreatedOn.Unix(), updated.CreatedOn.Unix())
	assert.True(t, updated.LastUpdate.After(note.LastUpdate))
}

func TestNoteService_DeleteThenGet(t *testing.T) {
	noteService, testDB := newNoteService(t)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	note := testutil.NewNoteBuilder(owner).Build(t, testDB.DB)

	require.NoError(t, noteService.Delete(ctx, owner, note.NoteID))

	_, err := noteService.Get(ctx, owner, note.NoteID)
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
}

func TestNoteService_GetMissing(t *testing.T) {
	noteService, testDB := newNoteService(t)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	_, err := noteService.Get(ctx, owner, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
}
