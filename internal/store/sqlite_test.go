package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgt-returns/internal/model"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sptr(s string) *string { return &s }

func sampleDraft(id string) *model.DraftReturn {
	return &model.DraftReturn{
		ReturnID:  id,
		CreatedAt: "2024-01-15T10:00:00Z",
		Contact: &model.ContactDetails{
			Individual: &model.IndividualContact{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
		},
	}
}

func TestCreateAndFetch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, sampleDraft("r-1")))

	got, err := s.Fetch(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "r-1", got.ReturnID)
	require.NotNil(t, got.Contact)
	assert.Equal(t, "jane@example.com", got.Contact.Email())
	assert.Nil(t, got.Triage)
}

func TestFetch_Missing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Fetch(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_DuplicateKey(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, sampleDraft("r-1")))
	assert.Error(t, s.Create(ctx, sampleDraft("r-1")))
}

func TestUpdate_AppliesMutator(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, sampleDraft("r-1")))

	updated, err := s.Update(ctx, "r-1", func(d model.DraftReturn) model.DraftReturn {
		d.Triage = &model.TriageAnswers{CountryOfResidence: sptr("GB")}
		return d
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Triage)

	// The stored snapshot reflects the mutation.
	got, err := s.Fetch(ctx, "r-1")
	require.NoError(t, err)
	require.NotNil(t, got.Triage)
	assert.Equal(t, "GB", *got.Triage.CountryOfResidence)
}

func TestUpdate_Missing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Update(context.Background(), "nope", func(d model.DraftReturn) model.DraftReturn { return d })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_NoOpMutatorPreservesSnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, sampleDraft("r-1")))

	before, err := s.Fetch(ctx, "r-1")
	require.NoError(t, err)

	_, err = s.Update(ctx, "r-1", func(d model.DraftReturn) model.DraftReturn { return d })
	require.NoError(t, err)

	after, err := s.Fetch(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "returns.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Create(context.Background(), sampleDraft("r-1")))
}
