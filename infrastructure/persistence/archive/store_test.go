package archive

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	pkgerrors "graphbench/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestArchive(t *testing.T) *FileArchive {
	t.Helper()
	store, err := NewFileArchive(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	store.now = func() time.Time {
		return time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	}
	return store
}

func TestFileArchive_SaveAssignsTimestampedName(t *testing.T) {
	store := newTestArchive(t)

	name, err := store.Save([]byte(`{"constraints":[]}`))

	require.NoError(t, err)
	assert.Equal(t, "constraints-20260115-103000.json", name)
}

func TestFileArchive_SaveWithinSameSecondGetsSuffix(t *testing.T) {
	store := newTestArchive(t)

	first, err := store.Save([]byte(`{"constraints":["a"]}`))
	require.NoError(t, err)
	second, err := store.Save([]byte(`{"constraints":["b"]}`))
	require.NoError(t, err)

	assert.Equal(t, "constraints-20260115-103000.json", first)
	assert.Equal(t, "constraints-20260115-103000-1.json", second)
}

func TestFileArchive_ListReturnsOnlyDocumentNames(t *testing.T) {
	store := newTestArchive(t)

	name, err := store.Save([]byte(`{"constraints":[]}`))
	require.NoError(t, err)

	// Unrelated files in the directory are not documents
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, "notes.txt"), []byte("x"), 0o644))

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{name}, names)
}

func TestFileArchive_GetRoundTrip(t *testing.T) {
	store := newTestArchive(t)
	document := []byte(`{"constraints":["knows"]}`)

	name, err := store.Save(document)
	require.NoError(t, err)

	back, err := store.Get(name)
	require.NoError(t, err)
	assert.Equal(t, document, back)
}

func TestFileArchive_GetMissingDocument(t *testing.T) {
	store := newTestArchive(t)

	_, err := store.Get("constraints-20200101-000000.json")

	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestFileArchive_GetRejectsInvalidNames(t *testing.T) {
	store := newTestArchive(t)

	for _, name := range []string{
		"../etc/passwd",
		"constraints.json",
		"constraints-2026-rogue.json",
		"constraints-20260115-103000.json.bak",
	} {
		_, err := store.Get(name)
		assert.True(t, pkgerrors.IsValidation(err), "name %q should be rejected", name)
	}
}
