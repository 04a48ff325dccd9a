package store

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olajoao/sticky-one/internal/entry"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func insertText(t *testing.T, s *Store, text string) *entry.Entry {
	t.Helper()
	e := entry.NewText(text)
	_, err := s.Insert(e)
	require.NoError(t, err)
	return e
}

func TestInsertAndGetByID(t *testing.T) {
	s := openTestStore(t)

	e := entry.NewText("hello")
	id, err := s.Insert(e)
	require.NoError(t, err)
	assert.Equal(t, id, e.ID)

	got, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "hello", got.Content)
	assert.Equal(t, e.Type, got.Type)
	assert.Equal(t, e.Hash, got.Hash)
	assert.Equal(t, e.CreatedAt, got.CreatedAt)
	assert.Empty(t, got.ImageData)
}

func TestGetByIDNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetByID(42)
	var nf NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(42), nf.ID)
}

func TestInsertImageRoundTrip(t *testing.T) {
	s := openTestStore(t)

	data := []byte{0x89, 'P', 'N', 'G', 0, 1, 2, 3}
	e := entry.NewImage(data)
	id, err := s.Insert(e)
	require.NoError(t, err)

	got, err := s.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, entry.TypeImage, got.Type)
	assert.Equal(t, data, got.ImageData)
	assert.Empty(t, got.Content)
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)

	insertText(t, s, "first")
	insertText(t, s, "second")

	entries, err := s.List(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Content)
	assert.Equal(t, "first", entries[1].Content)
}

func TestListRespectsLimit(t *testing.T) {
	s := openTestStore(t)

	for _, text := range []string{"a", "b", "c", "d"} {
		insertText(t, s, text)
	}

	entries, err := s.List(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "d", entries[0].Content)
	assert.Equal(t, "c", entries[1].Content)
}

func TestSearchSubstring(t *testing.T) {
	s := openTestStore(t)

	insertText(t, s, "foo bar baz")
	insertText(t, s, "unrelated")

	results, err := s.Search("bar", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "foo bar baz", results[0].Content)
}

func TestSearchCaseSensitive(t *testing.T) {
	s := openTestStore(t)

	insertText(t, s, "Hello World")

	results, err := s.Search("hello", 10)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = s.Search("Hello", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchLiteralMetacharacters(t *testing.T) {
	s := openTestStore(t)

	insertText(t, s, "glob chars * ? [x]")
	insertText(t, s, "nothing special")

	results, err := s.Search("* ? [x]", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "glob chars * ? [x]", results[0].Content)
}

func TestSearchExcludesImages(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Insert(entry.NewImage([]byte("bar-ish bytes")))
	require.NoError(t, err)
	insertText(t, s, "foo bar")

	results, err := s.Search("bar", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entry.TypeText, results[0].Type)
}

func TestLatestFingerprint(t *testing.T) {
	s := openTestStore(t)

	fp, err := s.LatestFingerprint()
	require.NoError(t, err)
	assert.Empty(t, fp)

	e := insertText(t, s, "test")
	fp, err = s.LatestFingerprint()
	require.NoError(t, err)
	assert.Equal(t, e.Hash, fp)

	e2 := insertText(t, s, "newer")
	fp, err = s.LatestFingerprint()
	require.NoError(t, err)
	assert.Equal(t, e2.Hash, fp)
}

func TestEvictExpiredBoundary(t *testing.T) {
	const retentionHours = 12
	s := openTestStore(t)

	cutoff := time.Now().Unix() - retentionHours*3600

	expired := entry.NewText("old")
	expired.CreatedAt = cutoff - 1
	_, err := s.Insert(expired)
	require.NoError(t, err)

	fresh := entry.NewText("new")
	fresh.CreatedAt = cutoff + 1
	_, err = s.Insert(fresh)
	require.NoError(t, err)

	removed, err := s.EvictExpired(retentionHours)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	entries, err := s.List(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "new", entries[0].Content)
}

func TestClear(t *testing.T) {
	s := openTestStore(t)

	for _, text := range []string{"a", "b", "c", "d", "e"} {
		insertText(t, s, text)
	}

	removed, err := s.Clear()
	require.NoError(t, err)
	assert.Equal(t, int64(5), removed)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDuplicateFingerprintsCoexist(t *testing.T) {
	s := openTestStore(t)

	e1 := insertText(t, s, "same")
	e2 := insertText(t, s, "same")
	assert.Equal(t, e1.Hash, e2.Hash)

	// Dedup is the daemon's responsibility, not a store invariant.
	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestUnknownContentTypeDecodesAsText(t *testing.T) {
	s := openTestStore(t)

	_, err := s.db.Exec(
		`INSERT INTO entries (content_type, content, image_data, hash, created_at)
		 VALUES (?, ?, NULL, ?, ?)`,
		"hologram", "future data", entry.Fingerprint([]byte("future data")), time.Now().Unix(),
	)
	require.NoError(t, err)
	insertText(t, s, "normal")

	entries, err := s.List(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.NotEqual(t, entry.ContentType("hologram"), e.Type)
	}

	got, err := s.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, entry.TypeText, got.Type)
	assert.Equal(t, "future data", got.Content)
}

func TestOpenCreatesRestrictedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "clipboard.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	insertText(t, s, "persisted")

	info, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clipboard.db")

	s, err := Open(path)
	require.NoError(t, err)
	insertText(t, s, "survives")
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.List(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "survives", entries[0].Content)
}

func TestNotFoundErrorMessage(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetByID(7)
	require.Error(t, err)
	assert.EqualError(t, err, "entry not found: 7")
}
