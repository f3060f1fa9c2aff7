package services

import (
	"os"
	"path/filepath"
	"testing"

	"learnhub/backend/app/repo"

	"github.com/stretchr/testify/require"
)

func newWordService(t *testing.T) *WordService {
	return NewWordService(repo.NewWordRepository(newTestDB(t)))
}

func TestSeed_FillsEmptyCatalogOnce(t *testing.T) {
	svc := newWordService(t)

	require.NoError(t, svc.Seed())
	first, err := svc.List()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// A second seed must not duplicate anything.
	require.NoError(t, svc.Seed())
	second, err := svc.List()
	require.NoError(t, err)
	require.Len(t, second, len(first))
}

func TestListPublic_CappedRegardlessOfCatalogSize(t *testing.T) {
	svc := newWordService(t)
	require.NoError(t, svc.Seed())

	all, err := svc.List()
	require.NoError(t, err)
	require.Greater(t, len(all), PublicWordLimit, "seed catalog must exceed the public cap for this test to mean anything")

	public, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, public, PublicWordLimit)
}

func TestImportFile_UpsertsWithoutDuplicates(t *testing.T) {
	svc := newWordService(t)

	seed := `[
		{"word": "Arcane", "meaning": "Understood by few", "level": "C2", "example": "The arcane rituals of the court."},
		{"word": "Brisk", "meaning": "Quick and energetic", "level": "B1"}
	]`
	path := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	n, err := svc.ImportFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// Re-import with one changed meaning: same row count, updated content.
	updated := `[
		{"word": "Arcane", "meaning": "Known only to initiates", "level": "C2"},
		{"word": "Brisk", "meaning": "Quick and energetic", "level": "B1"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))
	_, err = svc.ImportFile(path)
	require.NoError(t, err)

	words, err := svc.List()
	require.NoError(t, err)
	require.Len(t, words, 2)

	byWord := map[string]string{}
	for _, w := range words {
		byWord[w.Word] = w.Meaning
	}
	require.Equal(t, "Known only to initiates", byWord["Arcane"])
}

func TestImportFile_RejectsUnreadableInput(t *testing.T) {
	svc := newWordService(t)

	_, err := svc.ImportFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = svc.ImportFile(path)
	require.Error(t, err)
}
