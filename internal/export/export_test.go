package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/agdealers8/learn-and-conquer/internal/flashcard"
	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFlashcardsJSON(t *testing.T) {
	deck, err := flashcard.NewDeck("World History", []provider.Flashcard{
		{ID: "1", Front: "1789", Back: "French Revolution begins"},
		{ID: "2", Front: "1492", Back: "Columbus reaches the Americas"},
	})
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "nested", "exports")
	path, err := WriteFlashcardsJSON(dir, deck)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "world-history.json"), path)

	payload, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "1789", decoded[0]["front"])
}

func TestWriteSummaryMarkdown(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteSummaryMarkdown(dir, "Cell Biology", "Cells are the unit of life.")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cell-biology.md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Cell Biology")
	assert.Contains(t, string(content), "Cells are the unit of life.")
}

func TestWriteSummaryMarkdown_EmptyTopic(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteSummaryMarkdown(dir, "", "Some content.")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "summary.md"), path)
}

func TestConvertMarkdownToPDF_RequiresMarkdownExtension(t *testing.T) {
	_, err := ConvertMarkdownToPDF(filepath.Join(t.TempDir(), "notes.txt"))
	assert.Error(t, err)
}
