package flashcard

import (
	"testing"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCards() []provider.Flashcard {
	return []provider.Flashcard{
		{ID: "card-1", Front: "Mitochondria", Back: "Powerhouse of the cell", ImageKeyword: "mitochondria"},
		{ID: "card-2", Front: "Osmosis", Back: "Diffusion of water across a membrane"},
		{ID: "card-3", Front: "ATP", Back: "Energy currency of the cell", ImageKeyword: "molecule"},
	}
}

func TestNewDeck(t *testing.T) {
	_, err := NewDeck("Biology", nil)
	assert.ErrorIs(t, err, ErrEmptyDeck)

	deck, err := NewDeck("Biology", sampleCards())
	require.NoError(t, err)
	assert.Equal(t, "Biology", deck.Topic())
	assert.Equal(t, 3, deck.Count())
	assert.Equal(t, "card-1", deck.Current().ID)
}

func TestDeck_Navigation(t *testing.T) {
	deck, err := NewDeck("Biology", sampleCards())
	require.NoError(t, err)

	assert.Equal(t, "card-2", deck.Next().ID)
	assert.Equal(t, "card-3", deck.Next().ID)
	// Wraps forward past the end.
	assert.Equal(t, "card-1", deck.Next().ID)
	// Wraps backward past the start.
	assert.Equal(t, "card-3", deck.Prev().ID)
	assert.Equal(t, "card-2", deck.Prev().ID)
}

func TestDeck_NeedsIllustration(t *testing.T) {
	deck, err := NewDeck("Biology", sampleCards())
	require.NoError(t, err)

	id, keyword, ok := deck.NeedsIllustration()
	require.True(t, ok)
	assert.Equal(t, "card-1", id)
	assert.Equal(t, "mitochondria", keyword)

	// A card without a keyword never requests an illustration.
	deck.Next()
	_, _, ok = deck.NeedsIllustration()
	assert.False(t, ok)

	// A card with an image already attached does not request another.
	deck.Next()
	require.True(t, deck.AttachImage("card-3", "data:image/png;base64,AAAA"))
	_, _, ok = deck.NeedsIllustration()
	assert.False(t, ok)
}

func TestDeck_AttachImage(t *testing.T) {
	deck, err := NewDeck("Biology", sampleCards())
	require.NoError(t, err)

	t.Run("Write lands on the card id, not the cursor", func(t *testing.T) {
		deck.Next() // cursor on card-2
		require.True(t, deck.AttachImage("card-1", "data:image/png;base64,AAAA"))
		assert.Empty(t, deck.Current().GeneratedImage)

		deck.Prev()
		assert.Equal(t, "data:image/png;base64,AAAA", deck.Current().GeneratedImage)
	})

	t.Run("An attached image is never overwritten", func(t *testing.T) {
		assert.False(t, deck.AttachImage("card-1", "data:image/png;base64,BBBB"))
		assert.Equal(t, "data:image/png;base64,AAAA", deck.Current().GeneratedImage)
	})

	t.Run("Unknown id is ignored", func(t *testing.T) {
		assert.False(t, deck.AttachImage("no-such-card", "data:image/png;base64,CCCC"))
	})
}

func TestDeck_Export(t *testing.T) {
	deck, err := NewDeck("Cell Biology: Basics", sampleCards())
	require.NoError(t, err)

	assert.Equal(t, "cell-biology--basics.json", deck.ExportFilename())

	payload, err := deck.ExportJSON()
	require.NoError(t, err)

	cards, err := ParseExport(payload)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, "Mitochondria", cards[0].Front)
	assert.Equal(t, "Powerhouse of the cell", cards[0].Back)
	assert.Equal(t, "mitochondria", cards[0].ImageKeyword)
	// Generated images and ids stay out of the export shape.
	assert.NotContains(t, string(payload), "card-1")
	assert.NotContains(t, string(payload), "GeneratedImage")
}

func TestParseExport_Invalid(t *testing.T) {
	_, err := ParseExport([]byte("not json"))
	assert.Error(t, err)
}
