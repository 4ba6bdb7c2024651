package flashcard

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
)

var ErrEmptyDeck = errors.New("deck has no cards")

// Deck holds one generated flashcard set and the navigation cursor. A new
// topic replaces the deck wholesale; cards are only ever mutated to attach a
// lazily generated illustration, keyed by card id so a fetch that resolves
// after the user navigated away still lands on the right card.
type Deck struct {
	topic string
	cards []provider.Flashcard
	index int
}

func NewDeck(topic string, cards []provider.Flashcard) (*Deck, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}
	return &Deck{topic: topic, cards: cards}, nil
}

func (d *Deck) Topic() string { return d.topic }
func (d *Deck) Count() int    { return len(d.cards) }
func (d *Deck) Index() int    { return d.index }

// Current returns the card under the cursor.
func (d *Deck) Current() provider.Flashcard {
	return d.cards[d.index]
}

// Next advances the cursor, wrapping from the last card to the first.
func (d *Deck) Next() provider.Flashcard {
	d.index = (d.index + 1) % len(d.cards)
	return d.cards[d.index]
}

// Prev moves the cursor back, wrapping from the first card to the last.
func (d *Deck) Prev() provider.Flashcard {
	d.index = (d.index - 1 + len(d.cards)) % len(d.cards)
	return d.cards[d.index]
}

// NeedsIllustration reports whether the current card should trigger the lazy
// illustration fetch: it has an image keyword and no image yet.
func (d *Deck) NeedsIllustration() (id, keyword string, ok bool) {
	card := d.cards[d.index]
	if card.GeneratedImage == "" && card.ImageKeyword != "" {
		return card.ID, card.ImageKeyword, true
	}
	return "", "", false
}

// AttachImage stores a generated illustration on the card with the given id.
// The write is keyed by identity, not by the current cursor, and an image
// already present is never overwritten.
func (d *Deck) AttachImage(id, dataURI string) bool {
	for i := range d.cards {
		if d.cards[i].ID != id {
			continue
		}
		if d.cards[i].GeneratedImage != "" {
			return false
		}
		d.cards[i].GeneratedImage = dataURI
		return true
	}
	return false
}

// exportCard is the stable export shape: front, back and image keyword only.
type exportCard struct {
	Front        string `json:"front"`
	Back         string `json:"back"`
	ImageKeyword string `json:"imageKeyword,omitempty"`
}

// ExportJSON serializes the deck for download.
func (d *Deck) ExportJSON() ([]byte, error) {
	cards := make([]exportCard, 0, len(d.cards))
	for _, card := range d.cards {
		cards = append(cards, exportCard{
			Front:        card.Front,
			Back:         card.Back,
			ImageKeyword: card.ImageKeyword,
		})
	}
	payload, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json.MarshalIndent() > %w", err)
	}
	return payload, nil
}

// ExportFilename derives a filesystem-safe file name from the deck topic.
func (d *Deck) ExportFilename() string {
	name := strings.TrimSpace(strings.ToLower(d.topic))
	if name == "" {
		name = "flashcards"
	}
	replacer := strings.NewReplacer(" ", "-", "/", "-", "\\", "-", ":", "-", "*", "", "?", "", "\"", "")
	return replacer.Replace(name) + ".json"
}

// ParseExport decodes an exported deck back into cards.
func ParseExport(payload []byte) ([]provider.Flashcard, error) {
	var decoded []exportCard
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, fmt.Errorf("json.Unmarshal() > %w", err)
	}
	cards := make([]provider.Flashcard, 0, len(decoded))
	for _, card := range decoded {
		cards = append(cards, provider.Flashcard{
			Front:        card.Front,
			Back:         card.Back,
			ImageKeyword: card.ImageKeyword,
		})
	}
	return cards, nil
}
