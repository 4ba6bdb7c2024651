package ui

import (
	"fmt"
	"strings"

	"github.com/agdealers8/learn-and-conquer/internal/flashcard"
	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/agdealers8/learn-and-conquer/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// flashcardsModel generates a deck per topic and navigates it with wrap-
// around. Illustrations are fetched lazily for the viewed card and written
// back by card id, so a slow fetch can never decorate the wrong card.
type flashcardsModel struct {
	store     *session.Store
	client    provider.Client
	exportDir string

	topic   textinput.Model
	spin    spinner.Model
	deck    *flashcard.Deck
	showing bool // back side
	loading bool
	alert   string
	notice  string
}

func newFlashcardsModel(store *session.Store, client provider.Client, exportDir string) flashcardsModel {
	topic := textinput.New()
	topic.Placeholder = "Topic, e.g. photosynthesis"
	topic.CharLimit = 120
	topic.Width = 40
	topic.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return flashcardsModel{store: store, client: client, exportDir: exportDir, topic: topic, spin: spin}
}

// illustrationCmd fires the lazy fetch when the viewed card needs one.
func (m flashcardsModel) illustrationCmd() tea.Cmd {
	if m.deck == nil {
		return nil
	}
	id, keyword, ok := m.deck.NeedsIllustration()
	if !ok {
		return nil
	}
	return fetchIllustrationCmd(m.client, id, keyword)
}

func (m flashcardsModel) update(msg tea.Msg) (flashcardsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.loading {
				return m, nil
			}
			topic := strings.TrimSpace(m.topic.Value())
			if topic == "" {
				m.alert = "Enter a topic first."
				return m, nil
			}
			m.loading = true
			m.alert = ""
			m.notice = ""
			return m, tea.Batch(m.spin.Tick, generateFlashcardsCmd(m.client, topic, m.store.Settings()))
		case "right", "n":
			if m.deck != nil {
				m.deck.Next()
				m.showing = false
				return m, m.illustrationCmd()
			}
		case "left", "p":
			if m.deck != nil {
				m.deck.Prev()
				m.showing = false
				return m, m.illustrationCmd()
			}
		case " ":
			if m.deck != nil {
				m.showing = !m.showing
				return m, nil
			}
		case "ctrl+e":
			if m.deck != nil {
				return m, exportDeckCmd(m.exportDir, m.deck)
			}
		}
		var cmd tea.Cmd
		m.topic, cmd = m.topic.Update(msg)
		return m, cmd

	case flashcardsMsg:
		// Loading always clears, whatever the outcome.
		m.loading = false
		if msg.err != nil {
			// Prior deck stays untouched on failure.
			m.alert = msg.err.Error()
			return m, nil
		}
		deck, err := flashcard.NewDeck(msg.topic, msg.cards)
		if err != nil {
			m.alert = err.Error()
			return m, nil
		}
		m.deck = deck
		m.showing = false
		return m, m.illustrationCmd()

	case illustrationMsg:
		if msg.err != nil || msg.dataURI == "" {
			// Illustration failures are logged upstream and swallowed here;
			// the card simply stays without an image.
			return m, nil
		}
		if m.deck != nil {
			m.deck.AttachImage(msg.cardID, msg.dataURI)
		}
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.alert = msg.err.Error()
		} else {
			m.notice = "Exported to " + msg.path
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m flashcardsModel) view() string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render("Flashcards") + "\n\n")
	sb.WriteString(m.topic.View() + "\n\n")

	if m.loading {
		sb.WriteString(m.spin.View() + mutedStyle.Render(" generating cards…") + "\n")
	}
	if m.alert != "" {
		sb.WriteString(alertStyle.Render(m.alert) + "\n")
	}
	if m.notice != "" {
		sb.WriteString(noticeStyle.Render(m.notice) + "\n")
	}

	if m.deck != nil {
		card := m.deck.Current()
		face := card.Front
		label := "front"
		if m.showing {
			face = card.Back
			label = "back"
		}
		sb.WriteString(cardStyle.Render(face) + "\n")
		status := fmt.Sprintf("card %d/%d (%s)", m.deck.Index()+1, m.deck.Count(), label)
		if card.GeneratedImage != "" {
			status += " · illustrated"
		}
		sb.WriteString(mutedStyle.Render(status) + "\n")
	}

	sb.WriteString(helpStyle.Render("Enter generate · ←/→ navigate · Space flip · Ctrl+E export"))
	return sb.String()
}
