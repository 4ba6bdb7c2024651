package ui

import (
	"fmt"
	"strings"

	"github.com/agdealers8/learn-and-conquer/internal/notes"
	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/agdealers8/learn-and-conquer/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// notesMode tracks whether the list or the note form is active.
type notesMode int

const (
	notesList notesMode = iota
	notesForm
)

// notesModel manages the in-session note list, the add/edit form and the
// summarize flow. Abandoning an edit puts the original note back; it is never
// lost just because the form was dismissed.
type notesModel struct {
	store     *session.Store
	client    provider.Client
	noteStore *notes.Store
	exportDir string

	mode     notesMode
	cursor   int
	title    textinput.Model
	category textinput.Model
	content  textarea.Model
	focus    int
	spin     spinner.Model

	summaryTopic string
	summary      string
	loading      bool
	alert        string
	notice       string
}

func newNotesModel(store *session.Store, client provider.Client, exportDir string, noteStore *notes.Store) notesModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 120

	category := textinput.New()
	category.Placeholder = "Category (e.g. Biology)"
	category.CharLimit = 60

	content := textarea.New()
	content.Placeholder = "Write your note…"
	content.SetWidth(60)
	content.SetHeight(6)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return notesModel{
		store:     store,
		client:    client,
		noteStore: noteStore,
		exportDir: exportDir,
		title:     title,
		category:  category,
		content:   content,
		spin:      spin,
	}
}

func (m notesModel) update(msg tea.Msg) (notesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == notesForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)

	case summaryMsg:
		m.loading = false
		if msg.err != nil {
			m.alert = msg.err.Error()
			return m, nil
		}
		m.summary = msg.text
		m.notice = "Summary ready. Ctrl+P saves it as markdown and PDF."
		return m, nil

	case notePDFMsg:
		m.loading = false
		if msg.err != nil {
			m.alert = msg.err.Error()
			return m, nil
		}
		m.notice = "Saved " + msg.path
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

func (m notesModel) updateList(msg tea.KeyMsg) (notesModel, tea.Cmd) {
	list := m.noteStore.List()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(list)-1 {
			m.cursor++
		}
	case "ctrl+n":
		m.openForm(notes.Note{})
		return m, textinput.Blink
	case "ctrl+e":
		if m.cursor < len(list) {
			note, err := m.noteStore.BeginEdit(list[m.cursor].ID)
			if err != nil {
				m.alert = err.Error()
				return m, nil
			}
			m.openForm(note)
			return m, textinput.Blink
		}
	case "ctrl+d":
		if m.cursor < len(list) {
			if err := m.noteStore.Delete(list[m.cursor].ID); err != nil {
				m.alert = err.Error()
			}
			if m.cursor > 0 {
				m.cursor--
			}
		}
	case "ctrl+s":
		if m.loading || m.cursor >= len(list) {
			return m, nil
		}
		note := list[m.cursor]
		m.loading = true
		m.alert = ""
		m.summary = ""
		m.summaryTopic = note.Title
		return m, tea.Batch(m.spin.Tick, summarizeCmd(m.client, note.Content, m.store.Settings()))
	case "ctrl+p":
		if m.summary == "" {
			m.alert = "Summarize a note first."
			return m, nil
		}
		m.loading = true
		m.alert = ""
		return m, tea.Batch(m.spin.Tick, exportSummaryCmd(m.exportDir, m.summaryTopic, m.summary, true))
	}
	return m, nil
}

func (m notesModel) updateForm(msg tea.KeyMsg) (notesModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// An abandoned edit restores the original note.
		if _, editing := m.noteStore.Editing(); editing {
			if err := m.noteStore.CancelEdit(); err != nil {
				m.alert = err.Error()
			}
		}
		m.mode = notesList
		return m, nil
	case "tab", "shift+tab":
		if msg.String() == "tab" {
			m.focus = (m.focus + 1) % 3
		} else {
			m.focus = (m.focus + 2) % 3
		}
		m.title.Blur()
		m.category.Blur()
		m.content.Blur()
		switch m.focus {
		case 0:
			m.title.Focus()
		case 1:
			m.category.Focus()
		default:
			m.content.Focus()
		}
		return m, textinput.Blink
	case "ctrl+s":
		title := strings.TrimSpace(m.title.Value())
		content := strings.TrimSpace(m.content.Value())
		if title == "" || content == "" {
			m.alert = "Title and content are required."
			return m, nil
		}
		category := strings.TrimSpace(m.category.Value())
		if _, editing := m.noteStore.Editing(); editing {
			if _, err := m.noteStore.SaveEdit(title, content, category); err != nil {
				m.alert = err.Error()
				return m, nil
			}
		} else {
			m.noteStore.Add(title, m.store.User().Name, content, category, m.store.IsAdmin())
		}
		m.mode = notesList
		m.cursor = 0
		m.alert = ""
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case 0:
		m.title, cmd = m.title.Update(msg)
	case 1:
		m.category, cmd = m.category.Update(msg)
	default:
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m *notesModel) openForm(note notes.Note) {
	m.mode = notesForm
	m.alert = ""
	m.title.SetValue(note.Title)
	m.category.SetValue(note.Category)
	m.content.SetValue(note.Content)
	m.focus = 0
	m.title.Focus()
	m.category.Blur()
	m.content.Blur()
}

func (m notesModel) view() string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render("Notes") + "\n\n")

	if m.mode == notesForm {
		sb.WriteString(m.title.View() + "\n")
		sb.WriteString(m.category.View() + "\n")
		sb.WriteString(m.content.View() + "\n\n")
		if m.alert != "" {
			sb.WriteString(alertStyle.Render(m.alert) + "\n")
		}
		sb.WriteString(helpStyle.Render("Tab next field · Ctrl+S save · Esc cancel"))
		return sb.String()
	}

	list := m.noteStore.List()
	if len(list) == 0 {
		sb.WriteString(mutedStyle.Render("No notes yet. Ctrl+N starts one.") + "\n")
	}
	for i, note := range list {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		line := fmt.Sprintf("%s%s", marker, note.Title)
		if note.Category != "" {
			line += mutedStyle.Render("  [" + note.Category + "]")
		}
		if note.Verified {
			line += noticeStyle.Render("  ✔ verified")
		}
		line += mutedStyle.Render("  " + note.Author + ", " + note.Date.Format("Jan 2"))
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")

	if m.loading {
		sb.WriteString(m.spin.View() + mutedStyle.Render(" working…") + "\n")
	}
	if m.alert != "" {
		sb.WriteString(alertStyle.Render(m.alert) + "\n")
	}
	if m.notice != "" {
		sb.WriteString(noticeStyle.Render(m.notice) + "\n")
	}
	if m.summary != "" {
		sb.WriteString(cardStyle.Render(headingStyle.Render(m.summaryTopic)+"\n\n"+m.summary) + "\n")
	}

	sb.WriteString(helpStyle.Render("Ctrl+N new · Ctrl+E edit · Ctrl+D delete · Ctrl+S summarize · Ctrl+P export PDF"))
	return sb.String()
}
