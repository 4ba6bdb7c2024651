package ui

import (
	"fmt"
	"strings"

	"github.com/agdealers8/learn-and-conquer/internal/library"
	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/agdealers8/learn-and-conquer/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// libraryMode tracks which library surface is active.
type libraryMode int

const (
	libraryBrowse libraryMode = iota
	libraryRead
	libraryAdd
)

// libraryModel browses the in-memory catalog. The local shelf is always
// searched first; the external lookup only fires for queries the shelf cannot
// satisfy, and only when the query is long enough to be meaningful.
type libraryModel struct {
	store    *session.Store
	client   provider.Client
	catalog  *library.Catalog
	resolver *library.Resolver

	mode    libraryMode
	search  textinput.Model
	cursor  int
	matches []library.Book
	reading library.Book
	spin    spinner.Model

	addTitle  textinput.Model
	addAuthor textinput.Model
	addFocus  int

	external  *provider.ExternalResource
	searching bool
	alert     string
}

func newLibraryModel(store *session.Store, client provider.Client, catalog *library.Catalog) libraryModel {
	search := textinput.New()
	search.Placeholder = "Search the shelf by title…"
	search.Focus()

	addTitle := textinput.New()
	addTitle.Placeholder = "Title"
	addAuthor := textinput.New()
	addAuthor.Placeholder = "Author"

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return libraryModel{
		store:     store,
		client:    client,
		catalog:   catalog,
		resolver:  library.NewResolver(client),
		search:    search,
		matches:   catalog.Books(),
		spin:      spin,
		addTitle:  addTitle,
		addAuthor: addAuthor,
	}
}

func (m libraryModel) update(msg tea.Msg) (libraryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case libraryRead:
			if msg.String() == "esc" {
				m.mode = libraryBrowse
			}
			return m, nil
		case libraryAdd:
			return m.updateAdd(msg)
		}
		return m.updateBrowse(msg)

	case resourceMsg:
		m.searching = false
		if msg.err != nil {
			m.alert = msg.err.Error()
			return m, nil
		}
		if msg.resource.Found {
			resource := msg.resource
			m.external = &resource
		} else {
			m.alert = "Nothing found on the shelf or online."
		}
		return m, nil

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m libraryModel) updateBrowse(msg tea.KeyMsg) (libraryModel, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		query := m.search.Value()
		m.matches = m.catalog.Search(query)
		m.cursor = 0
		m.external = nil
		m.alert = ""
		if library.ShouldSearchExternally(query, len(m.matches)) && !m.searching {
			m.searching = true
			return m, tea.Batch(m.spin.Tick, searchExternalCmd(m.resolver, query, m.store.Settings()))
		}
		return m, nil
	case "ctrl+r":
		if m.cursor < len(m.matches) {
			m.reading = m.matches[m.cursor]
			m.mode = libraryRead
		}
		return m, nil
	case "ctrl+a":
		if !m.store.IsAdmin() {
			m.alert = session.ErrAccessDenied.Error()
			return m, nil
		}
		m.mode = libraryAdd
		m.addTitle.SetValue("")
		m.addAuthor.SetValue("")
		m.addFocus = 0
		m.addTitle.Focus()
		m.addAuthor.Blur()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m libraryModel) updateAdd(msg tea.KeyMsg) (libraryModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = libraryBrowse
		return m, nil
	case "tab", "shift+tab":
		m.addFocus = 1 - m.addFocus
		if m.addFocus == 0 {
			m.addTitle.Focus()
			m.addAuthor.Blur()
		} else {
			m.addTitle.Blur()
			m.addAuthor.Focus()
		}
		return m, textinput.Blink
	case "enter":
		title := strings.TrimSpace(m.addTitle.Value())
		if title == "" {
			m.alert = "A title is required."
			return m, nil
		}
		m.catalog.Add(library.Book{
			ID:     uuid.NewString(),
			Title:  title,
			Author: strings.TrimSpace(m.addAuthor.Value()),
		})
		m.mode = libraryBrowse
		m.matches = m.catalog.Search(m.search.Value())
		m.alert = ""
		return m, nil
	}

	var cmd tea.Cmd
	if m.addFocus == 0 {
		m.addTitle, cmd = m.addTitle.Update(msg)
	} else {
		m.addAuthor, cmd = m.addAuthor.Update(msg)
	}
	return m, cmd
}

func (m libraryModel) view() string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render("Library") + "\n\n")

	switch m.mode {
	case libraryRead:
		sb.WriteString(headingStyle.Render(m.reading.Title) + "\n")
		sb.WriteString(mutedStyle.Render("by "+m.reading.Author) + "\n\n")
		sb.WriteString(m.reading.Content + "\n\n")
		sb.WriteString(helpStyle.Render("Esc back to the shelf"))
		return sb.String()

	case libraryAdd:
		sb.WriteString(headingStyle.Render("Add a book") + "\n\n")
		sb.WriteString(m.addTitle.View() + "\n")
		sb.WriteString(m.addAuthor.View() + "\n\n")
		if m.alert != "" {
			sb.WriteString(alertStyle.Render(m.alert) + "\n")
		}
		sb.WriteString(helpStyle.Render("Tab next field · Enter save · Esc cancel"))
		return sb.String()
	}

	sb.WriteString(m.search.View() + "\n\n")
	for i, book := range m.matches {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		sb.WriteString(fmt.Sprintf("%s%s", marker, book.Title))
		sb.WriteString(mutedStyle.Render("  " + book.Author))
		sb.WriteString("\n")
	}
	if len(m.matches) == 0 && !m.searching && m.external == nil && m.alert == "" {
		sb.WriteString(mutedStyle.Render("No local matches.") + "\n")
	}
	sb.WriteString("\n")

	if m.searching {
		sb.WriteString(m.spin.View() + mutedStyle.Render(" searching online…") + "\n")
	}
	if m.external != nil {
		sb.WriteString(cardStyle.Render(headingStyle.Render("Online resource")+"\n"+m.external.Title+"\n"+mutedStyle.Render(m.external.Link)) + "\n")
	}
	if m.alert != "" {
		sb.WriteString(alertStyle.Render(m.alert) + "\n")
	}

	help := "Enter search · Ctrl+R read"
	if m.store.IsAdmin() {
		help += " · Ctrl+A add book"
	}
	sb.WriteString(helpStyle.Render(help))
	return sb.String()
}
