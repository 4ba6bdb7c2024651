package ui

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/agdealers8/learn-and-conquer/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// mimeByExtension maps the image formats the whiteboard accepts.
var mimeByExtension = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// whiteboardModel sends a sketch or photo of working-out for analysis. The
// terminal cannot draw, so the capture is a path to an exported image file.
type whiteboardModel struct {
	store  *session.Store
	client provider.Client

	path     textinput.Model
	spin     spinner.Model
	analysis string
	loading  bool
	alert    string
}

func newWhiteboardModel(store *session.Store, client provider.Client) whiteboardModel {
	path := textinput.New()
	path.Placeholder = "Path to an image of your working (png, jpg, webp)…"
	path.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return whiteboardModel{
		store:  store,
		client: client,
		path:   path,
		spin:   spin,
	}
}

func (m whiteboardModel) update(msg tea.Msg) (whiteboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if m.loading {
				return m, nil
			}
			imagePath := strings.TrimSpace(m.path.Value())
			if imagePath == "" {
				m.alert = "Enter an image path first."
				return m, nil
			}
			mimeType, ok := mimeByExtension[strings.ToLower(filepath.Ext(imagePath))]
			if !ok {
				m.alert = "Unsupported image format: " + filepath.Ext(imagePath)
				return m, nil
			}
			data, err := os.ReadFile(imagePath)
			if err != nil {
				m.alert = err.Error()
				return m, nil
			}
			m.loading = true
			m.alert = ""
			m.analysis = ""
			encoded := base64.StdEncoding.EncodeToString(data)
			return m, tea.Batch(m.spin.Tick, analyzeImageCmd(m.client, encoded, mimeType, m.store.Settings()))
		}
		var cmd tea.Cmd
		m.path, cmd = m.path.Update(msg)
		return m, cmd

	case analysisMsg:
		m.loading = false
		if msg.err != nil {
			m.alert = msg.err.Error()
			return m, nil
		}
		m.analysis = msg.text
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

func (m whiteboardModel) view() string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render("Whiteboard") + "\n\n")
	sb.WriteString(m.path.View() + "\n\n")

	if m.loading {
		sb.WriteString(m.spin.View() + mutedStyle.Render(" analyzing…") + "\n")
	}
	if m.alert != "" {
		sb.WriteString(alertStyle.Render(m.alert) + "\n")
	}
	if m.analysis != "" {
		sb.WriteString(cardStyle.Render(m.analysis) + "\n")
	}

	sb.WriteString(helpStyle.Render("Enter analyze"))
	return sb.String()
}
