package ui

import (
	"strings"

	"github.com/agdealers8/learn-and-conquer/internal/chat"
	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/agdealers8/learn-and-conquer/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// chatModel renders the transcript and drives the streaming accumulator.
// The send control is disabled while a turn is in flight.
type chatModel struct {
	store  *session.Store
	client provider.Client

	acc     *chat.Accumulator
	speaker chat.Speaker
	voice   bool

	input textinput.Model
	spin  spinner.Model
	vp    viewport.Model
	ready bool
}

func newChatModel(store *session.Store, client provider.Client) chatModel {
	input := textinput.New()
	input.Placeholder = "Ask anything about your studies"
	input.CharLimit = 0
	input.Width = 60
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return chatModel{
		store:   store,
		client:  client,
		acc:     chat.NewAccumulator(),
		speaker: chat.NopSpeaker{},
		input:   input,
		spin:    spin,
	}
}

func (m *chatModel) resize(width, height int) {
	contentHeight := height - 8
	if contentHeight < 3 {
		contentHeight = 3
	}
	if !m.ready {
		m.vp = viewport.New(width-2, contentHeight)
		m.ready = true
	} else {
		m.vp.Width = width - 2
		m.vp.Height = contentHeight
	}
	m.input.Width = width - 6
	m.refreshTranscript()
}

func (m chatModel) update(msg tea.Msg) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.acc.Busy() {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if _, err := m.acc.Begin(text); err != nil {
				return m, nil
			}
			m.input.SetValue("")
			m.refreshTranscript()
			history := m.acc.History()
			return m, tea.Batch(
				m.spin.Tick,
				startChatCmd(m.client, history, text, m.store.Settings()),
			)
		case "ctrl+o":
			m.voice = !m.voice
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case chatStartedMsg:
		if err := m.acc.StreamStarted(); err != nil {
			return m, nil
		}
		return m, listenFragmentCmd(msg.ch)

	case chatFragmentMsg:
		if msg.fragment.Err != nil {
			_, _ = m.acc.Fail()
			m.refreshTranscript()
			return m, nil
		}
		_, _ = m.acc.Apply(msg.fragment.Text)
		m.refreshTranscript()
		return m, listenFragmentCmd(msg.ch)

	case chatStreamClosedMsg:
		final, err := m.acc.Complete()
		m.refreshTranscript()
		if err == nil && m.voice && final.Text != "" {
			tag := chat.SpeechTag(m.store.Settings().Language)
			speaker, text := m.speaker, final.Text
			return m, func() tea.Msg {
				_ = speaker.Speak(text, tag)
				return nil
			}
		}
		return m, nil

	case chatFailedMsg:
		_, _ = m.acc.Fail()
		m.refreshTranscript()
		return m, nil

	case spinner.TickMsg:
		if !m.acc.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *chatModel) refreshTranscript() {
	if !m.ready {
		return
	}
	var sb strings.Builder
	for _, message := range m.acc.Messages() {
		switch message.Role {
		case provider.RoleUser:
			sb.WriteString(userMessageStyle.Render("You: ") + message.Text + "\n\n")
		default:
			sb.WriteString(modelMessageStyle.Render(message.Text) + "\n\n")
		}
	}
	m.vp.SetContent(sb.String())
	m.vp.GotoBottom()
}

func (m chatModel) view() string {
	var sb strings.Builder
	if m.ready {
		sb.WriteString(m.vp.View() + "\n")
	} else {
		for _, message := range m.acc.Messages() {
			prefix := ""
			if message.Role == provider.RoleUser {
				prefix = userMessageStyle.Render("You: ")
			}
			sb.WriteString(prefix + message.Text + "\n\n")
		}
	}

	if m.acc.Busy() {
		sb.WriteString(m.spin.View() + mutedStyle.Render(" thinking…") + "\n")
	}
	sb.WriteString(m.input.View() + "\n")

	voice := "off"
	if m.voice {
		voice = "on"
	}
	sb.WriteString(helpStyle.Render("Enter send · Ctrl+O voice " + voice + " · PgUp/PgDn scroll"))
	return sb.String()
}
