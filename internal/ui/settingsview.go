package ui

import (
	"fmt"
	"strings"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/agdealers8/learn-and-conquer/internal/session"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	settingsFieldCountry = iota
	settingsFieldProvince
	settingsFieldSyllabus
	settingsFieldLanguage
	settingsFieldCount
)

// settingsModel edits the study profile after login and hosts the
// elevated-privilege gate. The gate only appears for the owner account, and
// flipping it requires the shared secret every time.
type settingsModel struct {
	store *session.Store

	inputs     []textinput.Model
	gradeIndex int
	focus      int

	secret     textinput.Model
	gateActive bool

	alert  string
	notice string
}

func newSettingsModel(store *session.Store) settingsModel {
	labels := []string{"Country", "Province/State", "Syllabus", "Language"}
	inputs := make([]textinput.Model, settingsFieldCount)
	for i, label := range labels {
		input := textinput.New()
		input.Placeholder = label
		input.CharLimit = 80
		input.Width = 40
		inputs[i] = input
	}

	secret := textinput.New()
	secret.Placeholder = "Owner secret"
	secret.EchoMode = textinput.EchoPassword
	secret.CharLimit = 80
	secret.Width = 40

	m := settingsModel{store: store, inputs: inputs, secret: secret}
	m.inputs[settingsFieldCountry].Focus()
	return m
}

// load refreshes the form from the current profile.
func (m *settingsModel) load() {
	profile := m.store.Settings()
	m.inputs[settingsFieldCountry].SetValue(profile.Country)
	m.inputs[settingsFieldProvince].SetValue(profile.Province)
	m.inputs[settingsFieldSyllabus].SetValue(profile.Syllabus)
	m.inputs[settingsFieldLanguage].SetValue(profile.Language)
	m.gradeIndex = 0
	for i, grade := range session.Grades {
		if grade == profile.Grade {
			m.gradeIndex = i
			break
		}
	}
}

func (m settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.gateActive {
		switch keyMsg.String() {
		case "esc":
			m.gateActive = false
			m.secret.SetValue("")
			m.inputs[settingsFieldCountry].Focus()
			return m, nil
		case "enter":
			admin, err := m.store.ToggleAdmin(m.secret.Value())
			m.secret.SetValue("")
			m.gateActive = false
			m.inputs[settingsFieldCountry].Focus()
			if err != nil {
				m.alert = err.Error()
				m.notice = ""
				return m, nil
			}
			m.alert = ""
			if admin {
				m.notice = "Owner mode enabled."
			} else {
				m.notice = "Owner mode disabled."
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.secret, cmd = m.secret.Update(msg)
		return m, cmd
	}

	// total focus slots: the text fields plus the grade selector
	total := settingsFieldCount + 1
	switch keyMsg.String() {
	case "tab", "down":
		m.blurAll()
		m.focus = (m.focus + 1) % total
		if m.focus < settingsFieldCount {
			m.inputs[m.focus].Focus()
		}
		return m, nil
	case "shift+tab", "up":
		m.blurAll()
		m.focus = (m.focus - 1 + total) % total
		if m.focus < settingsFieldCount {
			m.inputs[m.focus].Focus()
		}
		return m, nil
	case "left", "right":
		if m.focus == settingsFieldCount {
			delta := 1
			if keyMsg.String() == "left" {
				delta = -1
			}
			m.gradeIndex = (m.gradeIndex + delta + len(session.Grades)) % len(session.Grades)
			return m, nil
		}
	case "enter":
		profile := provider.Profile{
			Country:  strings.TrimSpace(m.inputs[settingsFieldCountry].Value()),
			Province: strings.TrimSpace(m.inputs[settingsFieldProvince].Value()),
			Syllabus: strings.TrimSpace(m.inputs[settingsFieldSyllabus].Value()),
			Language: strings.TrimSpace(m.inputs[settingsFieldLanguage].Value()),
			Grade:    session.Grades[m.gradeIndex],
		}
		if err := m.store.UpdateSettings(profile); err != nil {
			m.alert = err.Error()
			m.notice = ""
			return m, nil
		}
		m.alert = ""
		m.notice = "Profile saved."
		return m, nil
	case "ctrl+o":
		if !m.store.AdminOffered() {
			return m, nil
		}
		m.gateActive = true
		m.blurAll()
		m.secret.Focus()
		m.alert = ""
		m.notice = ""
		return m, textinput.Blink
	}

	if m.focus < settingsFieldCount {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *settingsModel) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m settingsModel) view() string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render("Settings") + "\n\n")

	if m.gateActive {
		sb.WriteString(headingStyle.Render("Owner access") + "\n\n")
		sb.WriteString(m.secret.View() + "\n\n")
		if m.alert != "" {
			sb.WriteString(alertStyle.Render(m.alert) + "\n")
		}
		sb.WriteString(helpStyle.Render("Enter confirm · Esc cancel"))
		return sb.String()
	}

	for _, input := range m.inputs {
		sb.WriteString(input.View() + "\n")
	}

	gradeLine := fmt.Sprintf("Grade: ← %s →", session.Grades[m.gradeIndex])
	if m.focus == settingsFieldCount {
		sb.WriteString(activeTabStyle.Render(gradeLine) + "\n\n")
	} else {
		sb.WriteString(mutedStyle.Render(gradeLine) + "\n\n")
	}

	if m.alert != "" {
		sb.WriteString(alertStyle.Render(m.alert) + "\n")
	}
	if m.notice != "" {
		sb.WriteString(noticeStyle.Render(m.notice) + "\n")
	}

	help := "Tab next field · ←/→ grade · Enter save"
	if m.store.AdminOffered() {
		help += " · Ctrl+O owner access"
	}
	sb.WriteString(helpStyle.Render(help))
	return sb.String()
}
