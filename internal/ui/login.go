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
	loginStepIdentity = iota
	loginStepProfile
)

// loginModel is the two-step profile intake: step one collects name and
// email, step two the study profile. Every field of a step must be filled
// before advancing.
type loginModel struct {
	store *session.Store

	step   int
	focus  int
	inputs []textinput.Model

	gradeIndex int
	alert      string
}

const (
	loginFieldName = iota
	loginFieldEmail
	loginFieldCountry
	loginFieldProvince
	loginFieldSyllabus
	loginFieldLanguage
	loginFieldCount
)

func newLoginModel(store *session.Store) loginModel {
	labels := []string{"Name", "Email", "Country", "Province/State", "Syllabus", "Language"}
	inputs := make([]textinput.Model, loginFieldCount)
	for i, label := range labels {
		input := textinput.New()
		input.Placeholder = label
		input.CharLimit = 80
		input.Width = 40
		inputs[i] = input
	}
	inputs[loginFieldLanguage].SetValue("English")

	m := loginModel{store: store, inputs: inputs}
	m.inputs[loginFieldName].Focus()
	return m
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

// stepFields returns the input indexes belonging to the current step.
func (m loginModel) stepFields() []int {
	if m.step == loginStepIdentity {
		return []int{loginFieldName, loginFieldEmail}
	}
	return []int{loginFieldCountry, loginFieldProvince, loginFieldSyllabus, loginFieldLanguage}
}

func (m loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	fields := m.stepFields()
	switch keyMsg.String() {
	case "tab", "down":
		m.blurAll()
		m.focus = (m.focus + 1) % (len(fields) + 1) // +1 for the grade selector on step two
		if m.step == loginStepIdentity {
			m.focus = m.focus % len(fields)
		}
		if m.focus < len(fields) {
			m.inputs[fields[m.focus]].Focus()
		}
		return m, nil

	case "shift+tab", "up":
		m.blurAll()
		total := len(fields)
		if m.step == loginStepProfile {
			total++
		}
		m.focus = (m.focus - 1 + total) % total
		if m.focus < len(fields) {
			m.inputs[fields[m.focus]].Focus()
		}
		return m, nil

	case "left", "right":
		if m.step == loginStepProfile && m.focus == len(fields) {
			delta := 1
			if keyMsg.String() == "left" {
				delta = -1
			}
			m.gradeIndex = (m.gradeIndex + delta + len(session.Grades)) % len(session.Grades)
			return m, nil
		}

	case "enter":
		return m.advance()
	}

	return m.updateInputs(msg)
}

func (m loginModel) advance() (loginModel, tea.Cmd) {
	m.alert = ""
	if m.step == loginStepIdentity {
		if m.value(loginFieldName) == "" || m.value(loginFieldEmail) == "" {
			m.alert = "Name and email are both required."
			return m, nil
		}
		m.step = loginStepProfile
		m.focus = 0
		m.blurAll()
		m.inputs[loginFieldCountry].Focus()
		return m, nil
	}

	for _, field := range []int{loginFieldCountry, loginFieldProvince, loginFieldSyllabus} {
		if m.value(field) == "" {
			m.alert = "Country, province and syllabus are all required."
			return m, nil
		}
	}

	user := session.User{Name: m.value(loginFieldName), Email: m.value(loginFieldEmail)}
	settings := provider.Profile{
		Language: m.value(loginFieldLanguage),
		Syllabus: m.value(loginFieldSyllabus),
		Grade:    session.Grades[m.gradeIndex],
		Country:  m.value(loginFieldCountry),
		Province: m.value(loginFieldProvince),
	}
	if err := m.store.Login(user, settings); err != nil {
		m.alert = err.Error()
		return m, nil
	}
	return m, nil
}

func (m loginModel) updateInputs(msg tea.Msg) (loginModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *loginModel) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m loginModel) value(field int) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

func (m loginModel) view() string {
	var sb strings.Builder
	sb.WriteString(appTitleStyle.Render("Learn & Conquer") + "\n\n")

	if m.step == loginStepIdentity {
		sb.WriteString(headingStyle.Render("Welcome! Who is studying today?") + "\n\n")
		sb.WriteString(m.inputs[loginFieldName].View() + "\n")
		sb.WriteString(m.inputs[loginFieldEmail].View() + "\n")
	} else {
		sb.WriteString(headingStyle.Render("Tell us about your studies") + "\n\n")
		for _, field := range []int{loginFieldCountry, loginFieldProvince, loginFieldSyllabus, loginFieldLanguage} {
			sb.WriteString(m.inputs[field].View() + "\n")
		}
		gradeLine := fmt.Sprintf("Level: < %s >", session.Grades[m.gradeIndex])
		if m.focus == len(m.stepFields()) {
			gradeLine = headingStyle.Render(gradeLine)
		}
		sb.WriteString(gradeLine + "\n")
	}

	if m.alert != "" {
		sb.WriteString("\n" + alertStyle.Render(m.alert) + "\n")
	}
	sb.WriteString(helpStyle.Render("Tab move · Enter continue") + "\n")
	return sb.String()
}
