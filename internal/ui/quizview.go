package ui

import (
	"fmt"
	"strings"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/agdealers8/learn-and-conquer/internal/quiz"
	"github.com/agdealers8/learn-and-conquer/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// quizModel generates a question batch and runs it. Answering is one-way:
// the first selection per question is scored, later presses are ignored.
type quizModel struct {
	store  *session.Store
	client provider.Client

	topic        textinput.Model
	requirements textinput.Model
	focusTopic   bool

	spin    spinner.Model
	run     *quiz.Run
	loading bool
	alert   string
}

func newQuizModel(store *session.Store, client provider.Client) quizModel {
	topic := textinput.New()
	topic.Placeholder = "Quiz topic"
	topic.CharLimit = 120
	topic.Width = 40
	topic.Focus()

	requirements := textinput.New()
	requirements.Placeholder = "Optional: difficulty, question count…"
	requirements.CharLimit = 200
	requirements.Width = 40

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return quizModel{store: store, client: client, topic: topic, requirements: requirements, focusTopic: true, spin: spin}
}

func (m quizModel) update(msg tea.Msg) (quizModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.run != nil && !m.run.Finished() {
			return m.updateRun(msg)
		}
		switch msg.String() {
		case "tab":
			m.focusTopic = !m.focusTopic
			if m.focusTopic {
				m.topic.Focus()
				m.requirements.Blur()
			} else {
				m.topic.Blur()
				m.requirements.Focus()
			}
			return m, nil
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
			return m, tea.Batch(m.spin.Tick,
				generateQuizCmd(m.client, topic, strings.TrimSpace(m.requirements.Value()), m.store.Settings()))
		}
		var cmd tea.Cmd
		if m.focusTopic {
			m.topic, cmd = m.topic.Update(msg)
		} else {
			m.requirements, cmd = m.requirements.Update(msg)
		}
		return m, cmd

	case quizMsg:
		m.loading = false
		if msg.err != nil {
			m.alert = msg.err.Error()
			return m, nil
		}
		run, err := quiz.NewRun(msg.questions)
		if err != nil {
			m.alert = err.Error()
			return m, nil
		}
		m.run = run
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

func (m quizModel) updateRun(msg tea.KeyMsg) (quizModel, tea.Cmd) {
	key := msg.String()
	switch key {
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		choice := int(key[0]-'0') - 1
		m.run.Answer(choice)
		return m, nil
	case "enter":
		if m.run.Answered() {
			_ = m.run.Next()
		}
		return m, nil
	case "esc":
		m.run = nil
		return m, nil
	}
	return m, nil
}

func (m quizModel) view() string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render("Quiz") + "\n\n")

	if m.run == nil || m.run.Finished() {
		if m.run != nil && m.run.Finished() {
			sb.WriteString(noticeStyle.Render(fmt.Sprintf("Result: %d / %d", m.run.Score(), m.run.Total())) + "\n\n")
		}
		sb.WriteString(m.topic.View() + "\n")
		sb.WriteString(m.requirements.View() + "\n\n")
		if m.loading {
			sb.WriteString(m.spin.View() + mutedStyle.Render(" writing questions…") + "\n")
		}
		if m.alert != "" {
			sb.WriteString(alertStyle.Render(m.alert) + "\n")
		}
		sb.WriteString(helpStyle.Render("Tab switch field · Enter generate"))
		return sb.String()
	}

	question := m.run.Current()
	sb.WriteString(fmt.Sprintf("Question %d of %d\n\n", m.run.Index()+1, m.run.Total()))
	sb.WriteString(question.Question + "\n\n")

	selected := m.run.Selected()
	for i, option := range question.Options {
		line := fmt.Sprintf("  %d. %s", i+1, option)
		if selected != quiz.Unanswered {
			switch {
			case i == question.CorrectAnswerIndex:
				line = correctStyle.Render(line)
			case i == selected:
				line = wrongStyle.Render(line)
			}
		}
		sb.WriteString(line + "\n")
	}

	if selected != quiz.Unanswered {
		if question.Explanation != "" {
			sb.WriteString("\n" + mutedStyle.Render(question.Explanation) + "\n")
		}
		sb.WriteString(helpStyle.Render("Enter next question"))
	} else {
		sb.WriteString(helpStyle.Render("Press 1-9 to answer"))
	}
	return sb.String()
}
