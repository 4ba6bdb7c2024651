package ui

import (
	"fmt"
	"strings"

	"github.com/agdealers8/learn-and-conquer/internal/planner"
	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/agdealers8/learn-and-conquer/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// plannerModel turns a freeform description of the day into a schedule and
// runs the focus timer. The timer is purely local state: one countdown,
// restarted from its preset, one notification at zero.
type plannerModel struct {
	store  *session.Store
	client provider.Client

	input    textarea.Model
	spin     spinner.Model
	sessions []provider.StudySession
	timer    *planner.Timer
	ticking  bool
	loading  bool
	alert    string
	notice   string
}

func newPlannerModel(store *session.Store, client provider.Client) plannerModel {
	input := textarea.New()
	input.Placeholder = "Describe your day: free after 4pm, math exam Friday, 2 hours available…"
	input.SetWidth(60)
	input.SetHeight(3)
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return plannerModel{
		store:  store,
		client: client,
		input:  input,
		spin:   spin,
		timer:  planner.NewTimer(planner.NopNotifier{}),
	}
}

func (m plannerModel) update(msg tea.Msg) (plannerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			if m.loading {
				return m, nil
			}
			freeform := strings.TrimSpace(m.input.Value())
			if freeform == "" {
				m.alert = "Describe your day first."
				return m, nil
			}
			m.loading = true
			m.alert = ""
			return m, tea.Batch(m.spin.Tick, generateScheduleCmd(m.client, freeform, m.store.Settings()))
		case "ctrl+w":
			m.timer.Start(planner.ModeWork)
			m.notice = ""
			if !m.ticking {
				m.ticking = true
				return m, timerTickCmd()
			}
			return m, nil
		case "ctrl+b":
			m.timer.Start(planner.ModeBreak)
			m.notice = ""
			if !m.ticking {
				m.ticking = true
				return m, timerTickCmd()
			}
			return m, nil
		case "ctrl+x":
			m.timer.Stop()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case timerTickMsg:
		if !m.timer.Running() {
			m.ticking = false
			return m, nil
		}
		if done := m.timer.Tick(); done {
			m.ticking = false
			m.notice = fmt.Sprintf("Time's up! Your %s session is over.", m.timer.Mode())
			// Terminal bell stands in for sound and vibration.
			return m, tea.Printf("\a")
		}
		return m, timerTickCmd()

	case scheduleMsg:
		m.loading = false
		if msg.err != nil {
			m.alert = msg.err.Error()
			return m, nil
		}
		m.sessions = msg.sessions
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

func (m plannerModel) view() string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render("Study Planner") + "\n\n")
	sb.WriteString(m.input.View() + "\n\n")

	if m.loading {
		sb.WriteString(m.spin.View() + mutedStyle.Render(" planning…") + "\n")
	}
	if m.alert != "" {
		sb.WriteString(alertStyle.Render(m.alert) + "\n")
	}

	for _, s := range m.sessions {
		sb.WriteString(fmt.Sprintf("  %s  %s (%d min)", s.Time, s.Activity, s.DurationMinutes))
		if s.Notes != "" {
			sb.WriteString(mutedStyle.Render("  — " + s.Notes))
		}
		sb.WriteString("\n")
	}
	if len(m.sessions) > 0 {
		sb.WriteString("\n")
	}

	timerLine := fmt.Sprintf("Focus timer: %s", m.timer.RemainingClock())
	if m.timer.Running() {
		timerLine += fmt.Sprintf(" (%s)", m.timer.Mode())
		sb.WriteString(headingStyle.Render(timerLine) + "\n")
	} else {
		sb.WriteString(mutedStyle.Render(timerLine) + "\n")
	}
	if m.notice != "" {
		sb.WriteString(noticeStyle.Render(m.notice) + "\n")
	}

	sb.WriteString(helpStyle.Render("Ctrl+S plan · Ctrl+W 25m focus · Ctrl+B 5m break · Ctrl+X stop"))
	return sb.String()
}
