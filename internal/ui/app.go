package ui

import (
	"strings"

	"github.com/agdealers8/learn-and-conquer/internal/library"
	"github.com/agdealers8/learn-and-conquer/internal/notes"
	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/agdealers8/learn-and-conquer/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// navTabs maps function keys to views once the user is logged in.
var navTabs = []struct {
	key  string
	view session.View
}{
	{"f1", session.ViewChat},
	{"f2", session.ViewFlashcards},
	{"f3", session.ViewQuiz},
	{"f4", session.ViewPlanner},
	{"f5", session.ViewNotes},
	{"f6", session.ViewLibrary},
	{"f7", session.ViewWhiteboard},
	{"f8", session.ViewSettings},
}

// App is the root Bubble Tea model: it reads the session store to pick the
// active mode controller and forwards messages. Asynchronous results are
// routed to the controller that owns them, not to whichever view is current,
// so switching views never drops an in-flight response.
type App struct {
	store  *session.Store
	client provider.Client

	width  int
	height int

	login      loginModel
	chat       chatModel
	flashcards flashcardsModel
	quiz       quizModel
	planner    plannerModel
	notesView  notesModel
	libView    libraryModel
	whiteboard whiteboardModel
	settings   settingsModel
}

// NewApp wires the mode controllers around the shared session store.
func NewApp(store *session.Store, client provider.Client, catalog *library.Catalog, noteStore *notes.Store, exportDir string) App {
	return App{
		store:      store,
		client:     client,
		login:      newLoginModel(store),
		chat:       newChatModel(store, client),
		flashcards: newFlashcardsModel(store, client, exportDir),
		quiz:       newQuizModel(store, client),
		planner:    newPlannerModel(store, client),
		notesView:  newNotesModel(store, client, exportDir, noteStore),
		libView:    newLibraryModel(store, client, catalog),
		whiteboard: newWhiteboardModel(store, client),
		settings:   newSettingsModel(store),
	}
}

func (a App) Init() tea.Cmd {
	return a.login.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.chat.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "f10":
			if a.store.User().LoggedIn {
				a.store.Logout()
				a.login = newLoginModel(a.store)
				return a, a.login.Init()
			}
		}
		if a.store.User().LoggedIn {
			for _, tab := range navTabs {
				if msg.String() == tab.key {
					a.store.SetView(tab.view)
					if tab.view == session.ViewSettings {
						a.settings.load()
					}
					return a, nil
				}
			}
		}

	// Async results go to their owning controller regardless of the
	// current view.
	case chatStartedMsg, chatFragmentMsg, chatStreamClosedMsg, chatFailedMsg:
		var cmd tea.Cmd
		a.chat, cmd = a.chat.update(msg)
		return a, cmd
	case flashcardsMsg, illustrationMsg, exportedMsg:
		var cmd tea.Cmd
		a.flashcards, cmd = a.flashcards.update(msg)
		return a, cmd
	case quizMsg:
		var cmd tea.Cmd
		a.quiz, cmd = a.quiz.update(msg)
		return a, cmd
	case scheduleMsg, timerTickMsg:
		var cmd tea.Cmd
		a.planner, cmd = a.planner.update(msg)
		return a, cmd
	case summaryMsg, notePDFMsg:
		var cmd tea.Cmd
		a.notesView, cmd = a.notesView.update(msg)
		return a, cmd
	case resourceMsg:
		var cmd tea.Cmd
		a.libView, cmd = a.libView.update(msg)
		return a, cmd
	case analysisMsg:
		var cmd tea.Cmd
		a.whiteboard, cmd = a.whiteboard.update(msg)
		return a, cmd
	}

	return a.routeToActive(msg)
}

// routeToActive forwards a message to the controller the router points at.
func (a App) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.store.CurrentView() {
	case session.ViewLogin:
		a.login, cmd = a.login.update(msg)
	case session.ViewChat:
		a.chat, cmd = a.chat.update(msg)
	case session.ViewFlashcards:
		a.flashcards, cmd = a.flashcards.update(msg)
	case session.ViewQuiz:
		a.quiz, cmd = a.quiz.update(msg)
	case session.ViewPlanner:
		a.planner, cmd = a.planner.update(msg)
	case session.ViewNotes:
		a.notesView, cmd = a.notesView.update(msg)
	case session.ViewLibrary:
		a.libView, cmd = a.libView.update(msg)
	case session.ViewWhiteboard:
		a.whiteboard, cmd = a.whiteboard.update(msg)
	case session.ViewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	if a.store.CurrentView() == session.ViewLogin {
		return a.login.view()
	}

	var body string
	switch a.store.CurrentView() {
	case session.ViewChat:
		body = a.chat.view()
	case session.ViewFlashcards:
		body = a.flashcards.view()
	case session.ViewQuiz:
		body = a.quiz.view()
	case session.ViewPlanner:
		body = a.planner.view()
	case session.ViewNotes:
		body = a.notesView.view()
	case session.ViewLibrary:
		body = a.libView.view()
	case session.ViewWhiteboard:
		body = a.whiteboard.view()
	case session.ViewSettings:
		body = a.settings.view()
	}

	return a.header() + "\n\n" + body + helpStyle.Render("F1-F8 switch view · F10 log out · Ctrl+C quit") + "\n"
}

func (a App) header() string {
	var tabs []string
	tabs = append(tabs, appTitleStyle.Render("Learn & Conquer"))
	current := a.store.CurrentView()
	for _, tab := range navTabs {
		label := tab.view.String()
		if tab.view == current {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	if a.store.IsAdmin() {
		tabs = append(tabs, adminBadgeStyle.Render("OWNER"))
	}
	return strings.Join(tabs, "")
}
