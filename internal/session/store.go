package session

import (
	"crypto/subtle"
	"errors"
	"slices"
	"sync"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
)

// View selects which mode controller the router renders.
type View int

const (
	ViewLogin View = iota
	ViewChat
	ViewFlashcards
	ViewQuiz
	ViewPlanner
	ViewNotes
	ViewLibrary
	ViewWhiteboard
	ViewSettings
)

func (v View) String() string {
	switch v {
	case ViewLogin:
		return "Login"
	case ViewChat:
		return "Chat"
	case ViewFlashcards:
		return "Flashcards"
	case ViewQuiz:
		return "Quiz"
	case ViewPlanner:
		return "Planner"
	case ViewNotes:
		return "Notes"
	case ViewLibrary:
		return "Library"
	case ViewWhiteboard:
		return "Whiteboard"
	case ViewSettings:
		return "Settings"
	}
	return "Unknown"
}

// User is the authenticated identity for the session.
type User struct {
	Name     string
	Email    string
	LoggedIn bool
}

// Grades is the fixed set of levels the profile intake accepts.
var Grades = []string{
	"Primary School",
	"Middle School",
	"High School",
	"Undergraduate",
	"Postgraduate",
	"Self-Study",
}

// ValidGrade reports whether grade is in the accepted set.
func ValidGrade(grade string) bool {
	return slices.Contains(Grades, grade)
}

var (
	ErrNotLoggedIn    = errors.New("no user is logged in")
	ErrMissingProfile = errors.New("name and email are required")
	ErrInvalidGrade   = errors.New("grade is not in the accepted set")
	ErrAccessDenied   = errors.New("Access Denied")
)

// Store is the single source of truth for session state: the authenticated
// user, the study-settings profile, the active view and the admin flag.
// Writes are restricted to the login and settings flows plus the admin gate;
// every other controller only reads.
type Store struct {
	mu       sync.RWMutex
	user     User
	settings provider.Profile
	view     View
	admin    bool

	ownerEmail  string
	adminSecret string
}

func NewStore(ownerEmail, adminSecret string) *Store {
	return &Store{
		view:        ViewLogin,
		ownerEmail:  ownerEmail,
		adminSecret: adminSecret,
	}
}

// Login records the authenticated user and their study profile. Exactly one
// user and one profile exist per session.
func (s *Store) Login(user User, settings provider.Profile) error {
	if user.Name == "" || user.Email == "" {
		return ErrMissingProfile
	}
	if settings.Grade != "" && !ValidGrade(settings.Grade) {
		return ErrInvalidGrade
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user.LoggedIn = true
	s.user = user
	s.settings = settings
	s.view = ViewChat
	return nil
}

// Logout clears the user and all elevated capabilities.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = User{}
	s.settings = provider.Profile{}
	s.admin = false
	s.view = ViewLogin
}

func (s *Store) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) Settings() provider.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings replaces the study profile. Only the settings flow calls this.
func (s *Store) UpdateSettings(settings provider.Profile) error {
	if settings.Grade != "" && !ValidGrade(settings.Grade) {
		return ErrInvalidGrade
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.user.LoggedIn {
		return ErrNotLoggedIn
	}
	s.settings = settings
	return nil
}

func (s *Store) CurrentView() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *Store) SetView(view View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
}

// AdminOffered reports whether the elevated-privilege gate is shown at all.
// Only the designated owner account ever sees it.
func (s *Store) AdminOffered() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ownerEmail != "" && s.user.Email == s.ownerEmail
}

// ToggleAdmin flips the admin flag when the caller is the owner account and
// the shared secret matches. The comparison is constant time; a mismatch
// returns ErrAccessDenied and leaves the flag unchanged.
func (s *Store) ToggleAdmin(secret string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ownerEmail == "" || s.user.Email != s.ownerEmail {
		return s.admin, ErrAccessDenied
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.adminSecret)) != 1 {
		return s.admin, ErrAccessDenied
	}
	s.admin = !s.admin
	return s.admin, nil
}

func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}
