package notes

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Note is a user-authored or admin-verified study note. Notes live only in
// memory for the session.
type Note struct {
	ID       string
	Title    string
	Author   string
	Content  string
	Category string
	Verified bool
	Date     time.Time
}

var (
	ErrNotFound      = errors.New("note not found")
	ErrEditInFlight  = errors.New("another note is being edited")
	ErrNoEditPending = errors.New("no edit is pending")
)

// Store holds the session's notes, newest first. Editing removes the note
// from the list while its fields populate the form; the original is retained
// so an abandoned edit restores it instead of silently losing the note.
type Store struct {
	notes   []Note
	editing *Note
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

func (s *Store) List() []Note {
	return s.notes
}

// Add inserts a new note at the head of the list with a fresh id.
func (s *Store) Add(title, author, content, category string, verified bool) Note {
	note := Note{
		ID:       uuid.NewString(),
		Title:    title,
		Author:   author,
		Content:  content,
		Category: category,
		Verified: verified,
		Date:     s.now(),
	}
	s.notes = append([]Note{note}, s.notes...)
	return note
}

// BeginEdit removes the note from the list and returns it so its fields can
// repopulate the input form. The original is kept for CancelEdit.
func (s *Store) BeginEdit(id string) (Note, error) {
	if s.editing != nil {
		return Note{}, ErrEditInFlight
	}
	for i, note := range s.notes {
		if note.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			kept := note
			s.editing = &kept
			return note, nil
		}
	}
	return Note{}, ErrNotFound
}

// SaveEdit completes a pending edit: the reworked note is re-inserted at the
// head with a fresh id.
func (s *Store) SaveEdit(title, content, category string) (Note, error) {
	if s.editing == nil {
		return Note{}, ErrNoEditPending
	}
	author := s.editing.Author
	verified := s.editing.Verified
	s.editing = nil
	return s.Add(title, author, content, category, verified), nil
}

// CancelEdit restores the original note at the head of the list.
func (s *Store) CancelEdit() error {
	if s.editing == nil {
		return ErrNoEditPending
	}
	s.notes = append([]Note{*s.editing}, s.notes...)
	s.editing = nil
	return nil
}

// Editing returns the note currently being edited, if any.
func (s *Store) Editing() (Note, bool) {
	if s.editing == nil {
		return Note{}, false
	}
	return *s.editing, true
}

// Delete removes a note permanently.
func (s *Store) Delete(id string) error {
	for i, note := range s.notes {
		if note.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
