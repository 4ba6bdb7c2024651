package provider

import (
	"encoding/base64"
	"time"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one chat turn. Text of a model message grows while its reply is
// streamed and is frozen once the stream completes or fails.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Fragment is one incremental chunk of a streamed chat reply. A terminal
// failure is delivered as a Fragment with Err set.
type Fragment struct {
	Text string
	Err  error
}

// Profile is the student's personalization profile. It parameterizes every
// provider call so answers match the student's syllabus, level and language.
type Profile struct {
	Language string `json:"language"`
	Syllabus string `json:"syllabus"`
	Grade    string `json:"grade"`
	Country  string `json:"country"`
	Province string `json:"province"`
}

// Flashcard is one generated study card. GeneratedImage, once set, is never
// overwritten.
type Flashcard struct {
	ID             string `json:"-"`
	Front          string `json:"front"`
	Back           string `json:"back"`
	ImageKeyword   string `json:"imageKeyword,omitempty"`
	GeneratedImage string `json:"-"`
}

// QuizQuestion is one quiz item. CorrectAnswerIndex always indexes validly
// into Options; the client validates this at the boundary.
type QuizQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation,omitempty"`
}

// StudySession is one planner entry.
type StudySession struct {
	Time            string `json:"time"`
	Activity        string `json:"activity"`
	DurationMinutes int    `json:"durationMinutes"`
	Notes           string `json:"notes,omitempty"`
}

// ExternalResource is the outcome of a web-grounded search. Found=false is a
// normal outcome, not an error.
type ExternalResource struct {
	Found       bool
	Title       string
	Link        string
	Description string
}

// InlineImage is a small generated illustration.
type InlineImage struct {
	MIMEType string
	Data     []byte
}

// DataURI renders the image as a data URI suitable for storing on a flashcard.
func (img InlineImage) DataURI() string {
	return "data:" + img.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}
