package ui

import (
	"time"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
)

// chatStartedMsg delivers the live fragment channel for an accepted turn.
type chatStartedMsg struct {
	ch <-chan provider.Fragment
}

// chatFragmentMsg delivers one fragment; ch is carried along so the next
// listen command can be issued from Update.
type chatFragmentMsg struct {
	fragment provider.Fragment
	ch       <-chan provider.Fragment
}

// chatStreamClosedMsg signals the fragment sequence is exhausted.
type chatStreamClosedMsg struct{}

// chatFailedMsg signals the turn failed before or during streaming.
type chatFailedMsg struct {
	err error
}

type flashcardsMsg struct {
	topic string
	cards []provider.Flashcard
	err   error
}

// illustrationMsg carries the lazy illustration result, keyed by the card id
// captured at fetch time so late arrivals land on the right card.
type illustrationMsg struct {
	cardID  string
	dataURI string
	err     error
}

type quizMsg struct {
	questions []provider.QuizQuestion
	err       error
}

type scheduleMsg struct {
	sessions []provider.StudySession
	err      error
}

type summaryMsg struct {
	text string
	err  error
}

type resourceMsg struct {
	resource provider.ExternalResource
	err      error
}

// notePDFMsg reports the outcome of a markdown-to-PDF conversion.
type notePDFMsg struct {
	path string
	err  error
}

type analysisMsg struct {
	text string
	err  error
}

type exportedMsg struct {
	path string
	err  error
}

// timerTickMsg drives the planner countdown once per second.
type timerTickMsg time.Time
