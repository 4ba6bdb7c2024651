package provider

import (
	"context"
)

//go:generate mockgen -source=client.go -destination=../mocks/provider/mock_client.go -package=mock_provider

// Client interface defines the operations a generative-content provider
// must support for the study assistant.
type Client interface {
	// StreamChat sends the chat history plus the new user text and returns a
	// channel of incremental text fragments. Fragments arrive in order; the
	// channel is closed when the reply is complete. A mid-stream failure is
	// delivered as a final Fragment with Err set before the channel closes.
	// An empty fragment is valid and must not terminate accumulation.
	StreamChat(ctx context.Context, history []Message, newText string, profile Profile) (<-chan Fragment, error)

	// GenerateFlashcards produces a fixed-size set of flashcards for a topic.
	// The topic must be non-empty.
	GenerateFlashcards(ctx context.Context, topic string, profile Profile) ([]Flashcard, error)

	// GenerateQuiz produces quiz questions for a topic. requirements is an
	// optional free-text hint such as difficulty and may be empty.
	GenerateQuiz(ctx context.Context, topic string, requirements string, profile Profile) ([]QuizQuestion, error)

	// Summarize condenses the given text. When the provider returns no text
	// the fallback sentinel SummaryFallback is returned without an error.
	Summarize(ctx context.Context, text string, profile Profile) (string, error)

	// GenerateSchedule turns a freeform description of the student's day into
	// an ordered list of study sessions.
	GenerateSchedule(ctx context.Context, freeform string, profile Profile) ([]StudySession, error)

	// FindExternalResource performs a web-grounded search and returns the
	// first citation with a resolvable link. No citation means a response
	// with Found=false, not an error.
	FindExternalResource(ctx context.Context, query string, profile Profile) (ExternalResource, error)

	// GenerateIllustration asks for a small illustration for a keyword.
	// A nil image is returned on provider refusal or empty output; that is
	// not an error.
	GenerateIllustration(ctx context.Context, keyword string) (*InlineImage, error)

	// AnalyzeImage describes the contents of a drawing. imageData may carry a
	// data-URI prefix, which is stripped before transmission. When the
	// provider returns no text the AnalysisFallback sentinel is returned
	// without an error.
	AnalyzeImage(ctx context.Context, imageData string, mimeType string, profile Profile) (string, error)
}

const (
	// FlashcardCount is the fixed number of cards requested per topic.
	FlashcardCount = 20

	// SummaryFallback is returned by Summarize when the provider produced no text.
	SummaryFallback = "Unable to generate a summary for this text. Please try a different passage."

	// AnalysisFallback is returned by AnalyzeImage when the provider produced no text.
	AnalysisFallback = "Could not analyze the drawing. Please try again with a clearer sketch."
)

// DefaultRetryAttempts is the retry budget for one-shot provider calls.
const DefaultRetryAttempts = 3
