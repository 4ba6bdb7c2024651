package chat

import (
	"errors"
	"strings"
	"time"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/google/uuid"
)

// Phase is the state of the outstanding chat turn.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSending
	PhaseStreaming
	PhaseComplete
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSending:
		return "sending"
	case PhaseStreaming:
		return "streaming"
	case PhaseComplete:
		return "complete"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// FailureText replaces the model message when a stream aborts. The partial
// buffer is discarded.
const FailureText = "I'm sorry, I couldn't finish that reply. Please try asking again."

var (
	ErrBlankInput    = errors.New("chat input must not be blank")
	ErrTurnInFlight  = errors.New("a chat turn is already in flight")
	ErrNoCurrentTurn = errors.New("no chat turn is in flight")
)

// Accumulator owns the chat transcript and the per-turn streaming state
// machine: Idle -> Sending -> Streaming -> {Complete, Failed}.
//
// The user message is appended optimistically on Begin, followed by an empty
// placeholder model message. Each fragment extends a running buffer and the
// placeholder's text is replaced wholesale with the cumulative buffer so the
// transcript always shows total-so-far text. Once the turn completes or fails
// the placeholder is frozen. Concurrent turns are not permitted.
type Accumulator struct {
	phase    Phase
	messages []provider.Message
	buffer   strings.Builder
	now      func() time.Time
}

func NewAccumulator() *Accumulator {
	return &Accumulator{now: time.Now}
}

// Phase returns the state of the current turn.
func (a *Accumulator) Phase() Phase {
	return a.phase
}

// Busy reports whether a turn is in Sending or Streaming; the send control is
// disabled while Busy.
func (a *Accumulator) Busy() bool {
	return a.phase == PhaseSending || a.phase == PhaseStreaming
}

// Messages returns the transcript including any in-flight placeholder.
func (a *Accumulator) Messages() []provider.Message {
	return a.messages
}

// History returns the transcript prior to the in-flight turn, suitable for
// sending as chat history alongside the new user text.
func (a *Accumulator) History() []provider.Message {
	if a.Busy() && len(a.messages) >= 2 {
		return a.messages[:len(a.messages)-2]
	}
	return a.messages
}

// Begin starts a turn: it appends the user message (optimistic, always
// succeeds once input is non-blank) and an empty placeholder model message
// with a fresh id, then moves to Sending.
func (a *Accumulator) Begin(userText string) (provider.Message, error) {
	if strings.TrimSpace(userText) == "" {
		return provider.Message{}, ErrBlankInput
	}
	if a.Busy() {
		return provider.Message{}, ErrTurnInFlight
	}

	userMessage := provider.Message{
		ID:        uuid.NewString(),
		Role:      provider.RoleUser,
		Text:      userText,
		Timestamp: a.now(),
	}
	placeholder := provider.Message{
		ID:        uuid.NewString(),
		Role:      provider.RoleModel,
		Timestamp: a.now(),
	}
	a.messages = append(a.messages, userMessage, placeholder)
	a.buffer.Reset()
	a.phase = PhaseSending
	return placeholder, nil
}

// StreamStarted marks the provider's fragment sequence as live.
func (a *Accumulator) StreamStarted() error {
	if a.phase != PhaseSending {
		return ErrNoCurrentTurn
	}
	a.phase = PhaseStreaming
	return nil
}

// Apply concatenates a fragment onto the running buffer and replaces the
// placeholder text with the cumulative buffer. Empty fragments are ignored
// without terminating the turn. Returns the total-so-far text.
func (a *Accumulator) Apply(fragment string) (string, error) {
	if a.phase != PhaseStreaming && a.phase != PhaseSending {
		return "", ErrNoCurrentTurn
	}
	a.phase = PhaseStreaming
	if fragment != "" {
		a.buffer.WriteString(fragment)
		a.messages[len(a.messages)-1].Text = a.buffer.String()
	}
	return a.buffer.String(), nil
}

// Complete freezes the placeholder with the full buffer and ends the turn.
func (a *Accumulator) Complete() (provider.Message, error) {
	if a.phase != PhaseStreaming && a.phase != PhaseSending {
		return provider.Message{}, ErrNoCurrentTurn
	}
	last := len(a.messages) - 1
	a.messages[last].Text = a.buffer.String()
	a.phase = PhaseComplete
	return a.messages[last], nil
}

// Fail overwrites the placeholder with the fixed apology text, discarding any
// partial buffer, and ends the turn.
func (a *Accumulator) Fail() (provider.Message, error) {
	if a.phase != PhaseStreaming && a.phase != PhaseSending {
		return provider.Message{}, ErrNoCurrentTurn
	}
	last := len(a.messages) - 1
	a.messages[last].Text = FailureText
	a.buffer.Reset()
	a.phase = PhaseFailed
	return a.messages[last], nil
}

// Clear drops the transcript and returns to Idle. Only valid between turns.
func (a *Accumulator) Clear() error {
	if a.Busy() {
		return ErrTurnInFlight
	}
	a.messages = nil
	a.buffer.Reset()
	a.phase = PhaseIdle
	return nil
}
