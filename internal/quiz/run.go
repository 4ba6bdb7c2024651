package quiz

import (
	"errors"
	"fmt"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
)

var (
	ErrNoQuestions = errors.New("quiz has no questions")
	ErrFinished    = errors.New("quiz is finished")
)

// Unanswered marks a question with no accepted selection yet.
const Unanswered = -1

// Run is one quiz-taking session over a read-only question batch. Answering
// is a one-way transition per question: the first selection is accepted and
// scored, every later selection for the same question is rejected.
type Run struct {
	questions []provider.QuizQuestion
	selected  []int
	index     int
	score     int
	finished  bool
}

func NewRun(questions []provider.QuizQuestion) (*Run, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	for i, q := range questions {
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
			return nil, fmt.Errorf("question %d: correct answer index %d out of %d options", i, q.CorrectAnswerIndex, len(q.Options))
		}
	}
	selected := make([]int, len(questions))
	for i := range selected {
		selected[i] = Unanswered
	}
	return &Run{questions: questions, selected: selected}, nil
}

func (r *Run) Total() int    { return len(r.questions) }
func (r *Run) Index() int    { return r.index }
func (r *Run) Score() int    { return r.score }
func (r *Run) Finished() bool { return r.finished }

// Current returns the question under the cursor.
func (r *Run) Current() provider.QuizQuestion {
	return r.questions[r.index]
}

// Selected returns the accepted selection for the current question, or
// Unanswered.
func (r *Run) Selected() int {
	return r.selected[r.index]
}

// Answered reports whether the current question already has an accepted
// selection.
func (r *Run) Answered() bool {
	return r.selected[r.index] != Unanswered
}

// Answer records the first selection for the current question and scores it.
// Re-selection is rejected: accepted=false and no state changes.
func (r *Run) Answer(choice int) (correct, accepted bool) {
	if r.finished {
		return false, false
	}
	if r.selected[r.index] != Unanswered {
		return false, false
	}
	if choice < 0 || choice >= len(r.questions[r.index].Options) {
		return false, false
	}
	r.selected[r.index] = choice
	correct = choice == r.questions[r.index].CorrectAnswerIndex
	if correct {
		r.score++
	}
	return correct, true
}

// Next advances to the following question; advancing past the last question
// moves the run to its terminal Result state.
func (r *Run) Next() error {
	if r.finished {
		return ErrFinished
	}
	if r.index == len(r.questions)-1 {
		r.finished = true
		return nil
	}
	r.index++
	return nil
}
