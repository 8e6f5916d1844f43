package lesson

import (
	"errors"

	"lexlingo/gamification"
)

var (
	// ErrNoAnswerSelected is returned by CheckAnswer when nothing has been
	// selected for the current question.
	ErrNoAnswerSelected = errors.New("no answer selected")
	// ErrInvalidOption is returned when a selection index is out of range.
	ErrInvalidOption = errors.New("invalid option index")
	// ErrSessionComplete is returned when acting on a finished session.
	ErrSessionComplete = errors.New("lesson session already complete")
	// ErrNoQuestions is returned when a topic has no quiz bank.
	ErrNoQuestions = errors.New("topic has no questions")
)

// Question is the state machine's read-only view of one quiz question.
type Question struct {
	ID           uint
	Prompt       string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// Session drives a user through one quiz pass over a topic's question
// sequence. It is a plain in-memory value; persistence happens through the
// Manager.
type Session struct {
	ID      string
	UserID  uint
	TopicID uint

	questions []Question

	CurrentQuestion int
	SelectedAnswer  *int
	ShowFeedback    bool
	CorrectAnswers  int
	Completed       bool
}

// CheckResult is the feedback revealed after checking an answer.
type CheckResult struct {
	Correct      bool   `json:"correct"`
	CorrectIndex int    `json:"correct_index"`
	Explanation  string `json:"explanation"`
}

// Result summarizes a finalized quiz pass.
type Result struct {
	CorrectAnswers int `json:"correct_answers"`
	TotalQuestions int `json:"total_questions"`
	XPEarned       int `json:"xp_earned"`
}

// SavedState is the resumable portion of a session, captured verbatim on
// suspend and restored verbatim on resume.
type SavedState struct {
	CurrentQuestion int  `json:"current_question"`
	SelectedAnswer  *int `json:"selected_answer"`
	CorrectAnswers  int  `json:"correct_answers"`
	ShowFeedback    bool `json:"show_feedback"`
}

// QuestionCount returns the number of questions in the sequence.
func (s *Session) QuestionCount() int {
	return len(s.questions)
}

// Current returns the question at the current index.
func (s *Session) Current() Question {
	return s.questions[s.CurrentQuestion]
}

// SelectAnswer records the selection for the current question. Once feedback
// has been revealed the answer is locked and further selections are ignored.
func (s *Session) SelectAnswer(index int) error {
	if s.Completed {
		return ErrSessionComplete
	}
	if s.ShowFeedback {
		return nil
	}
	if index < 0 || index >= len(s.Current().Options) {
		return ErrInvalidOption
	}
	selected := index
	s.SelectedAnswer = &selected
	return nil
}

// CheckAnswer reveals whether the current selection is correct and counts it
// once. Calling it again before NextQuestion returns the same revealed result
// without recounting.
func (s *Session) CheckAnswer() (CheckResult, error) {
	if s.Completed {
		return CheckResult{}, ErrSessionComplete
	}
	if s.SelectedAnswer == nil {
		return CheckResult{}, ErrNoAnswerSelected
	}

	question := s.Current()
	correct := *s.SelectedAnswer == question.CorrectIndex
	if !s.ShowFeedback {
		s.ShowFeedback = true
		if correct {
			s.CorrectAnswers++
		}
	}

	return CheckResult{
		Correct:      correct,
		CorrectIndex: question.CorrectIndex,
		Explanation:  question.Explanation,
	}, nil
}

// NextQuestion advances past a checked question. Before the last question it
// clears the selection and feedback and returns nil; at the last question it
// finalizes the pass and returns the result. XP earned is 10 per correct
// answer regardless of question count.
func (s *Session) NextQuestion() (*Result, error) {
	if s.Completed {
		return nil, ErrSessionComplete
	}
	if s.CurrentQuestion < len(s.questions)-1 {
		s.CurrentQuestion++
		s.SelectedAnswer = nil
		s.ShowFeedback = false
		return nil, nil
	}

	s.Completed = true
	return &Result{
		CorrectAnswers: s.CorrectAnswers,
		TotalQuestions: len(s.questions),
		XPEarned:       s.CorrectAnswers * gamification.XPPerCorrectAnswer,
	}, nil
}

// Snapshot captures the resumable state of the session.
func (s *Session) Snapshot() SavedState {
	var selected *int
	if s.SelectedAnswer != nil {
		v := *s.SelectedAnswer
		selected = &v
	}
	return SavedState{
		CurrentQuestion: s.CurrentQuestion,
		SelectedAnswer:  selected,
		CorrectAnswers:  s.CorrectAnswers,
		ShowFeedback:    s.ShowFeedback,
	}
}

// Restore applies a previously captured state. Indexes beyond the question
// sequence are clamped to the last question.
func (s *Session) Restore(state SavedState) {
	s.CurrentQuestion = state.CurrentQuestion
	if s.CurrentQuestion < 0 {
		s.CurrentQuestion = 0
	}
	if s.CurrentQuestion >= len(s.questions) {
		s.CurrentQuestion = len(s.questions) - 1
	}
	s.CorrectAnswers = state.CorrectAnswers
	s.ShowFeedback = state.ShowFeedback
	if state.SelectedAnswer != nil {
		v := *state.SelectedAnswer
		s.SelectedAnswer = &v
	} else {
		s.SelectedAnswer = nil
	}
}
