package entities

import (
	"errors"
	"fmt"
	"sort"
)

// QuestionsPerQuiz is the number of questions a daily quiz normally carries.
const QuestionsPerQuiz = 7

var ErrInvalidQuiz = errors.New("invalid quiz")

// OptionKey identifies an answer option of a question ("A", "B", "C").
type OptionKey string

const (
	OptionA OptionKey = "A"
	OptionB OptionKey = "B"
	OptionC OptionKey = "C"
)

// Quiz is the daily quiz document about one featured artwork.
// It is immutable once fetched.
type Quiz struct {
	Image      string     `json:"image"`      // URL of the featured artwork
	Title      string     `json:"quiz_title"` // title shown above the quiz
	Questions  []Question `json:"questions"`  // questions in the order they are asked
	Provenance []string   `json:"provenance"` // ownership history, shown on results only
}

// Question is a single multiple-choice question.
type Question struct {
	Difficulty    string               `json:"difficulty"`
	Text          string               `json:"question_text"`
	Options       map[OptionKey]string `json:"options"`
	CorrectAnswer OptionKey            `json:"correct_answer"`
}

// Validate checks that the quiz can be played.
func (q *Quiz) Validate() error {
	if q == nil || len(q.Questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidQuiz)
	}

	for i, question := range q.Questions {
		if len(question.Options) == 0 {
			return fmt.Errorf("%w: question %d has no options", ErrInvalidQuiz, i+1)
		}
		if !question.HasOption(question.CorrectAnswer) {
			return fmt.Errorf("%w: question %d: correct answer %q is not an option",
				ErrInvalidQuiz, i+1, question.CorrectAnswer)
		}
	}

	return nil
}

// Len returns the number of questions.
func (q *Quiz) Len() int {
	return len(q.Questions)
}

// HasOption reports whether key is one of the question's options.
func (q Question) HasOption(key OptionKey) bool {
	_, ok := q.Options[key]
	return ok
}

// IsCorrect reports whether key is the correct answer.
func (q Question) IsCorrect(key OptionKey) bool {
	return key != "" && key == q.CorrectAnswer
}

// Keys returns option keys in display order.
func (q Question) Keys() []OptionKey {
	keys := make([]OptionKey, 0, len(q.Options))
	for k := range q.Options {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
