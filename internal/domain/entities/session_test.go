package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuiz(correct ...OptionKey) *Quiz {
	q := &Quiz{Title: "Test"}
	for _, c := range correct {
		q.Questions = append(q.Questions, Question{
			Text:          "question",
			Options:       map[OptionKey]string{OptionA: "a", OptionB: "b", OptionC: "c"},
			CorrectAnswer: c,
		})
	}
	return q
}

func newTestSession(correct ...OptionKey) Session {
	return NewSession("s1", 42, "2026-10-18", newTestQuiz(correct...), time.Unix(0, 0))
}

func TestSessionPressWithoutSelection(t *testing.T) {
	s := newTestSession(OptionA)

	assert.Equal(t, PhaseUnanswered, s.Phase())
	assert.False(t, s.CanPress())

	_, ev, err := s.Press()
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, EventNone, ev)
}

func TestSessionSelectAndReveal(t *testing.T) {
	s := newTestSession(OptionA, OptionB)

	s, err := s.Select(OptionB)
	require.NoError(t, err)
	s, err = s.Select(OptionA)
	require.NoError(t, err)

	assert.Equal(t, PhaseSelected, s.Phase())
	assert.True(t, s.CanPress())
	assert.Equal(t, "Submit", s.ButtonLabel())
	assert.Equal(t, OptionChosen, s.OptionState(OptionA))
	assert.Equal(t, OptionNeutral, s.OptionState(OptionB))

	s, ev, err := s.Press()
	require.NoError(t, err)
	assert.Equal(t, EventRevealed, ev)
	assert.Equal(t, PhaseRevealed, s.Phase())
	assert.Equal(t, 1, s.Correct())
	assert.Equal(t, 0, s.Index(), "reveal must not advance")
	assert.Equal(t, "Next", s.ButtonLabel())

	_, err = s.Select(OptionB)
	assert.ErrorIs(t, err, ErrAnswerLocked)

	s, ev, err = s.Press()
	require.NoError(t, err)
	assert.Equal(t, EventAdvanced, ev)
	assert.Equal(t, 1, s.Index())
	assert.Equal(t, PhaseUnanswered, s.Phase())
	_, selected := s.Selected()
	assert.False(t, selected)
}

func TestSessionUnknownOption(t *testing.T) {
	s := newTestSession(OptionA)

	_, err := s.Select("D")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestSessionOptionStatesAfterWrongAnswer(t *testing.T) {
	s := newTestSession(OptionC)

	s, _ = s.Select(OptionA)
	s, _, _ = s.Press()

	assert.Equal(t, OptionWrong, s.OptionState(OptionA))
	assert.Equal(t, OptionNeutral, s.OptionState(OptionB))
	assert.Equal(t, OptionCorrect, s.OptionState(OptionC))
	assert.Equal(t, 0, s.Correct())
}

func TestSessionTransitionsDoNotMutateReceiver(t *testing.T) {
	s := newTestSession(OptionA, OptionA)

	selected, _ := s.Select(OptionA)
	revealed, _, _ := selected.Press()

	assert.Equal(t, PhaseUnanswered, s.Phase())
	assert.Equal(t, PhaseSelected, selected.Phase())
	assert.Equal(t, PhaseRevealed, revealed.Phase())
	assert.Empty(t, selected.Answers())
	assert.Equal(t, []OptionKey{OptionA}, revealed.Answers())
}

func TestSessionFinish(t *testing.T) {
	s := newTestSession(OptionA)

	s, _ = s.Select(OptionA)
	s, _, _ = s.Press()
	assert.Equal(t, "See Results", s.ButtonLabel())

	s, ev, err := s.Press()
	require.NoError(t, err)
	assert.Equal(t, EventFinished, ev)
	assert.Equal(t, PhaseFinished, s.Phase())
	assert.False(t, s.CanPress())

	_, _, err = s.Press()
	assert.ErrorIs(t, err, ErrSessionFinished)
	_, err = s.Select(OptionB)
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestSessionFullRun(t *testing.T) {
	correct := []OptionKey{OptionA, OptionA, OptionC, OptionA, OptionC, OptionC, OptionA}
	chosen := []OptionKey{OptionA, OptionB, OptionC, OptionA, OptionB, OptionC, OptionA}

	s := newTestSession(correct...)
	finished := 0

	for i, key := range chosen {
		var (
			ev  Event
			err error
		)
		s, err = s.Select(key)
		require.NoError(t, err)
		s, ev, err = s.Press()
		require.NoError(t, err)
		require.Equal(t, EventRevealed, ev)

		s, ev, err = s.Press()
		require.NoError(t, err)
		if i == len(chosen)-1 {
			require.Equal(t, EventFinished, ev)
			finished++
		} else {
			require.Equal(t, EventAdvanced, ev)
		}
	}

	assert.Equal(t, 5, s.Correct())
	assert.Equal(t, 7, s.Total())
	assert.Equal(t, 1, finished)

	matches := 0
	for i, a := range s.Answers() {
		if a == correct[i] {
			matches++
		}
	}
	assert.Equal(t, matches, s.Correct())
	assert.LessOrEqual(t, s.Correct(), s.Total())
}
