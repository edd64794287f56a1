package entities

import (
	"errors"
	"time"
)

var (
	ErrNoSelection     = errors.New("no option selected")
	ErrAnswerLocked    = errors.New("answer already revealed")
	ErrUnknownOption   = errors.New("unknown option")
	ErrSessionFinished = errors.New("quiz session is finished")
)

// Phase is the state of the current question within a session.
type Phase int

const (
	PhaseUnanswered Phase = iota // nothing selected yet
	PhaseSelected                // an option is selected, answer not revealed
	PhaseRevealed                // answer revealed, waiting for "next"
	PhaseFinished                // last answer revealed and results requested
)

func (p Phase) String() string {
	switch p {
	case PhaseUnanswered:
		return "unanswered"
	case PhaseSelected:
		return "selected"
	case PhaseRevealed:
		return "revealed"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event describes what a press of the primary button did.
type Event int

const (
	EventNone     Event = iota
	EventRevealed       // current answer revealed
	EventAdvanced       // moved to the next question
	EventFinished       // session completed
)

// OptionState is how an option should be presented.
type OptionState int

const (
	OptionNeutral OptionState = iota
	OptionChosen              // selected, answer not revealed yet
	OptionCorrect             // the correct option after reveal
	OptionWrong               // the chosen incorrect option after reveal
)

// Session is the view state of one user walking through a quiz.
//
// Session is a value: transition methods never modify the receiver and
// return the next state instead.
type Session struct {
	ID        string
	UserID    int64
	Date      Day       // day of the quiz being played
	StartedAt time.Time // time the session was created
	UpdatedAt time.Time // time of the last transition stored

	quiz     *Quiz
	index    int
	selected OptionKey
	revealed bool
	finished bool
	correct  int
	answers  []OptionKey // revealed selections, one per answered question
}

// NewSession creates a session positioned at the first question.
func NewSession(id string, userID int64, date Day, quiz *Quiz, now time.Time) Session {
	return Session{
		ID:        id,
		UserID:    userID,
		Date:      date,
		StartedAt: now,
		UpdatedAt: now,
		quiz:      quiz,
	}
}

func (s Session) Quiz() *Quiz { return s.quiz }

// Index returns the 0-based index of the current question.
func (s Session) Index() int { return s.index }

// Total returns the number of questions.
func (s Session) Total() int { return s.quiz.Len() }

// Correct returns the running number of correct answers.
func (s Session) Correct() int { return s.correct }

// Answers returns a copy of the revealed selections.
func (s Session) Answers() []OptionKey {
	out := make([]OptionKey, len(s.answers))
	copy(out, s.answers)
	return out
}

func (s Session) Question() Question { return s.quiz.Questions[s.index] }

func (s Session) Selected() (OptionKey, bool) { return s.selected, s.selected != "" }

func (s Session) Revealed() bool { return s.revealed }

func (s Session) Finished() bool { return s.finished }

// IsLast reports whether the current question is the last one.
func (s Session) IsLast() bool { return s.index == s.quiz.Len()-1 }

func (s Session) Phase() Phase {
	switch {
	case s.finished:
		return PhaseFinished
	case s.revealed:
		return PhaseRevealed
	case s.selected != "":
		return PhaseSelected
	default:
		return PhaseUnanswered
	}
}

// CanPress reports whether the primary button is enabled.
func (s Session) CanPress() bool {
	return !s.finished && s.selected != ""
}

// Select chooses an option of the current question.
func (s Session) Select(key OptionKey) (Session, error) {
	if s.finished {
		return s, ErrSessionFinished
	}
	if s.revealed {
		return s, ErrAnswerLocked
	}
	if !s.Question().HasOption(key) {
		return s, ErrUnknownOption
	}

	next := s
	next.selected = key
	return next, nil
}

// Press handles the primary button. The first press reveals the answer,
// the second one moves to the next question or finishes the session.
func (s Session) Press() (Session, Event, error) {
	switch s.Phase() {
	case PhaseFinished:
		return s, EventNone, ErrSessionFinished

	case PhaseUnanswered:
		return s, EventNone, ErrNoSelection

	case PhaseSelected:
		next := s
		next.revealed = true
		// Full slice expression so the append never writes into a shared array.
		next.answers = append(s.answers[:len(s.answers):len(s.answers)], s.selected)
		if s.Question().IsCorrect(s.selected) {
			next.correct++
		}
		return next, EventRevealed, nil
	}

	next := s
	if s.IsLast() {
		next.finished = true
		return next, EventFinished, nil
	}

	next.index++
	next.selected = ""
	next.revealed = false
	return next, EventAdvanced, nil
}

// OptionState returns the presentation state of an option of the current question.
func (s Session) OptionState(key OptionKey) OptionState {
	if s.revealed {
		if s.Question().IsCorrect(key) {
			return OptionCorrect
		}
		if key == s.selected {
			return OptionWrong
		}
		return OptionNeutral
	}

	if key == s.selected {
		return OptionChosen
	}
	return OptionNeutral
}

// ButtonLabel returns the label of the primary button.
func (s Session) ButtonLabel() string {
	if !s.revealed {
		return "Submit"
	}
	if s.IsLast() {
		return "See Results"
	}
	return "Next"
}
