package telegram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

// Callback action constants.
const (
	actionSelect = "sel"
	actionPress  = "press"
	actionPlay   = "play"
)

var errBadCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// quizCallback addresses a question of a session. Index pins the question
// the keyboard was rendered for so presses on old keyboards can be told apart.
type quizCallback struct {
	SessionID string
	Index     int
	Key       entities.OptionKey // select only
}

func buildSelectCallback(sessionID string, index int, key entities.OptionKey) string {
	return callbackData{
		Action: actionSelect,
		Params: []string{sessionID, strconv.Itoa(index), string(key)},
	}.encode()
}

func buildPressCallback(sessionID string, index int) string {
	return callbackData{
		Action: actionPress,
		Params: []string{sessionID, strconv.Itoa(index)},
	}.encode()
}

func buildPlayCallback() string {
	return actionPlay
}

// parseQuizCallback extracts the session address from select and press callbacks.
func parseQuizCallback(cd callbackData) (quizCallback, error) {
	want := 2
	if cd.Action == actionSelect {
		want = 3
	}
	if len(cd.Params) != want || cd.Params[0] == "" {
		return quizCallback{}, errBadCallback
	}

	index, err := strconv.Atoi(cd.Params[1])
	if err != nil || index < 0 {
		return quizCallback{}, errBadCallback
	}

	qc := quizCallback{SessionID: cd.Params[0], Index: index}
	if cd.Action == actionSelect {
		qc.Key = entities.OptionKey(cd.Params[2])
	}
	return qc, nil
}
