package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

func TestQuizCallbackRoundTrip(t *testing.T) {
	const id = "0b8f5a0e-7c1d-4f4b-9a55-2f1f0c2d6e11"

	sel := decodeCallback(buildSelectCallback(id, 3, entities.OptionB))
	require.Equal(t, actionSelect, sel.Action)
	qc, err := parseQuizCallback(sel)
	require.NoError(t, err)
	assert.Equal(t, quizCallback{SessionID: id, Index: 3, Key: entities.OptionB}, qc)

	press := decodeCallback(buildPressCallback(id, 6))
	require.Equal(t, actionPress, press.Action)
	qc, err = parseQuizCallback(press)
	require.NoError(t, err)
	assert.Equal(t, quizCallback{SessionID: id, Index: 6}, qc)
}

func TestCallbackDataFitsTelegramLimit(t *testing.T) {
	data := buildSelectCallback("0b8f5a0e-7c1d-4f4b-9a55-2f1f0c2d6e11", 99, entities.OptionC)
	assert.LessOrEqual(t, len(data), 64)
}

func TestParseQuizCallbackRejectsMalformed(t *testing.T) {
	tests := []string{
		"sel",
		"sel:abc",
		"sel:abc:1",
		"sel::1:A",
		"sel:abc:x:A",
		"press:abc:-1",
		"press:abc:1:A",
	}

	for _, data := range tests {
		t.Run(data, func(t *testing.T) {
			_, err := parseQuizCallback(decodeCallback(data))
			assert.ErrorIs(t, err, errBadCallback)
		})
	}
}

func TestDecodePlayCallback(t *testing.T) {
	cd := decodeCallback(buildPlayCallback())
	assert.Equal(t, actionPlay, cd.Action)
	assert.Empty(t, cd.Params)
}
