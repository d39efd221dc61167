package telegram

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackData_RoundTrip(t *testing.T) {
	id := uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2")

	data := buildAnswerCallback(id, 3)
	assert.Equal(t, "answer:7d444840-9dc0-11d1-b245-5ffdce74fad2:3", data)
	assert.LessOrEqual(t, len(data), 64, "telegram limits callback data to 64 bytes")

	cd := decodeCallback(data)
	assert.Equal(t, actionAnswer, cd.Action)
	assert.Equal(t, data, cd.Raw)

	gotID, gotIndex, err := parseAnswerParams(cd.Params)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, 3, gotIndex)
}

func TestDecodeCallback_Action(t *testing.T) {
	cd := decodeCallback(buildActionCallback(actionStatistics))

	assert.Equal(t, actionStatistics, cd.Action)
	assert.Empty(t, cd.Params)
}

func TestParseAnswerParams_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		params []string
	}{
		{name: "no params", params: nil},
		{name: "missing index", params: []string{"7d444840-9dc0-11d1-b245-5ffdce74fad2"}},
		{name: "bad uuid", params: []string{"abc", "1"}},
		{name: "bad index", params: []string{"7d444840-9dc0-11d1-b245-5ffdce74fad2", "x"}},
		{name: "negative index", params: []string{"7d444840-9dc0-11d1-b245-5ffdce74fad2", "-1"}},
		{name: "extra param", params: []string{"7d444840-9dc0-11d1-b245-5ffdce74fad2", "1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseAnswerParams(tt.params)
			assert.ErrorIs(t, err, errInvalidCallback)
		})
	}
}
