package telegram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Callback action constants.
const (
	actionLearn      = "learn"
	actionStatistics = "statistics"
	actionMenu       = "menu"
	actionAnswer     = "answer"
)

var errInvalidCallback = errors.New("invalid callback data")

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

func buildActionCallback(action string) string {
	return callbackData{Action: action}.encode()
}

// buildAnswerCallback builds callback data for choosing option index of a question.
func buildAnswerCallback(questionID uuid.UUID, index int) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{questionID.String(), strconv.Itoa(index)},
	}.encode()
}

// parseAnswerParams extracts question ID and option index from answer callback params.
func parseAnswerParams(params []string) (uuid.UUID, int, error) {
	if len(params) != 2 {
		return uuid.Nil, 0, errInvalidCallback
	}

	id, err := uuid.Parse(params[0])
	if err != nil {
		return uuid.Nil, 0, errInvalidCallback
	}

	index, err := strconv.Atoi(params[1])
	if err != nil || index < 0 {
		return uuid.Nil, 0, errInvalidCallback
	}

	return id, index, nil
}
