package service

import (
	"errors"
	"strconv"

	"github.com/aliskhannn/learn-words-bot/internal/domain/entities"
)

var ErrEmptyDictionary = errors.New("dictionary is empty")

// ComputeStatistics derives mastery metrics from the dictionary.
// It returns ErrEmptyDictionary instead of dividing by zero.
func ComputeStatistics(words []*entities.Word) (entities.Statistics, error) {
	total := len(words)
	if total == 0 {
		return entities.Statistics{}, ErrEmptyDictionary
	}

	learned := 0
	for _, w := range words {
		if w.IsLearned() {
			learned++
		}
	}

	return entities.Statistics{
		TotalCount: total,
		LearnCount: learned,
		Percent:    strconv.Itoa(learned * entities.PercentScale / total),
	}, nil
}
