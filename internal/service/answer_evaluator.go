package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/learn-words-bot/internal/domain/entities"
)

var ErrPersistence = errors.New("failed to persist dictionary")

// AnswerEvaluator checks answers and persists the dictionary after a correct one.
type AnswerEvaluator struct {
	store  DictionaryStore
	logger *zap.Logger
}

// NewAnswerEvaluator creates an evaluator saving through store.
func NewAnswerEvaluator(store DictionaryStore, logger *zap.Logger) *AnswerEvaluator {
	return &AnswerEvaluator{
		store:  store,
		logger: logger,
	}
}

// Check compares choiceIndex with the first position of the correct translation.
//
// A nil question, a wrong index or an index out of range yields false without
// changes. On a match the counter of the correct word is incremented and the whole
// dictionary is saved; if saving fails the increment is rolled back and the
// error wraps ErrPersistence.
func (e *AnswerEvaluator) Check(
	ctx context.Context,
	q *entities.Question,
	choiceIndex int,
	dictionary []*entities.Word,
) (bool, error) {
	if q == nil {
		return false, nil
	}

	correctIndex := q.CorrectIndex()
	if correctIndex < 0 || correctIndex != choiceIndex {
		return false, nil
	}

	q.CorrectAnswer.CorrectAnswersCount++

	if err := e.store.Save(ctx, dictionary); err != nil {
		q.CorrectAnswer.CorrectAnswersCount--
		e.logger.Error("failed to save dictionary",
			zap.String("word", q.CorrectAnswer.Original),
			zap.Error(err),
		)
		return false, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	e.logger.Debug("correct answer",
		zap.String("word", q.CorrectAnswer.Original),
		zap.Int("correct_answers_count", q.CorrectAnswer.CorrectAnswersCount),
	)

	return true, nil
}
