package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/learn-words-bot/internal/domain/entities"
)

// Trainer is a single training session. It owns the loaded dictionary
// and at most one active question.
//
// Trainer is not safe for concurrent use.
type Trainer struct {
	dictionary []*entities.Word
	question   *entities.Question

	generator *QuestionGenerator
	evaluator *AnswerEvaluator
	logger    *zap.Logger
}

// TrainerOption configures a Trainer.
type TrainerOption func(*trainerOptions)

type trainerOptions struct {
	rng    *rand.Rand
	logger *zap.Logger
}

// WithRand sets the source of randomness used to build questions.
func WithRand(rng *rand.Rand) TrainerOption {
	return func(o *trainerOptions) { o.rng = rng }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) TrainerOption {
	return func(o *trainerOptions) { o.logger = logger }
}

// NewTrainer loads the dictionary from store and starts a session.
func NewTrainer(ctx context.Context, store DictionaryStore, opts ...TrainerOption) (*Trainer, error) {
	o := trainerOptions{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	words, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}

	o.logger.Info("dictionary loaded", zap.Int("words", len(words)))

	return &Trainer{
		dictionary: words,
		generator:  NewQuestionGenerator(o.rng),
		evaluator:  NewAnswerEvaluator(store, o.logger),
		logger:     o.logger,
	}, nil
}

// NextQuestion replaces the active question with a new one.
// It returns nil once every word is learned.
func (t *Trainer) NextQuestion() *entities.Question {
	t.question = t.generator.Generate(t.dictionary)
	if t.question == nil {
		t.logger.Debug("no words left to learn")
	}
	return t.question
}

// SubmitAnswer checks index against the active question.
// Without an active question it returns false.
func (t *Trainer) SubmitAnswer(ctx context.Context, index int) (bool, error) {
	return t.evaluator.Check(ctx, t.question, index, t.dictionary)
}

// SubmitAnswerTo is like SubmitAnswer but returns false when questionID
// does not identify the active question.
func (t *Trainer) SubmitAnswerTo(ctx context.Context, questionID uuid.UUID, index int) (bool, error) {
	if t.question == nil || t.question.ID != questionID {
		return false, nil
	}
	return t.SubmitAnswer(ctx, index)
}

// Statistics computes mastery metrics of the dictionary.
func (t *Trainer) Statistics() (entities.Statistics, error) {
	return ComputeStatistics(t.dictionary)
}

// ActiveQuestion returns the current question, or nil.
func (t *Trainer) ActiveQuestion() *entities.Question {
	return t.question
}

// Dictionary returns the words of the session.
func (t *Trainer) Dictionary() []*entities.Word {
	return t.dictionary
}
