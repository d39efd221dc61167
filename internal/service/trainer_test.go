package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/learn-words-bot/internal/domain/entities"
)

func newTestTrainer(t *testing.T, store *memoryStore) *Trainer {
	t.Helper()
	trainer, err := NewTrainer(context.Background(), store, WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)
	return trainer
}

func TestNewTrainer_LoadError(t *testing.T) {
	loadErr := errors.New("broken store")

	_, err := NewTrainer(context.Background(), &memoryStore{loadErr: loadErr})
	require.ErrorIs(t, err, loadErr)
}

func TestTrainer_SubmitWithoutQuestion(t *testing.T) {
	store := &memoryStore{words: sampleDictionary()}
	trainer := newTestTrainer(t, store)

	ok, err := trainer.SubmitAnswer(context.Background(), 0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, trainer.ActiveQuestion())
	assert.Zero(t, store.saves)
}

func TestTrainer_CorrectAnswer(t *testing.T) {
	store := &memoryStore{words: sampleDictionary()}
	trainer := newTestTrainer(t, store)
	ctx := context.Background()

	q := trainer.NextQuestion()
	require.NotNil(t, q)
	assert.Same(t, q, trainer.ActiveQuestion())

	ok, err := trainer.SubmitAnswer(ctx, q.CorrectIndex())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, q.CorrectAnswer.CorrectAnswersCount)
	assert.Equal(t, 1, store.saves)

	// The question stays active until the next one is generated.
	assert.Same(t, q, trainer.ActiveQuestion())
}

func TestTrainer_SubmitAnswerTo(t *testing.T) {
	store := &memoryStore{words: sampleDictionary()}
	trainer := newTestTrainer(t, store)
	ctx := context.Background()

	stale := trainer.NextQuestion()
	require.NotNil(t, stale)
	q := trainer.NextQuestion()
	require.NotNil(t, q)

	ok, err := trainer.SubmitAnswerTo(ctx, stale.ID, q.CorrectIndex())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = trainer.SubmitAnswerTo(ctx, uuid.New(), q.CorrectIndex())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, store.saves)

	ok, err = trainer.SubmitAnswerTo(ctx, q.ID, q.CorrectIndex())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTrainer_TrainsUntilDone(t *testing.T) {
	store := &memoryStore{words: sampleDictionary()}
	trainer := newTestTrainer(t, store)
	ctx := context.Background()

	rounds := 0
	for q := trainer.NextQuestion(); q != nil; q = trainer.NextQuestion() {
		ok, err := trainer.SubmitAnswer(ctx, q.CorrectIndex())
		require.NoError(t, err)
		require.True(t, ok)

		rounds++
		require.Less(t, rounds, 100)
	}

	// Two words started at zero and each needs three correct answers.
	assert.Equal(t, 6, rounds)
	assert.Nil(t, trainer.ActiveQuestion())

	stats, err := trainer.Statistics()
	require.NoError(t, err)
	assert.Equal(t, entities.Statistics{TotalCount: 5, LearnCount: 5, Percent: "100"}, stats)

	ok, err := trainer.SubmitAnswer(ctx, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTrainer_PersistenceFailure(t *testing.T) {
	store := &memoryStore{words: sampleDictionary(), saveErr: errors.New("read-only file system")}
	trainer := newTestTrainer(t, store)

	q := trainer.NextQuestion()
	require.NotNil(t, q)

	ok, err := trainer.SubmitAnswer(context.Background(), q.CorrectIndex())
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrPersistence)
	assert.Zero(t, q.CorrectAnswer.CorrectAnswersCount)
}

func TestTrainer_Statistics(t *testing.T) {
	trainer := newTestTrainer(t, &memoryStore{words: sampleDictionary()})

	stats, err := trainer.Statistics()
	require.NoError(t, err)
	assert.Equal(t, entities.Statistics{TotalCount: 5, LearnCount: 3, Percent: "60"}, stats)
	assert.Equal(t, 2, stats.Left())

	empty := newTestTrainer(t, &memoryStore{})
	_, err = empty.Statistics()
	require.ErrorIs(t, err, ErrEmptyDictionary)
}
