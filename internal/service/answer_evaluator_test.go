package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/learn-words-bot/internal/domain/entities"
)

func fixedQuestion(dictionary []*entities.Word) *entities.Question {
	// dictionary[0] is asked, its translation is the third option.
	return &entities.Question{
		ID:            uuid.New(),
		Variants:      []*entities.Word{dictionary[0], dictionary[4]},
		CorrectAnswer: dictionary[0],
		ListAskAnswer: []string{dictionary[0].Translation, dictionary[4].Translation},
		AskAnswer:     []string{"кот", "звезда", "собака", "луна"},
	}
}

func TestAnswerEvaluator_Check(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		want      bool
		wantCount int
		wantSaves int
	}{
		{name: "correct", index: 2, want: true, wantCount: 1, wantSaves: 1},
		{name: "wrong", index: 0, want: false, wantCount: 0, wantSaves: 0},
		{name: "negative index", index: -1, want: false, wantCount: 0, wantSaves: 0},
		{name: "index out of range", index: 99, want: false, wantCount: 0, wantSaves: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dictionary := sampleDictionary()
			store := &memoryStore{words: dictionary}
			e := NewAnswerEvaluator(store, zap.NewNop())

			got, err := e.Check(context.Background(), fixedQuestion(dictionary), tt.index, dictionary)
			require.NoError(t, err)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, dictionary[0].CorrectAnswersCount)
			assert.Equal(t, tt.wantSaves, store.saves)
		})
	}
}

func TestAnswerEvaluator_PersistsWholeDictionary(t *testing.T) {
	dictionary := sampleDictionary()
	store := &memoryStore{words: dictionary}
	e := NewAnswerEvaluator(store, zap.NewNop())

	ok, err := e.Check(context.Background(), fixedQuestion(dictionary), 2, dictionary)
	require.NoError(t, err)
	require.True(t, ok)

	require.Len(t, store.saved, len(dictionary))
	assert.Equal(t, entities.Word{Original: "dog", Translation: "собака", CorrectAnswersCount: 1}, store.saved[0])
	assert.Equal(t, "star", store.saved[4].Original)
}

func TestAnswerEvaluator_NoQuestion(t *testing.T) {
	store := &memoryStore{}
	e := NewAnswerEvaluator(store, zap.NewNop())

	ok, err := e.Check(context.Background(), nil, 0, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, store.saves)
}

func TestAnswerEvaluator_SaveFailureRollsBack(t *testing.T) {
	dictionary := sampleDictionary()
	saveErr := errors.New("permission denied")
	store := &memoryStore{words: dictionary, saveErr: saveErr}
	e := NewAnswerEvaluator(store, zap.NewNop())

	ok, err := e.Check(context.Background(), fixedQuestion(dictionary), 2, dictionary)
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrPersistence)
	require.ErrorIs(t, err, saveErr)
	assert.Zero(t, dictionary[0].CorrectAnswersCount)
}

func TestAnswerEvaluator_DuplicateTranslations(t *testing.T) {
	dictionary := []*entities.Word{
		word("dog", "собака", 0),
		word("hound", "собака", 0),
	}
	q := &entities.Question{
		ID:            uuid.New(),
		Variants:      dictionary,
		CorrectAnswer: dictionary[1],
		ListAskAnswer: []string{"собака", "собака"},
		AskAnswer:     []string{"собака", "собака"},
	}
	e := NewAnswerEvaluator(&memoryStore{words: dictionary}, zap.NewNop())

	ok, err := e.Check(context.Background(), q, 1, dictionary)
	require.NoError(t, err)
	assert.False(t, ok, "only the first occurrence is correct")

	ok, err = e.Check(context.Background(), q, 0, dictionary)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, dictionary[1].CorrectAnswersCount)
	assert.Zero(t, dictionary[0].CorrectAnswersCount)
}

func TestAnswerEvaluator_RepeatedCorrectAnswers(t *testing.T) {
	dictionary := sampleDictionary()
	store := &memoryStore{words: dictionary}
	e := NewAnswerEvaluator(store, zap.NewNop())
	q := fixedQuestion(dictionary)

	for i := 0; i < 2; i++ {
		ok, err := e.Check(context.Background(), q, 2, dictionary)
		require.NoError(t, err)
		require.True(t, ok)
	}

	assert.Equal(t, 2, dictionary[0].CorrectAnswersCount)
	assert.Equal(t, 2, store.saves)
}
