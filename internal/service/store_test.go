package service

import (
	"context"

	"github.com/aliskhannn/learn-words-bot/internal/domain/entities"
)

type memoryStore struct {
	words   []*entities.Word
	loadErr error
	saveErr error
	saves   int
	saved   []entities.Word
}

func (s *memoryStore) Load(_ context.Context) ([]*entities.Word, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.words, nil
}

func (s *memoryStore) Save(_ context.Context, words []*entities.Word) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.saved = s.saved[:0]
	for _, w := range words {
		s.saved = append(s.saved, *w)
	}
	return nil
}

func word(original, translation string, count int) *entities.Word {
	return &entities.Word{Original: original, Translation: translation, CorrectAnswersCount: count}
}

func sampleDictionary() []*entities.Word {
	return []*entities.Word{
		word("dog", "собака", 0),
		word("cat", "кот", 3),
		word("sun", "солнце", 3),
		word("moon", "луна", 3),
		word("star", "звезда", 0),
	}
}
