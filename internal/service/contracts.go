package service

import (
	"context"

	"github.com/aliskhannn/learn-words-bot/internal/domain/entities"
)

// DictionaryStore loads and saves the whole dictionary.
type DictionaryStore interface {
	Load(ctx context.Context) ([]*entities.Word, error)
	Save(ctx context.Context, words []*entities.Word) error
}
