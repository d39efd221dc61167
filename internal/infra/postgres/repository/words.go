package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/learn-words-bot/internal/domain/entities"
	"github.com/aliskhannn/learn-words-bot/internal/infra/postgres"
)

const wordsTable = "words"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Seeder provides the initial dictionary for an empty table.
type Seeder interface {
	Seed(ctx context.Context) ([]*entities.Word, error)
}

// WordRepository keeps the dictionary in the words table, ordered by position.
type WordRepository struct {
	db         postgres.DBTX
	transactor *postgres.Transactor
	seeder     Seeder
	logger     *zap.Logger
}

// NewWordRepository creates a WordRepository. seeder may be nil, in which case
// an empty table loads as an empty dictionary.
func NewWordRepository(
	db postgres.DBTX,
	transactor *postgres.Transactor,
	seeder Seeder,
	logger *zap.Logger,
) *WordRepository {
	return &WordRepository{
		db:         db,
		transactor: transactor,
		seeder:     seeder,
		logger:     logger,
	}
}

// Load returns all words. An empty table is filled from the seeder first.
func (r *WordRepository) Load(ctx context.Context) ([]*entities.Word, error) {
	query, args, err := psql.
		Select("original", "translation", "correct_answers_count").
		From(wordsTable).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select words: %w", err)
	}

	words, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entities.Word, error) {
		var w entities.Word
		err := row.Scan(&w.Original, &w.Translation, &w.CorrectAnswersCount)
		return &w, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan words: %w", err)
	}

	if len(words) > 0 || r.seeder == nil {
		return words, nil
	}

	words, err = r.seeder.Seed(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed words: %w", err)
	}
	if err := r.Save(ctx, words); err != nil {
		return nil, err
	}

	r.logger.Info("words table seeded", zap.Int("words", len(words)))

	return words, nil
}

// Save replaces the table contents with words in one transaction.
func (r *WordRepository) Save(ctx context.Context, words []*entities.Word) error {
	deleteQuery, deleteArgs, err := psql.Delete(wordsTable).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	insert := psql.
		Insert(wordsTable).
		Columns("position", "original", "translation", "correct_answers_count")
	for i, w := range words {
		insert = insert.Values(i, w.Original, w.Translation, w.CorrectAnswersCount)
	}

	return r.transactor.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("delete words: %w", err)
		}

		if len(words) == 0 {
			return nil
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("insert words: %w", err)
		}

		return nil
	})
}
