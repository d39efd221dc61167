package service

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/aliskhannn/learn-words-bot/internal/domain/entities"
)

// QuestionGenerator builds multiple choice questions from not learned words.
type QuestionGenerator struct {
	rng *rand.Rand
}

// NewQuestionGenerator creates a generator drawing randomness from rng.
func NewQuestionGenerator(rng *rand.Rand) *QuestionGenerator {
	return &QuestionGenerator{rng: rng}
}

// Generate returns the next question or nil if every word is learned.
//
// Up to RoundSize not learned words become the variants and one of them is asked.
// When fewer than RoundSize variants exist, the options are padded with translations
// of learned words; if there are not enough learned words the options stay short.
func (g *QuestionGenerator) Generate(words []*entities.Word) *entities.Question {
	notLearned := entities.FilterLearned(words, false)
	if len(notLearned) == 0 {
		return nil
	}

	variants := takeFirst(shuffled(g.rng, notLearned), entities.RoundSize)
	correct := variants[g.rng.Intn(len(variants))]

	listAskAnswer := make([]string, 0, len(variants))
	for _, w := range variants {
		listAskAnswer = append(listAskAnswer, w.Translation)
	}

	askAnswer := takeFirst(shuffled(g.rng, listAskAnswer), entities.RoundSize)

	if len(askAnswer) < entities.RoundSize {
		learned := entities.FilterLearned(words, true)
		padding := takeFirst(shuffled(g.rng, learned), entities.RoundSize-len(askAnswer))
		for _, w := range padding {
			askAnswer = append(askAnswer, w.Translation)
		}
		askAnswer = shuffled(g.rng, askAnswer)
	}

	return &entities.Question{
		ID:            uuid.New(),
		Variants:      variants,
		CorrectAnswer: correct,
		ListAskAnswer: listAskAnswer,
		AskAnswer:     askAnswer,
	}
}

// shuffled returns a shuffled copy of the input slice.
func shuffled[T any](rng *rand.Rand, in []T) []T {
	out := append([]T(nil), in...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// takeFirst returns the first n elements of items, or the whole slice if it is shorter.
func takeFirst[T any](items []T, n int) []T {
	if n <= 0 {
		return nil
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}
