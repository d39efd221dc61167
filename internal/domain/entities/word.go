// Package entities contains domain entities used across the application.
package entities

const (
	LearnedThreshold = 3   // correct answers needed to consider a word learned
	RoundSize        = 4   // number of options shown in one question
	PercentScale     = 100 // scale of the learned percentage
)

// Word represents a single dictionary entry with its translation
// and the number of correct answers given for it so far.
type Word struct {
	Original            string // word being learned
	Translation         string // translation shown as an answer option
	CorrectAnswersCount int    // number of correct answers, never negative
}

// NewWord creates a word that has not been answered yet.
func NewWord(original, translation string) *Word {
	return &Word{
		Original:    original,
		Translation: translation,
	}
}

// IsLearned reports whether the word has reached LearnedThreshold.
func (w *Word) IsLearned() bool {
	return w.CorrectAnswersCount >= LearnedThreshold
}

// FilterLearned returns words for which IsLearned equals learned,
// keeping the dictionary order.
func FilterLearned(words []*Word, learned bool) []*Word {
	out := make([]*Word, 0, len(words))
	for _, w := range words {
		if w.IsLearned() == learned {
			out = append(out, w)
		}
	}
	return out
}
