package entities

import "github.com/google/uuid"

// Question is a single round of training.
//
// Variants and CorrectAnswer point into the dictionary the question was built from,
// so answering correctly updates the dictionary word itself.
type Question struct {
	ID            uuid.UUID // identifies the round, used to reject answers to a superseded question
	Variants      []*Word   // not learned words picked for the round, at most RoundSize
	CorrectAnswer *Word     // word whose Original is asked, always one of Variants
	ListAskAnswer []string  // translations of Variants in Variants order
	AskAnswer     []string  // shuffled options shown to the user
}

// CorrectIndex returns the first position of the correct translation in AskAnswer,
// or -1 if it is absent.
func (q *Question) CorrectIndex() int {
	for i, option := range q.AskAnswer {
		if option == q.CorrectAnswer.Translation {
			return i
		}
	}
	return -1
}
