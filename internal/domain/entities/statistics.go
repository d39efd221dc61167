package entities

// Statistics contains aggregate mastery metrics of a dictionary.
type Statistics struct {
	TotalCount int    // number of words in the dictionary
	LearnCount int    // number of learned words
	Percent    string // floor(LearnCount*PercentScale/TotalCount)
}

// Left returns the number of words that are not learned yet.
func (s Statistics) Left() int {
	return s.TotalCount - s.LearnCount
}
