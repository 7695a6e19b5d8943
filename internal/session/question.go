package session

// Option is one answer as displayed for a question.
type Option struct {
	Key  string
	Text string
}

// Question is a bank question instantiated for one session.
type Question struct {
	// Chapter and ID trace the question back to the bank.
	Chapter string
	ID      string

	Prompt string

	// Options are the answers in display order, a permutation of the
	// authored answers. Keys are upper-cased.
	Options []Option

	// Right holds the upper-cased keys of the correct answers.
	Right []string

	// UserAnswers holds the submitted keys once the question was answered wrong.
	UserAnswers []string
}

// Keys returns the option keys in display order.
func (q *Question) Keys() []string {
	keys := make([]string, len(q.Options))
	for i, o := range q.Options {
		keys[i] = o.Key
	}
	return keys
}
