package session

import (
	"math"
	"slices"
	"strings"
)

// ReviewItem is a wrongly answered question listed for review.
type ReviewItem struct {
	Chapter     string
	ID          string
	Prompt      string
	Options     []Option // sorted by key
	UserAnswers []string
	Right       []string
}

// Summary holds the data reported at the end of a session.
type Summary struct {
	Outcome Outcome

	Total    int
	Answered int
	Correct  int

	// Percent is set only when HasPercent is true (at least one answer).
	Percent    int
	HasPercent bool

	// Threshold and Passed are set only when HasVerdict is true.
	Threshold  int
	HasVerdict bool
	Passed     bool

	Review []ReviewItem
}

// BuildSummary computes the report for a finished or aborted session.
// A question that was drawn but not answered counts as left, not answered.
func BuildSummary(s *Session) *Summary {
	left := s.Remaining()
	if s.Current() != nil {
		left++
	}

	sum := &Summary{
		Outcome:  s.Outcome(),
		Total:    s.Total(),
		Answered: s.Total() - left,
		Correct:  len(s.Right()),
	}

	if sum.Answered > 0 {
		sum.Percent = int(math.RoundToEven(100 * float64(sum.Correct) / float64(sum.Answered)))
		sum.HasPercent = true

		if t, ok := s.Threshold(); ok {
			sum.Threshold = t
			sum.HasVerdict = true
			sum.Passed = sum.Percent >= t
		}
	}

	for _, q := range s.Wrong() {
		opts := slices.Clone(q.Options)
		slices.SortFunc(opts, func(a, b Option) int {
			return strings.Compare(a.Key, b.Key)
		})
		sum.Review = append(sum.Review, ReviewItem{
			Chapter:     q.Chapter,
			ID:          q.ID,
			Prompt:      q.Prompt,
			Options:     opts,
			UserAnswers: slices.Clone(q.UserAnswers),
			Right:       slices.Clone(q.Right),
		})
	}
	return sum
}
