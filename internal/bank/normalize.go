package bank

import (
	"math/rand/v2"

	"github.com/abhisek/mcquiz/internal/session"
)

// Questions instantiates every question of the bank for a session. The
// answer order of each question is permuted with rng; keys are
// upper-cased.
func (b *Bank) Questions(rng *rand.Rand) []*session.Question {
	if rng == nil {
		rng = session.NewRand(0)
	}

	out := make([]*session.Question, 0, b.Count())
	for _, ch := range b.Chapters {
		for _, def := range ch.Questions {
			opts := make([]session.Option, len(def.Answers))
			for i, a := range def.Answers {
				opts[i] = session.Option{Key: NormalizeKey(a.Key), Text: a.Text}
			}
			rng.Shuffle(len(opts), func(i, j int) {
				opts[i], opts[j] = opts[j], opts[i]
			})

			right := make([]string, len(def.Right))
			for i, r := range def.Right {
				right[i] = NormalizeKey(r)
			}

			out = append(out, &session.Question{
				Chapter: ch.Name,
				ID:      def.ID,
				Prompt:  def.Prompt,
				Options: opts,
				Right:   right,
			})
		}
	}
	return out
}
