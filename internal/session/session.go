package session

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Outcome describes how a session ended.
type Outcome int

const (
	OutcomeFinished Outcome = iota // All questions were answered
	OutcomeAborted                 // The user interrupted and confirmed
	OutcomeNoAnswer                // An empty answer was submitted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFinished:
		return "finished"
	case OutcomeAborted:
		return "aborted"
	case OutcomeNoAnswer:
		return "no-answer"
	}
	return "unknown"
}

// Session owns the question queue and the answer ledgers of one game.
// A question is always in exactly one of: the queue, current, the right
// ledger or the wrong ledger.
type Session struct {
	id      string
	total   int
	queue   []*Question
	current *Question
	right   []*Question
	wrong   []*Question

	threshold    int
	hasThreshold bool

	aborted bool
	outcome Outcome
}

// NewRand returns a random source seeded from seed, or from the clock
// when seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// New creates a session from the normalized questions. The order is
// shuffled with rng, then cut down to limit when limit > 0, so the kept
// questions are a uniform sample.
func New(questions []*Question, limit int, rng *rand.Rand) *Session {
	if rng == nil {
		rng = NewRand(0)
	}

	queue := make([]*Question, len(questions))
	copy(queue, questions)
	rng.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})

	if limit > 0 && len(queue) > limit {
		queue = queue[:limit]
	}

	return &Session{
		id:    uuid.New().String(),
		total: len(queue),
		queue: queue,
	}
}

// ID returns the session's unique ID.
func (s *Session) ID() string {
	return s.id
}

// Total returns the number of questions in the session after limiting.
func (s *Session) Total() int {
	return s.total
}

// Remaining returns the number of questions not yet drawn.
func (s *Session) Remaining() int {
	return len(s.queue)
}

// Current returns the drawn, not yet recorded question, or nil.
func (s *Session) Current() *Question {
	return s.current
}

// Right returns the correctly answered questions in answering order.
func (s *Session) Right() []*Question {
	return s.right
}

// Wrong returns the incorrectly answered questions in answering order.
func (s *Session) Wrong() []*Question {
	return s.wrong
}

// Aborted reports whether the user interrupted the session.
func (s *Session) Aborted() bool {
	return s.aborted
}

// Outcome returns how the session ended.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// DrawNext removes the head of the queue and makes it current.
func (s *Session) DrawNext() (*Question, error) {
	if len(s.queue) == 0 {
		return nil, ErrEmptyQueue
	}
	q := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	s.current = q
	return q, nil
}

// Progress returns the share of drawn questions as a rounded percentage.
func (s *Session) Progress() (int, error) {
	if s.total == 0 {
		return 0, ErrNoQuestions
	}
	p := 100 * (1 - float64(s.Remaining())/float64(s.total))
	return int(math.RoundToEven(p)), nil
}

// RecordCorrect moves the current question to the right ledger.
func (s *Session) RecordCorrect() error {
	if s.current == nil {
		return ErrNoCurrent
	}
	s.right = append(s.right, s.current)
	s.current = nil
	return nil
}

// RecordIncorrect moves the current question to the wrong ledger and
// keeps the submitted answers for review.
func (s *Session) RecordIncorrect(answers []string) error {
	if s.current == nil {
		return ErrNoCurrent
	}
	s.current.UserAnswers = append([]string(nil), answers...)
	s.wrong = append(s.wrong, s.current)
	s.current = nil
	return nil
}

// SetThreshold sets the pass mark in percent. Values above 100 are capped
// at 100 and negative values raised to 0.
func (s *Session) SetThreshold(v int) int {
	s.threshold = min(max(v, 0), 100)
	s.hasThreshold = true
	return s.threshold
}

// Threshold returns the pass mark and whether one is set.
func (s *Session) Threshold() (int, bool) {
	return s.threshold, s.hasThreshold
}

// Abort marks the session as interrupted by the user. The current
// question, if any, stays unanswered.
func (s *Session) Abort() {
	s.aborted = true
	s.outcome = OutcomeAborted
}

// end records how a non-aborted session ended.
func (s *Session) end(o Outcome) {
	if !s.aborted {
		s.outcome = o
	}
}
