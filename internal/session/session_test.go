package session

import (
	"errors"
	"fmt"
	"testing"
)

func makeQuestions(n int) []*Question {
	qs := make([]*Question, n)
	for i := range qs {
		qs[i] = &Question{
			Chapter: "Basics",
			ID:      fmt.Sprint(i + 1),
			Prompt:  fmt.Sprintf("Question %d?", i+1),
			Options: []Option{{"A", "yes"}, {"B", "no"}},
			Right:   []string{"A"},
		}
	}
	return qs
}

func drawIDs(t *testing.T, s *Session) []string {
	t.Helper()
	var ids []string
	for s.Remaining() > 0 {
		q, err := s.DrawNext()
		if err != nil {
			t.Fatalf("DrawNext: %v", err)
		}
		ids = append(ids, q.ID)
		if err := s.RecordCorrect(); err != nil {
			t.Fatalf("RecordCorrect: %v", err)
		}
	}
	return ids
}

func TestNew_Limit(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		limit int
		want  int
	}{
		{"no limit", 5, 0, 5},
		{"limit below count", 10, 3, 3},
		{"limit equals count", 4, 4, 4},
		{"limit above count", 2, 9, 2},
		{"negative limit", 3, -1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(makeQuestions(tt.n), tt.limit, NewRand(1))
			if s.Total() != tt.want {
				t.Errorf("Total() = %d, want %d", s.Total(), tt.want)
			}
			if s.Remaining() != tt.want {
				t.Errorf("Remaining() = %d, want %d", s.Remaining(), tt.want)
			}
		})
	}
}

func TestNew_SameSeedSameOrder(t *testing.T) {
	a := drawIDs(t, New(makeQuestions(8), 0, NewRand(42)))
	b := drawIDs(t, New(makeQuestions(8), 0, NewRand(42)))

	if fmt.Sprint(a) != fmt.Sprint(b) {
		t.Errorf("orders differ for the same seed: %v vs %v", a, b)
	}
}

func TestNew_LimitedSubsetIsUnique(t *testing.T) {
	ids := drawIDs(t, New(makeQuestions(10), 4, NewRand(9)))
	if len(ids) != 4 {
		t.Fatalf("drew %d questions, want 4", len(ids))
	}
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Errorf("question %s drawn twice", id)
		}
		seen[id] = true
	}
}

func TestNew_DoesNotShareInputSlice(t *testing.T) {
	qs := makeQuestions(3)
	s := New(qs, 0, NewRand(5))
	drawIDs(t, s)

	for i, q := range qs {
		if q == nil {
			t.Fatalf("input slice element %d was cleared", i)
		}
	}
}

func TestDrawNext_Empty(t *testing.T) {
	s := New(makeQuestions(1), 0, NewRand(1))
	if _, err := s.DrawNext(); err != nil {
		t.Fatalf("first DrawNext: %v", err)
	}
	if _, err := s.DrawNext(); !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("DrawNext on empty queue: err = %v, want ErrEmptyQueue", err)
	}
}

func TestProgress(t *testing.T) {
	s := New(makeQuestions(4), 0, NewRand(1))

	want := []int{0, 25, 50, 75, 100}
	for i, w := range want {
		got, err := s.Progress()
		if err != nil {
			t.Fatalf("Progress: %v", err)
		}
		if got != w {
			t.Errorf("step %d: Progress() = %d, want %d", i, got, w)
		}
		if s.Remaining() > 0 {
			s.DrawNext()
			s.RecordCorrect()
		}
	}
}

func TestProgress_Rounds(t *testing.T) {
	s := New(makeQuestions(3), 0, NewRand(1))
	s.DrawNext()
	got, _ := s.Progress()
	if got != 33 {
		t.Errorf("Progress() = %d, want 33", got)
	}
	s.DrawNext()
	got, _ = s.Progress()
	if got != 67 {
		t.Errorf("Progress() = %d, want 67", got)
	}
}

func TestProgress_RoundsHalfToEven(t *testing.T) {
	s := New(makeQuestions(8), 0, NewRand(1))
	s.DrawNext()
	if got, _ := s.Progress(); got != 12 {
		t.Errorf("Progress() = %d, want 12", got)
	}
}

func TestProgress_NoQuestions(t *testing.T) {
	s := New(nil, 0, NewRand(1))
	if _, err := s.Progress(); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestRecord_MovesCurrent(t *testing.T) {
	s := New(makeQuestions(2), 0, NewRand(1))

	first, _ := s.DrawNext()
	if s.Current() != first {
		t.Fatal("drawn question is not current")
	}
	if err := s.RecordCorrect(); err != nil {
		t.Fatal(err)
	}
	if s.Current() != nil {
		t.Error("current not cleared after RecordCorrect")
	}

	second, _ := s.DrawNext()
	if err := s.RecordIncorrect([]string{"B"}); err != nil {
		t.Fatal(err)
	}

	if len(s.Right()) != 1 || s.Right()[0] != first {
		t.Errorf("right ledger = %v", s.Right())
	}
	if len(s.Wrong()) != 1 || s.Wrong()[0] != second {
		t.Errorf("wrong ledger = %v", s.Wrong())
	}
	if got := second.UserAnswers; len(got) != 1 || got[0] != "B" {
		t.Errorf("UserAnswers = %v, want [B]", got)
	}
}

func TestRecord_NoCurrent(t *testing.T) {
	s := New(makeQuestions(1), 0, NewRand(1))
	if err := s.RecordCorrect(); !errors.Is(err, ErrNoCurrent) {
		t.Errorf("RecordCorrect: err = %v, want ErrNoCurrent", err)
	}
	if err := s.RecordIncorrect([]string{"A"}); !errors.Is(err, ErrNoCurrent) {
		t.Errorf("RecordIncorrect: err = %v, want ErrNoCurrent", err)
	}
}

func TestSetThreshold_Clamps(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{50, 50},
		{0, 0},
		{100, 100},
		{150, 100},
		{-5, 0},
	}

	for _, tt := range tests {
		s := New(nil, 0, NewRand(1))
		if got := s.SetThreshold(tt.in); got != tt.want {
			t.Errorf("SetThreshold(%d) = %d, want %d", tt.in, got, tt.want)
		}
		if v, ok := s.Threshold(); !ok || v != tt.want {
			t.Errorf("Threshold() = %d, %v after SetThreshold(%d)", v, ok, tt.in)
		}
	}
}

func TestNoThresholdByDefault(t *testing.T) {
	s := New(nil, 0, NewRand(1))
	if _, ok := s.Threshold(); ok {
		t.Fatal("new session has a threshold")
	}
}

func TestAbortWins(t *testing.T) {
	s := New(makeQuestions(1), 0, NewRand(1))
	s.Abort()
	s.end(OutcomeFinished)

	if !s.Aborted() || s.Outcome() != OutcomeAborted {
		t.Errorf("outcome = %v, aborted = %v", s.Outcome(), s.Aborted())
	}
}

func TestOutcomeString(t *testing.T) {
	for o, want := range map[Outcome]string{
		OutcomeFinished: "finished",
		OutcomeAborted:  "aborted",
		OutcomeNoAnswer: "no-answer",
		Outcome(99):     "unknown",
	} {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), got, want)
		}
	}
}

func TestUniqueIDs(t *testing.T) {
	a := New(nil, 0, NewRand(1))
	b := New(nil, 0, NewRand(1))
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("session IDs not unique: %q %q", a.ID(), b.ID())
	}
}
