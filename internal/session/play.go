package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// askState is the inner state while collecting answers to one question.
type askState int

const (
	stateCollecting askState = iota // Selecting keys
	stateConfirming                 // One empty input seen, waiting for a second
)

// Play runs the question loop until the queue is exhausted, the user
// aborts, or an empty answer is submitted. Malformed input is re-prompted
// and never ends the loop. The returned error is non-nil only for
// presenter failures.
func Play(ctx context.Context, s *Session, p Presenter) (Outcome, error) {
	log := zerolog.Ctx(ctx).With().Str("session", s.ID()).Logger()
	log.Debug().Int("total", s.Total()).Msg("session started")

	for s.Remaining() > 0 {
		if ctx.Err() != nil {
			s.Abort()
			log.Debug().Msg("session cancelled")
			return s.Outcome(), nil
		}

		pct, err := s.Progress()
		if err != nil {
			return s.Outcome(), err
		}
		p.RenderProgress(pct)

		q, err := s.DrawNext()
		if err != nil {
			return s.Outcome(), err
		}
		log.Debug().Str("chapter", q.Chapter).Str("question", q.ID).Msg("question drawn")

		answers, aborted, err := ask(ctx, q, p)
		if err != nil {
			return s.Outcome(), err
		}
		if aborted {
			s.Abort()
			log.Debug().Str("question", q.ID).Msg("session aborted")
			return s.Outcome(), nil
		}
		if len(answers) == 0 {
			s.end(OutcomeNoAnswer)
			log.Debug().Str("question", q.ID).Msg("no answer submitted")
			return s.Outcome(), nil
		}

		correct := Evaluate(answers, q.Right)
		if correct {
			err = s.RecordCorrect()
			p.Notify("Right!", SeveritySuccess)
		} else {
			err = s.RecordIncorrect(answers)
			p.Notify("Not quite.", SeverityError)
		}
		if err != nil {
			return s.Outcome(), err
		}
		log.Debug().
			Str("question", q.ID).
			Strs("answers", answers).
			Bool("correct", correct).
			Msg("answer recorded")
	}

	s.end(OutcomeFinished)
	log.Debug().Int("right", len(s.Right())).Int("wrong", len(s.Wrong())).Msg("session finished")
	return s.Outcome(), nil
}

// ask collects the answer set for q. It returns aborted=true when the
// user confirmed an interrupt.
func ask(ctx context.Context, q *Question, p Presenter) ([]string, bool, error) {
	p.RenderQuestion(q.Chapter, q.Prompt, q.Options)

	var selected []string
	state := stateCollecting

	for {
		if ctx.Err() != nil {
			return nil, true, nil
		}

		open := unselected(q.Keys(), selected)
		if len(open) == 0 {
			return selected, false, nil
		}

		raw, err := p.PromptChoice(open)
		switch {
		case errors.Is(err, io.EOF):
			return nil, true, nil
		case errors.Is(err, ErrInterrupted):
			stop, cerr := p.Confirm("Do you want to interrupt the quiz?")
			if cerr != nil || stop {
				return nil, true, nil
			}
			p.Notify("OK, then try again.", SeverityInfo)
			selected = nil
			state = stateCollecting
			p.RenderQuestion(q.Chapter, q.Prompt, q.Options)
			continue
		case err != nil:
			return nil, false, fmt.Errorf("prompt choice: %w", err)
		}

		choice := strings.ToUpper(strings.TrimSpace(raw))
		switch {
		case choice == "":
			if state == stateConfirming {
				return selected, false, nil
			}
			state = stateConfirming
			p.Notify("Sure you have all answers marked? Press Enter again to finish this question.", SeverityInfo)
		case slices.Contains(open, choice):
			selected = append(selected, choice)
			state = stateCollecting
			p.Notify("Any other answer you want to check?", SeverityInfo)
		case slices.Contains(selected, choice):
			// Repeated and invalid input leave a pending confirmation as is.
			p.Notify(fmt.Sprintf("You have already marked answer (%s) as right. Try again or press Enter if no other answer is right.", choice), SeverityWarning)
		default:
			p.Notify((&InvalidInputError{Input: raw}).Error(), SeverityError)
		}
	}
}

// unselected returns the keys not yet chosen, sorted.
func unselected(keys, selected []string) []string {
	open := make([]string, 0, len(keys))
	for _, k := range keys {
		if !slices.Contains(selected, k) {
			open = append(open, k)
		}
	}
	slices.Sort(open)
	return open
}
