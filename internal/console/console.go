// Package console implements session.Presenter on a line-oriented
// terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/mcquiz/internal/session"
	"github.com/abhisek/mcquiz/internal/ui/components"
	"github.com/abhisek/mcquiz/internal/ui/theme"
)

const separator = "--------"

// progressWidth is the width of the progress line in cells.
const progressWidth = 50

type line struct {
	text string
	err  error
}

// Presenter reads answers from an input stream and writes styled output.
type Presenter struct {
	out        io.Writer
	lines      chan line
	interrupts <-chan os.Signal
}

var _ session.Presenter = (*Presenter)(nil)

// New creates a Presenter. Input is read line by line on a background
// goroutine so that a pending read can be raced against interrupts; a
// nil interrupts channel disables interrupt handling.
func New(in io.Reader, out io.Writer, interrupts <-chan os.Signal) *Presenter {
	p := &Presenter{
		out:        out,
		lines:      make(chan line),
		interrupts: interrupts,
	}
	go p.readLines(in)
	return p
}

func (p *Presenter) readLines(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		p.lines <- line{text: scanner.Text()}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	// Every later read sees the same error.
	for {
		p.lines <- line{err: err}
	}
}

// readLine blocks until a line is read or an interrupt arrives.
func (p *Presenter) readLine() (string, error) {
	select {
	case l := <-p.lines:
		return l.text, l.err
	case <-p.interrupts:
		return "", session.ErrInterrupted
	}
}

func (p *Presenter) RenderQuestion(chapter, prompt string, options []session.Option) {
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "Category: %s\n", chapter)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, theme.Label.Render("Question:")+" "+prompt)
	fmt.Fprintln(p.out)
	for _, o := range options {
		fmt.Fprintln(p.out, theme.Label.Render("("+o.Key+")")+" "+o.Text)
	}
	fmt.Fprintln(p.out)
}

func (p *Presenter) PromptChoice(keys []string) (string, error) {
	fmt.Fprintf(p.out, "Enter choice [%s] or hit Enter to finish question: ", strings.Join(keys, " "))
	return p.readLine()
}

func (p *Presenter) Confirm(message string) (bool, error) {
	fmt.Fprintln(p.out)
	fmt.Fprint(p.out, theme.Warning.Render(message+" (y/n): "))
	answer, err := p.readLine()
	if err != nil {
		// A second interrupt while confirming counts as yes.
		if errors.Is(err, session.ErrInterrupted) {
			fmt.Fprintln(p.out)
			return true, nil
		}
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (p *Presenter) Notify(message string, severity session.Severity) {
	switch severity {
	case session.SeveritySuccess:
		message = theme.Correct.Render(message)
	case session.SeverityWarning:
		message = theme.Warning.Render(message)
	case session.SeverityError:
		message = theme.Incorrect.Render(message)
	}
	fmt.Fprintln(p.out, message)
}

func (p *Presenter) RenderProgress(percent int) {
	fmt.Fprintln(p.out, separator)
	bar := components.NewProgressBar("progress:", percent, true, progressWidth)
	fmt.Fprintln(p.out, bar.View())
}

// Info prints a plain informational line outside the question flow.
func (p *Presenter) Info(format string, args ...any) {
	fmt.Fprintln(p.out, theme.Label.Render(fmt.Sprintf(format, args...)))
}
