package session

// Severity classifies a notification for the presenter.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

// Presenter renders the game and collects raw input. Formatting, colors
// and terminal handling are entirely the presenter's concern.
type Presenter interface {
	// RenderQuestion shows a question with its options in display order.
	RenderQuestion(chapter, prompt string, options []Option)

	// PromptChoice asks for one option key out of keys and returns the raw
	// input. It returns ErrInterrupted when the user interrupts and io.EOF
	// when input is closed.
	PromptChoice(keys []string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(message string) (bool, error)

	// Notify shows a short message.
	Notify(message string, severity Severity)

	// RenderProgress shows how far the session is, in percent.
	RenderProgress(percent int)

	// RenderSummary shows the end-of-session report.
	RenderSummary(summary *Summary)
}
