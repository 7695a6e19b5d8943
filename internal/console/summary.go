package console

import (
	"fmt"
	"strings"

	"github.com/abhisek/mcquiz/internal/session"
	"github.com/abhisek/mcquiz/internal/ui/theme"
)

func (p *Presenter) RenderSummary(sum *session.Summary) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, theme.Correct.Render("Your results:"))
	fmt.Fprintln(p.out, "~~~~~~~~~~~~~")
	fmt.Fprintf(p.out, "You have answered %d of %d questions.\n", sum.Answered, sum.Total)

	if sum.HasPercent {
		fmt.Fprintf(p.out, "You got %d of %d right, which is %d%%.\n", sum.Correct, sum.Answered, sum.Percent)
	}
	if sum.HasVerdict {
		fmt.Fprintf(p.out, "The minimum to pass is %d%%.\n", sum.Threshold)
		if sum.Passed {
			fmt.Fprintln(p.out, theme.Passed.Render("PASSED"))
		} else {
			fmt.Fprintln(p.out, theme.Failed.Render("FAILED"))
		}
	}
	fmt.Fprintln(p.out)

	if len(sum.Review) == 0 {
		return
	}

	fmt.Fprintln(p.out, theme.Warning.Render("These questions should be reviewed:"))
	for _, item := range sum.Review {
		fmt.Fprintln(p.out)
		fmt.Fprintf(p.out, "Question (%s, %s):\n", item.Chapter, item.ID)
		fmt.Fprintln(p.out, theme.Label.Render(item.Prompt))
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "Possible answers:")
		for _, o := range item.Options {
			fmt.Fprintln(p.out, "("+theme.Label.Render(o.Key)+") "+o.Text)
		}
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "Your answers:  "+theme.Incorrect.Render(strings.Join(item.UserAnswers, ", ")))
		fmt.Fprintln(p.out, "Right answers: "+theme.Correct.Render(strings.Join(item.Right, ", ")))
		fmt.Fprintln(p.out, separator)
	}
	fmt.Fprintln(p.out)
}
