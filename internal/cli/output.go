// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayReport], [DisplayDetails].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatBlock].

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/fibworker/internal/executor"
	"github.com/agbru/fibworker/internal/fibonacci"
	"github.com/agbru/fibworker/internal/format"
	"github.com/agbru/fibworker/internal/ui"
)

// Block titles, matching the two columns of the interactive page.
const (
	WorkerTitle = "With Isolated Worker"
	MainTitle   = "Without Worker"
)

// FormatBlock returns one result block: a title, the two-line output or
// the error status, then the final status.
func FormatBlock(title string, out executor.Outcome, err error) string {
	theme := ui.GetCurrentTheme()
	color := theme.Main
	if title == WorkerTitle {
		color = theme.Worker
	}

	var b strings.Builder
	b.WriteString(theme.Paint(color, title))
	b.WriteString("\n")
	if err != nil {
		b.WriteString(theme.Paint(theme.Error, "Error: "+err.Error()))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(out.String())
	b.WriteString("\n")
	b.WriteString(theme.Paint(theme.Success, "Done!"))
	b.WriteString("\n")
	return b.String()
}

// DisplayReport writes the worker block then the main-thread block.
func DisplayReport(out io.Writer, r Report, details bool) {
	fmt.Fprint(out, FormatBlock(WorkerTitle, r.Worker, r.WorkerErr))
	fmt.Fprintln(out)
	fmt.Fprint(out, FormatBlock(MainTitle, r.Main, nil))
	if details {
		fmt.Fprintln(out)
		DisplayDetails(out, r)
	}
}

// DisplayDetails writes the call count, the overflow notice and whether both
// contexts agreed.
func DisplayDetails(out io.Writer, r Report) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(out, "--- Details ---\n")
	fmt.Fprintf(out, "Recursive calls per run: %s\n", format.FormatCount(fibonacci.Calls(r.N)))
	if fibonacci.Overflows(r.N) {
		fmt.Fprintln(out, theme.Paint(theme.Error, fmt.Sprintf(
			"Note: Fibonacci(%d) exceeds the int64 range (n > %d); the value shown has wrapped.",
			r.N, fibonacci.MaxExactN)))
	}
	switch {
	case r.WorkerErr != nil:
		fmt.Fprintln(out, theme.Paint(theme.Dim, "Contexts agree: n/a (worker failed)"))
	case r.Agree():
		fmt.Fprintln(out, theme.Paint(theme.Success, "Contexts agree: yes"))
	default:
		fmt.Fprintln(out, theme.Paint(theme.Error, "Contexts agree: no"))
	}
}
