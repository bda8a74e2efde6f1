package health

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
)

// Print writes the report as a colored table.
func (r Report) Print(w io.Writer) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	paint := func(s SystemStatus) string {
		switch s {
		case StatusCritical:
			return red(string(s))
		case StatusDegraded:
			return yellow(string(s))
		default:
			return green(string(s))
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "CATEGORY\tSTATUS\tOK\tWARN\tERROR\tUNDETERMINED")
	for _, c := range r.Categories {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\n",
			c.Category, paint(c.Status), c.OK, c.Warn, c.Error, c.Undetermined)
	}
	_ = tw.Flush()

	for _, c := range r.Categories {
		for _, f := range c.Failures {
			_, _ = fmt.Fprintf(w, "%s %s\n", red("failed:"), f)
		}
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", bold("overall:"), paint(r.SystemStatus))
}
