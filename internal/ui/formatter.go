package ui

import (
	"fmt"
	"io"

	"fibtest/internal/domain"

	"github.com/fatih/color"
)

// Formatter formats and displays output.
// Result lines go to out; everything else goes to errOut.
type Formatter struct {
	out    io.Writer
	errOut io.Writer

	green  *color.Color
	red    *color.Color
	cyan   *color.Color
	yellow *color.Color
	white  *color.Color
}

// NewFormatter creates a new Formatter
func NewFormatter(out, errOut io.Writer) *Formatter {
	return &Formatter{
		out:    out,
		errOut: errOut,
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		cyan:   color.New(color.FgCyan),
		yellow: color.New(color.FgYellow),
		white:  color.New(color.FgWhite),
	}
}

// ResultLine returns the uncoloured report line for a result
func ResultLine(r domain.TestResult) string {
	if r.Success {
		return fmt.Sprintf("Test '%s' passed", r.Name)
	}
	return fmt.Sprintf("Test '%s' failed: %s", r.Name, r.Message)
}

// PrintResult prints one line for a test result
func (f *Formatter) PrintResult(r domain.TestResult) {
	c := f.green
	if !r.Success {
		c = f.red
	}
	fmt.Fprintln(f.out, c.Sprint(ResultLine(r)))
}

// PrintResults prints one line per result, in the given order
func (f *Formatter) PrintResults(results []domain.TestResult) {
	for _, r := range results {
		f.PrintResult(r)
	}
}

// Warn prints a highlighted notice
func (f *Formatter) Warn(format string, args ...any) {
	fmt.Fprintln(f.errOut, f.yellow.Sprintf(format, args...))
}

// PrintMetaStats displays the statistics of a stored run
func (f *Formatter) PrintMetaStats(output *domain.TestResultsOutput) {
	meta := output.Meta
	w := f.errOut

	fmt.Fprintln(w)
	fmt.Fprintln(w, f.cyan.Sprint("╔═══════════════════════════════════════════════════════════════╗"))
	fmt.Fprintln(w, f.cyan.Sprint("║                    Test Execution Statistics                  ║"))
	fmt.Fprintln(w, f.cyan.Sprint("╚═══════════════════════════════════════════════════════════════╝"))

	rows := []struct {
		label string
		value string
		c     *color.Color
	}{
		{"Total Tests", fmt.Sprintf("%d", meta.TotalTests), f.white},
		{"Passed Tests", fmt.Sprintf("%d", meta.PassedTests), f.green},
		{"Failed Tests", fmt.Sprintf("%d", meta.FailedTests), f.red},
		{"Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), f.white},
		{"Workers", fmt.Sprintf("%d", meta.Workers), f.white},
		{"Timestamp", meta.Timestamp, f.white},
	}

	fmt.Fprintln(w, "┌─────────────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		fmt.Fprintf(w, "│ %-31s │ %s │\n", row.label, row.c.Sprintf("%-27s", row.value))
		if i < len(rows)-1 {
			fmt.Fprintln(w, "├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Fprintln(w, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(w)
	if meta.FailedTests == 0 {
		fmt.Fprintln(w, f.green.Sprint("✓ All tests passed!"))
		return
	}
	fmt.Fprintln(w, f.red.Sprintf("✗ %d test(s) failed", meta.FailedTests))
	for i, d := range output.Details {
		connector := "├──"
		if i == len(output.Details)-1 {
			connector = "└──"
		}
		fmt.Fprintf(w, "%s %s %s\n", connector, f.yellow.Sprint(d.TestName), d.Message)
	}
}

// PrintTestList prints registered test names in registration order.
// Names in failed (from the last run) are marked with [F].
func (f *Formatter) PrintTestList(names []string, failed map[string]struct{}) {
	fmt.Fprintln(f.out, f.green.Sprintf("Found %d test(s):", len(names)))
	for i, name := range names {
		marker := ""
		if _, ok := failed[name]; ok {
			marker = " " + f.red.Sprint("[F]")
		}
		connector := "├──"
		if i == len(names)-1 {
			connector = "└──"
		}
		fmt.Fprintf(f.out, "%s %s%s\n", connector, f.cyan.Sprint(name), marker)
	}
}
