package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/pgEdge/pgedge-tradegen/internal/apps"
)

// writeSummary renders per-table row counts followed by the run totals.
func writeSummary(w io.Writer, s *apps.Summary) {
	fmt.Fprintf(w, "App: %s  Seed: %d  Elapsed: %s\n", s.App, s.Seed, s.Elapsed.Round(time.Millisecond))

	tables := tablewriter.NewWriter(w)
	tables.SetHeader([]string{"Table", "Rows"})
	tables.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, t := range s.Tables {
		tables.Append([]string{t.Table, strconv.Itoa(t.Rows)})
	}
	tables.SetFooter([]string{"Total", strconv.Itoa(s.Rows())})
	tables.Render()

	if len(s.Totals) == 0 {
		return
	}
	totals := tablewriter.NewWriter(w)
	totals.SetHeader([]string{"Metric", "Value"})
	totals.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, m := range s.Totals {
		totals.Append([]string{m.Name, strconv.FormatFloat(m.Value, 'f', -1, 64)})
	}
	totals.Render()
}

// writeChecks renders check results and returns the number that failed.
func writeChecks(w io.Writer, results []apps.CheckResult) int {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Check", "Status", "Violations", "Description"})
	table.SetAutoWrapText(false)

	failed := 0
	for _, r := range results {
		status := "PASS"
		violations := strconv.FormatInt(r.Violations, 10)
		switch {
		case r.Err != nil:
			status = "ERROR"
			violations = r.Err.Error()
			failed++
		case !r.Passed():
			status = "FAIL"
			failed++
		}
		table.Append([]string{r.Check.Name, status, violations, r.Check.Description})
	}
	table.Render()
	return failed
}
