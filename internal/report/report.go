package report

import (
	"strconv"
	"strings"

	"erap/internal/models"
	"erap/internal/normalizer"
)

// Text renders diagnostics one per line in report order. It returns "" when
// there is nothing to report.
func Text(d models.Diagnostics) string {
	var sb strings.Builder

	for _, line := range d.Lines() {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// Summary renders a table of partition sizes, skipped rows and diagnostic
// counts for a batch run.
func Summary(res *normalizer.Result) string {
	rows := [][]string{
		{"Rows read", strconv.Itoa(res.Stats.Total)},
		{"Geographic programs", strconv.Itoa(len(res.Programs.Geographic))},
		{"Tribal programs", strconv.Itoa(len(res.Programs.Tribal))},
		{"Permanently closed", strconv.Itoa(res.Stats.Closed)},
		{"Suppressed state programs", strconv.Itoa(res.Stats.Suppressed)},
		{"No county", strconv.Itoa(len(res.Diagnostics.NoCounty))},
		{"No contact", strconv.Itoa(len(res.Diagnostics.NoContact))},
		{"No/bad URL", strconv.Itoa(len(res.Diagnostics.NoURL))},
		{"Bad status", strconv.Itoa(len(res.Diagnostics.BadStatus))},
	}

	return RenderTable([]string{"Category", "Count"}, rows)
}
