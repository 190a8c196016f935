package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"perfgen/internal/pipeline"
	"perfgen/pkg/models"
)

const rule = 60

// RenderSummary writes the end-of-run report: date range, per-table row
// counts, the grand total and where the data went.
func RenderSummary(w io.Writer, s pipeline.Summary) {
	title := color.New(color.FgGreen, color.Bold).SprintFunc()

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", rule))
	fmt.Fprintln(w, title("DATA GENERATION COMPLETE!"))
	fmt.Fprintln(w, strings.Repeat("=", rule))

	fmt.Fprintf(w, "\nDate Range: %s to %s\n", s.Start.Format(models.DateLayout), s.End.Format(models.DateLayout))
	fmt.Fprintf(w, "Total Days: %d\n\n", s.TotalDays)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Table", "Records"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, c := range s.Dimensions {
		table.Append([]string{"Dimension", c.Label + " (" + c.Table + ")", FormatCount(c.Rows)})
	}
	for _, c := range s.Facts {
		table.Append([]string{"Fact", c.Label + " (" + c.Table + ")", FormatCount(c.Rows)})
	}
	table.SetFooter([]string{"", "Total Records", FormatCount(s.Total)})
	table.Render()

	if s.Destination != "" {
		label := s.DestinationLabel
		if label == "" {
			label = "File saved"
		}
		fmt.Fprintf(w, "\n%s: %s\n", label, s.Destination)
	}
	if s.Fingerprint != "" {
		fmt.Fprintf(w, "Fingerprint: %s\n", color.CyanString(s.Fingerprint))
	}
	fmt.Fprintln(w, strings.Repeat("=", rule))
}
