package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/handiism/zvuk-downloader/internal/download"
)

// renderSummary formats the end-of-run report: one table row per link
// in input order, a totals footer and, when something failed, the
// failure details underneath.
func renderSummary(s *download.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"kind", "id", "title", "files", "skipped", "size", "status"})

	for _, o := range s.Outcomes {
		tw.AppendRow(table.Row{
			orDash(o.Kind),
			orDash(o.ID),
			orDash(o.Title),
			o.Files,
			o.Skipped,
			humanize.Bytes(uint64(o.Bytes)),
			outcomeStatus(o),
		})
	}
	tw.AppendFooter(table.Row{
		"", "", "total",
		s.TotalFiles(), s.TotalSkipped(), humanize.Bytes(uint64(s.TotalBytes())), "",
	})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	var b strings.Builder
	b.WriteString(tw.Render())

	if failed := s.Failed(); len(failed) > 0 {
		b.WriteString("\n\nfailed:\n")
		for _, o := range failed {
			b.WriteString(fmt.Sprintf("  %s\n      %v\n", o.Link, o.Err))
		}
	}

	return b.String()
}

func outcomeStatus(o download.Outcome) string {
	switch {
	case o.Err != nil:
		return "failed"
	case o.Files == 0 && o.Skipped > 0:
		return "skipped"
	default:
		return "ok"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
