package main

import (
	"io"

	"jobscrape-engine/internal/domain"

	"github.com/jedib0t/go-pretty/v6/table"
)

func printSummary(w io.Writer, recs []domain.JobRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Job Title", "Company", "Location", "Date"})
	for i, r := range recs {
		t.AppendRow(table.Row{i + 1, r.Title, r.Company, r.Location, r.DatePosted})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", len(recs)})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
