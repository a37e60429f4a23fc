// export-season-report writes the margin report for one season to an
// xlsx file, for ad hoc analysis without going through the API.
//
// Usage:
//   DB_* env vars set, then:
//   go run ./cmd/export-season-report -season 26FA -out margins_26FA.xlsx
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bitbucket.org/kuhldata/merchdash_backend/config"
	"bitbucket.org/kuhldata/merchdash_backend/models/reports"
)

func main() {
	season := flag.String("season", "", "canonical season token, e.g. 26FA")
	out := flag.String("out", "", "output file path (default margins_<season>.xlsx)")
	flag.Parse()

	if *season == "" {
		fmt.Fprintln(os.Stderr, "-season is required")
		os.Exit(2)
	}
	if *out == "" {
		*out = fmt.Sprintf("margins_%s.xlsx", *season)
	}

	config.ConnectDatabaseWithRetry()
	if config.GetDB() == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	ctx := context.Background()
	rows, err := reports.GetMarginReport(ctx, *season)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build margin report: %v\n", err)
		os.Exit(1)
	}

	exporters := make([]reports.ExcelExporter, 0, len(rows))
	for _, row := range rows {
		exporters = append(exporters, *row)
	}
	content, err := reports.ExportExcel(exporters, "Margins",
		"Style Number", "Description", "Category", "Season",
		"Wholesale", "Pricing Source", "Landed", "Cost Source", "Margin %")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render workbook: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, content, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d rows to %s\n", len(rows), *out)
}
