/*
Copyright © 2025 BioHub BC contributors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/parserpool"
)

// getScrapeCmd returns the scrape command.
func getScrapeCmd() *cobra.Command {
	scrapeCmd := &cobra.Command{
		Use:   "scrape <submission-id>",
		Short: "Rebuild occurrence rows for a submission",
		Long: `Scrape reads the normalized Darwin Core worksheets of a
submission and rebuilds its occurrence rows.

Occurrence rows join event dates and verbatim coordinates from the
event worksheet and vernacular names from the taxon worksheet.
Scientific names are parsed into canonical form so keyword search
matches them regardless of authorship strings. Existing rows for the
submission are replaced.

Examples:
  biohub scrape 42`,
		Args: cobra.ExactArgs(1),
		RunE: runScrape,
	}

	return scrapeCmd
}

func runScrape(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	submissionID, err := strconv.Atoi(args[0])
	if err != nil {
		gn.Warn("<em>%s</em> is not a submission id", args[0])
		return err
	}

	op, err := connectDB(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	parser := parserpool.NewPool(cfg.JobsNumber)
	defer parser.Close()

	ing, err := newIngestor(op, parser, nil)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	count, err := ing.Scrape(ctx, submissionID)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Inserted <em>%s</em> occurrence rows for submission <em>%d</em>",
		humanize.Comma(int64(count)), submissionID)

	return nil
}
