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
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getSubmissionsCmd returns the submissions command.
func getSubmissionsCmd() *cobra.Command {
	submissionsCmd := &cobra.Command{
		Use:   "submissions",
		Short: "List submissions with their latest status",
		Long: `Submissions lists every submission version with its dataset
UUID, file name, dates and the most recent pipeline status.

A failed status points at the step that broke; the stored error
message is in the submission_message table.

Examples:
  biohub submissions`,
		RunE: runSubmissions,
	}

	return submissionsCmd
}

func runSubmissions(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	op, err := connectDB(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	ing, err := newIngestor(op, nil, nil)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	recs, err := ing.ListSubmissions(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if len(recs) == 0 {
		gn.Info("No submissions yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUUID\tFILE\tEFFECTIVE\tENDED\tSTATUS")
	for _, rec := range recs {
		ended := "-"
		if rec.RecordEndDate != nil {
			ended = rec.RecordEndDate.Format("2006-01-02")
		}
		status := rec.Status
		if status == "" {
			status = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			rec.SubmissionID, rec.UUID, rec.InputFileName,
			rec.RecordEffectiveDate.Format("2006-01-02"),
			ended, status)
	}
	return w.Flush()
}
