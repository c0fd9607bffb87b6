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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// getDatasetsCmd returns the datasets command.
func getDatasetsCmd() *cobra.Command {
	var withSource bool

	datasetsCmd := &cobra.Command{
		Use:   "datasets <uuid> [<uuid>...]",
		Short: "Show current dataset versions with occurrence counts",
		Long: `Datasets resolves each dataset UUID to its current submission
version and reports the number of visible occurrence features.

Datasets without a live submission are reported as not found. The
occurrence count honors security transforms: secured components count
once, in their secured form, unless the configured system user holds
an exception.

Examples:
  biohub datasets 8de64349-3605-4973-9911-8422068dde34
  biohub datasets --source 8de64349-3605-4973-9911-8422068dde34`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasets(cmd, args, withSource)
		},
	}

	datasetsCmd.Flags().BoolVarP(&withSource, "source", "s", false,
		"print the EML JSON source of each dataset")

	return datasetsCmd
}

func runDatasets(
	_ *cobra.Command,
	args []string,
	withSource bool,
) error {
	ctx := context.Background()

	for _, arg := range args {
		if _, err := uuid.Parse(arg); err != nil {
			gn.Warn("<em>%s</em> is not a valid UUID", arg)
			return err
		}
	}

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

	recs, err := ing.FindRecordsWithSpatialCount(ctx, args)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	for n, rec := range recs {
		if rec == nil {
			fmt.Printf("%s\tnot found\n", args[n])
			continue
		}
		fmt.Printf("%s\t%s occurrences\n",
			rec.ID, humanize.Comma(int64(rec.ObservationCount)))
		if withSource {
			fmt.Println(rec.Source)
		}
	}

	return nil
}
