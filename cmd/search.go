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

	"github.com/gnames/gn"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

// getSearchCmd returns the search command.
func getSearchCmd() *cobra.Command {
	var keyword, boundaryPath string

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Find submissions by keyword or boundary",
		Long: `Search returns the ids of submissions whose occurrence rows
match a keyword, intersect a boundary, or both.

The keyword matches case-insensitive substrings of the taxon (verbatim
and canonical), life stage, sex, vernacular name and individual count.
The boundary is a GeoJSON Feature file; occurrence points intersecting
its geometry match.

Examples:
  biohub search --keyword Moose
  biohub search --boundary park.geojson
  biohub search --keyword "Alces alces" --boundary park.geojson`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, keyword, boundaryPath)
		},
	}

	searchCmd.Flags().StringVarP(&keyword, "keyword", "k", "",
		"keyword matched against occurrence fields")
	searchCmd.Flags().StringVarP(&boundaryPath, "boundary", "b", "",
		"path to a GeoJSON Feature file")

	return searchCmd
}

func runSearch(
	_ *cobra.Command,
	_ []string,
	keyword, boundaryPath string,
) error {
	ctx := context.Background()

	criteria := submission.SearchCriteria{Keyword: keyword}

	if boundaryPath != "" {
		boundary, err := readBoundary(boundaryPath)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		criteria.Boundary = boundary
	}

	if criteria.IsEmpty() {
		gn.Warn("Nothing to search for: give --keyword and/or --boundary")
		return nil
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

	ids, err := ing.SearchSubmissions(ctx, criteria)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if len(ids) == 0 {
		gn.Info("No submissions matched.")
		return nil
	}

	for _, id := range ids {
		fmt.Println(id)
	}

	return nil
}

// readBoundary loads a GeoJSON Feature from a file.
func readBoundary(path string) (*geojson.Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return geojson.UnmarshalFeature(data)
}
