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

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/spatial"
)

// getSpatialCmd returns the spatial command.
func getSpatialCmd() *cobra.Command {
	var (
		boundaryPath string
		types        []string
		datasetIDs   []string
	)

	spatialCmd := &cobra.Command{
		Use:   "spatial",
		Short: "Query visible spatial components",
		Long: `Spatial returns the spatial components intersecting a boundary,
printed as GeoJSON FeatureCollections, one per line.

Components secured by a security transform come back in their secured
form unless the configured system user holds an exception for that
transform. --type filters on the feature 'properties.type' value;
--dataset restricts to the given dataset UUIDs.

Examples:
  biohub spatial --boundary region.geojson
  biohub spatial --boundary region.geojson --type Occurrence
  biohub spatial --boundary region.geojson --dataset 8de64349-3605-4973-9911-8422068dde34`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpatial(cmd, args, boundaryPath, types, datasetIDs)
		},
	}

	spatialCmd.Flags().StringVarP(&boundaryPath, "boundary", "b", "",
		"path to a GeoJSON Feature file (required)")
	spatialCmd.Flags().StringSliceVarP(&types, "type", "t", nil,
		"feature type filter, repeatable")
	spatialCmd.Flags().StringSliceVarP(&datasetIDs, "dataset", "d", nil,
		"dataset UUID filter, repeatable")
	spatialCmd.MarkFlagRequired("boundary")

	return spatialCmd
}

func runSpatial(
	_ *cobra.Command,
	_ []string,
	boundaryPath string,
	types, datasetIDs []string,
) error {
	ctx := context.Background()

	boundary, err := readBoundary(boundaryPath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	criteria := spatial.SearchCriteria{
		Boundary:  boundary,
		Type:      types,
		DatasetID: datasetIDs,
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

	fcs, err := ing.SearchSpatial(ctx, criteria)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if len(fcs) == 0 {
		gn.Info("No spatial components matched.")
		return nil
	}

	for _, fc := range fcs {
		data, err := fc.MarshalJSON()
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		fmt.Println(string(data))
	}

	return nil
}
