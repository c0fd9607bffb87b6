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
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/config"
)

// getIngestCmd returns the ingest command.
func getIngestCmd() *cobra.Command {
	var (
		datasetUUID string
		systemUser  int
	)

	ingestCmd := &cobra.Command{
		Use:   "ingest <archive.zip>",
		Short: "Submit a Darwin Core Archive to the pipeline",
		Long: `Ingest runs the full submission pipeline for one Darwin Core
Archive.

When a live submission already exists for the dataset UUID, its
spatial components are removed and the old record is ended before the
new version is created. Each pipeline step appends a status record;
a failing step also stores the error message, so the run can be
diagnosed afterwards with 'biohub submissions'.

The dataset UUID defaults to the packageId of the archive's EML
document; --uuid overrides it for archives without one.

Examples:
  biohub ingest moose_survey.zip
  biohub ingest moose_survey.zip --uuid 8de64349-3605-4973-9911-8422068dde34`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(cmd, args, datasetUUID, systemUser)
		},
	}

	ingestCmd.Flags().StringVarP(&datasetUUID, "uuid", "u", "",
		"dataset UUID (defaults to the EML packageId)")
	ingestCmd.Flags().IntVarP(&systemUser, "system-user", "s", 0,
		"submit as this system user (default from config)")

	return ingestCmd
}

func runIngest(
	_ *cobra.Command,
	args []string,
	datasetUUID string,
	systemUser int,
) error {
	ctx := context.Background()

	if systemUser > 0 {
		cfg.Update([]config.Option{config.OptSystemUserID(systemUser)})
	}

	if datasetUUID != "" {
		if _, err := uuid.Parse(datasetUUID); err != nil {
			gn.Warn("<em>%s</em> is not a valid UUID", datasetUUID)
			return err
		}
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	file := biohub.RawFile{
		Name: filepath.Base(path),
		Data: data,
	}

	gn.Info("Read <em>%s</em> (%s)",
		file.Name, humanize.Bytes(uint64(len(data))))

	op, err := connectDB(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	var bar *pb.ProgressBar
	progress := func(step string, current, total int) {
		if bar == nil {
			bar = pb.Full.Start(total)
			bar.Set(pb.CleanOnFinish, true)
		}
		bar.Set("prefix", step+" ")
		bar.SetCurrent(int64(current))
	}

	ing, err := newIngestor(op, nil, progress)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	id, err := ing.Intake(ctx, file, datasetUUID)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Created submission <em>%d</em>", id)
	gn.Info("Run 'biohub scrape %d' to index occurrence rows", id)

	return nil
}
