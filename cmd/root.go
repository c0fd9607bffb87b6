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
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/PinkDiamond1/biohubbc-platform/internal/ioconfig"
	"github.com/PinkDiamond1/biohubbc-platform/internal/iologger"
	app "github.com/PinkDiamond1/biohubbc-platform/pkg"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/config"
)

var (
	homeDir string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any
// subcommands.
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "biohub",
	Short:   "Darwin Core dataset ingestion for the BioHub platform",
	Long: `biohub ingests Darwin Core Archive submissions into the BioHub
PostgreSQL database.

An intake run stores the raw archive, extracts and converts the EML
metadata, publishes it to the search index, normalizes the archive
worksheets, and derives secured spatial components. Every step leaves
a status record, so partial failures stay visible.

Further commands scrape occurrence rows for keyword search, query
spatial components and list submissions with their latest status.`,
	PersistentPreRunE: bootstrap,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = ioconfig.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults. Reconfigured below
	// once the user's config is loaded.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = ioconfig.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if cfg, err = ioconfig.Load(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// -V for version, consistent with other gn projects
	rootCmd.Flags().BoolP("version", "V", false, "version for biohub")

	rootCmd.AddCommand(getConfigCmd())
	rootCmd.AddCommand(getCreateCmd())
	rootCmd.AddCommand(getMigrateCmd())
	rootCmd.AddCommand(getIngestCmd())
	rootCmd.AddCommand(getScrapeCmd())
	rootCmd.AddCommand(getSearchCmd())
	rootCmd.AddCommand(getSpatialCmd())
	rootCmd.AddCommand(getDatasetsCmd())
	rootCmd.AddCommand(getSubmissionsCmd())
}
