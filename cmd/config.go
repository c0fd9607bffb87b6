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

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/config"
)

// getConfigCmd returns the config command.
func getConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Config prints the effective configuration as YAML, after the
config file and BIOHUB_* environment variables have been applied.

The config file is created with default values on first run; edit it
at the printed location.

Examples:
  biohub config`,
		RunE: runConfig,
	}

	return configCmd
}

func runConfig(_ *cobra.Command, _ []string) error {
	gn.Info("Config file: <em>%s</em>", config.ConfigFilePath(homeDir))

	data, err := yaml.Marshal(cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	fmt.Print(string(data))
	return nil
}
