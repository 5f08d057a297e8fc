package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/henri123lemoine/buki/internal/exec"
	"github.com/henri123lemoine/buki/internal/web"
)

var (
	exportDir  string
	exportOpen bool
)

// exportCmd writes the page as static HTML.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the page as a static HTML file",
	Long: `Write the page as a static HTML file.

The file is written to export.output_dir (or --out) as export.filename.
With --open the file is opened with export.open_command or the platform's
default browser.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "Output directory (default: export.output_dir)")
	exportCmd.Flags().BoolVar(&exportOpen, "open", false, "Open the exported page")
}

func runExport(cmd *cobra.Command, args []string) error {
	tree, err := renderTree()
	if err != nil {
		return err
	}

	dir := cfg.Export.OutputDir
	if exportDir != "" {
		dir = exportDir
	}

	path, err := web.Export(dir, cfg.Export.Filename, tree, web.OptionsFromConfig(cfg.Export))
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)

	if exportOpen {
		return exec.Open(cfg.Export.OpenCommand, path)
	}
	return nil
}
