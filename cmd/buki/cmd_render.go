package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/henri123lemoine/buki/internal/page"
	"github.com/henri123lemoine/buki/internal/ui"
)

var (
	renderWidth  int
	renderHeight int
)

// renderCmd mounts the page once and prints it.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the page to stdout",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().IntVar(&renderWidth, "width", 80, "Surface width in columns")
	renderCmd.Flags().IntVar(&renderHeight, "height", 24, "Surface height in rows")
}

func runRender(cmd *cobra.Command, args []string) error {
	tree, err := renderTree()
	if err != nil {
		return err
	}

	out := ui.Mount(tree, ui.MountParams{
		Width:  renderWidth,
		Height: renderHeight,
		Styles: ui.NewStyles(cfg.UI.Theme),
	})
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

// renderTree loads the configured content and renders it.
func renderTree() (page.DocumentNode, error) {
	content, err := cfg.ContentSource().Load()
	if err != nil {
		return page.DocumentNode{}, err
	}

	tree := page.NewRenderer(content).Render()
	if err := page.CheckStructure(tree); err != nil {
		return page.DocumentNode{}, err
	}
	return tree, nil
}
