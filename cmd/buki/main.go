package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/henri123lemoine/buki/internal/app"
	"github.com/henri123lemoine/buki/internal/config"
	"github.com/henri123lemoine/buki/internal/debug"
)

var (
	// Global flags
	configPath  string
	contentFile string
	debugPath   string

	// Loaded in PersistentPreRunE
	cfg *config.Config
)

// rootCmd starts the interactive page shell.
var rootCmd = &cobra.Command{
	Use:   "buki",
	Short: "buki - render the Buki landing page",
	Long: `buki renders the Buki landing page.

Run without arguments to show the page in the terminal. Use "buki export"
to write it as a static HTML file and "buki render" to print it once.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debugPath != "" {
			if err := debug.Enable(debugPath); err != nil {
				return fmt.Errorf("enable debug log: %w", err)
			}
		}
		if configPath == "" && cmd != initCmd {
			firstRunHint(cmd.ErrOrStderr())
		}
		return loadConfig(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		debug.Close()
	},
	RunE: runShell,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/buki/config.toml)")
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "TOML file with page title and body")
	rootCmd.PersistentFlags().StringVar(&debugPath, "debug", "", "Write debug log to this file")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) error {
	path := configPath
	if path == "" {
		path = config.ConfigPath()
	}

	var err error
	cfg, err = config.LoadFromPath(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if contentFile != "" {
		cfg.Content.File = contentFile
	}

	for _, w := range cfg.Validate() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
	return nil
}

// runShell runs the interactive terminal shell.
func runShell(cmd *cobra.Command, args []string) error {
	model := app.New(cfg, cfg.ContentSource())

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	finalModel, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return err
	}
	return checkExit(finalModel)
}

// checkExit inspects the model the shell finished with.
func checkExit(finalModel tea.Model) error {
	m, ok := finalModel.(app.Model)
	if !ok {
		return fmt.Errorf("unexpected final model %T", finalModel)
	}
	debug.Info("shell exited", zap.Bool("quit", m.ShouldQuit()), zap.Int("renders", m.Renders()))
	if !m.ShouldQuit() {
		return errors.New("shell stopped before quit was requested")
	}
	return nil
}

// firstRunHint points new users at "buki init" when no config file exists.
func firstRunHint(w io.Writer) {
	if config.IsFirstRun() {
		fmt.Fprintf(w, "No config file at %s, using defaults. Run \"buki init\" to create one.\n", config.ConfigPath())
	}
}
