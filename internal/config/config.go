// Package config handles buki configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/henri123lemoine/buki/internal/page"
)

// Config represents buki configuration.
type Config struct {
	Content ContentConfig `toml:"content"`
	UI      UIConfig      `toml:"ui"`
	Export  ExportConfig  `toml:"export"`
	Keys    KeysConfig    `toml:"keys"`
}

// ContentConfig selects where page content comes from.
type ContentConfig struct {
	// TOML file with title and body keys (takes precedence)
	File string `toml:"file"`

	// Inline overrides for the built-in welcome content
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// UIConfig contains terminal shell settings.
type UIConfig struct {
	// Color theme: auto, dark, light
	Theme string `toml:"theme"`

	// Show the key summary under the page
	ShowHelp bool `toml:"show_help"`

	// Use the terminal's alternate screen
	AltScreen bool `toml:"alt_screen"`
}

// ExportConfig contains settings for static HTML export.
type ExportConfig struct {
	// Directory the page is written to
	OutputDir string `toml:"output_dir"`

	// File name inside output_dir
	Filename string `toml:"filename"`

	// Document language
	Lang string `toml:"lang"`

	// Inline the stylesheet into the page
	InlineCSS bool `toml:"inline_css"`

	// Command used to open the exported page
	// Template variables: {path}, {dir}, {file}
	OpenCommand string `toml:"open_command"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Quit   string `toml:"quit"`
	Help   string `toml:"help"`
	Find   string `toml:"find"`
	Reload string `toml:"reload"`
	Open   string `toml:"open"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{},
		UI: UIConfig{
			Theme:     "auto",
			ShowHelp:  true,
			AltScreen: true,
		},
		Export: ExportConfig{
			OutputDir:   "dist",
			Filename:    "index.html",
			Lang:        "es",
			InlineCSS:   true,
			OpenCommand: "",
		},
		Keys: KeysConfig{
			Quit:   "q,ctrl+c",
			Help:   "?",
			Find:   "/",
			Reload: "r",
			Open:   "o",
		},
	}
}

// ContentSource returns the page content source described by the config.
func (c *Config) ContentSource() page.Source {
	if c.Content.File != "" {
		return page.FileSource{Path: expandHome(c.Content.File)}
	}

	content := page.Welcome
	if c.Content.Title != "" {
		content.Title = c.Content.Title
	}
	if c.Content.Body != "" {
		content.Body = c.Content.Body
	}
	return page.StaticSource{Content: content}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/buki/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	// Respect XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "buki", "config.toml")
	}
	// Default to ~/.config on Unix (including macOS)
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "buki", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "buki", "config.toml")
	}
	return filepath.Join(configDir, "buki", "config.toml")
}

// IsFirstRun returns true if no config file exists.
func IsFirstRun() bool {
	_, err := os.Stat(ConfigPath())
	return os.IsNotExist(err)
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the TOML file,
	// preserving defaults for unspecified fields (including booleans).
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// CreateDefaultConfigFile creates a default config file with comments at path.
// An existing file is left untouched.
func CreateDefaultConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(generateDefaultConfigContent()), 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# Buki Configuration\n\n")

	b.WriteString("[content]\n")
	b.WriteString("# TOML file with `title` and `body` keys. Takes precedence over the values below.\n")
	b.WriteString("# file = \"~/site/page.toml\"\n")
	b.WriteString("# Override the built-in welcome text\n")
	fmt.Fprintf(&b, "# title = %q\n", page.Welcome.Title)
	fmt.Fprintf(&b, "# body = %q\n\n", page.Welcome.Body)

	b.WriteString("[ui]\n")
	b.WriteString("# Color theme: \"auto\", \"dark\", or \"light\"\n")
	fmt.Fprintf(&b, "theme = %q\n", cfg.UI.Theme)
	b.WriteString("# Show the key summary under the page\n")
	fmt.Fprintf(&b, "show_help = %v\n", cfg.UI.ShowHelp)
	b.WriteString("# Use the terminal's alternate screen\n")
	fmt.Fprintf(&b, "alt_screen = %v\n\n", cfg.UI.AltScreen)

	b.WriteString("[export]\n")
	b.WriteString("# Directory the HTML page is written to\n")
	fmt.Fprintf(&b, "output_dir = %q\n", cfg.Export.OutputDir)
	b.WriteString("# File name inside output_dir\n")
	fmt.Fprintf(&b, "filename = %q\n", cfg.Export.Filename)
	b.WriteString("# Document language\n")
	fmt.Fprintf(&b, "lang = %q\n", cfg.Export.Lang)
	b.WriteString("# Inline the stylesheet into the page\n")
	fmt.Fprintf(&b, "inline_css = %v\n", cfg.Export.InlineCSS)
	b.WriteString("# Command used to open the exported page (platform default if not set)\n")
	b.WriteString("# Template variables: {path}, {dir}, {file}. Variables are shell-escaped.\n")
	b.WriteString("# open_command = \"firefox {path}\"\n\n")

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# quit = %q\n", cfg.Keys.Quit)
	fmt.Fprintf(&b, "# help = %q\n", cfg.Keys.Help)
	fmt.Fprintf(&b, "# find = %q\n", cfg.Keys.Find)
	fmt.Fprintf(&b, "# reload = %q\n", cfg.Keys.Reload)
	fmt.Fprintf(&b, "# open = %q\n", cfg.Keys.Open)

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	// Check theme value
	if c.UI.Theme != "" &&
		c.UI.Theme != "auto" &&
		c.UI.Theme != "dark" &&
		c.UI.Theme != "light" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme))
	}

	// Content file wins over inline text
	if c.Content.File != "" && (c.Content.Title != "" || c.Content.Body != "") {
		warnings = append(warnings, "content.file is set; content.title and content.body are ignored")
	}

	if c.Export.Filename != "" && filepath.Base(c.Export.Filename) != c.Export.Filename {
		warnings = append(warnings, fmt.Sprintf("export.filename must be a bare file name, got %s", c.Export.Filename))
	}
	if c.Export.Filename != "" && !strings.HasSuffix(c.Export.Filename, ".html") {
		warnings = append(warnings, fmt.Sprintf("export.filename should end in .html, got %s", c.Export.Filename))
	}

	// Check template variables in open_command
	validVars := map[string]bool{"{path}": true, "{dir}": true, "{file}": true}
	for _, v := range extractTemplateVars(c.Export.OpenCommand) {
		if !validVars[v] {
			warnings = append(warnings, fmt.Sprintf("Unknown template variable in export.open_command: %s", v))
		}
	}

	// Check keys are not bound twice
	seen := make(map[string]string)
	for name, keys := range map[string]string{
		"quit":   c.Keys.Quit,
		"help":   c.Keys.Help,
		"find":   c.Keys.Find,
		"reload": c.Keys.Reload,
		"open":   c.Keys.Open,
	} {
		for _, k := range SplitKeys(keys) {
			if other, ok := seen[k]; ok {
				a, b := other, name
				if a > b {
					a, b = b, a
				}
				warnings = append(warnings, fmt.Sprintf("Key %q is bound to both keys.%s and keys.%s", k, a, b))
			}
			seen[k] = name
		}
	}

	return warnings
}

// SplitKeys splits a comma-separated key list, dropping blanks.
func SplitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

var templateVarRe = regexp.MustCompile(`\{[^}]+\}`)

// extractTemplateVars extracts template variables from a string.
func extractTemplateVars(s string) []string {
	return templateVarRe.FindAllString(s, -1)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
