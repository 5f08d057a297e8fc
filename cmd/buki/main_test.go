package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/buki/internal/app"
	"github.com/henri123lemoine/buki/internal/config"
	"github.com/henri123lemoine/buki/internal/page"
)

// newTestCmd returns a command whose output is captured in the returned buffer.
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	return cmd, &out
}

func withConfig(t *testing.T, c *config.Config) {
	t.Helper()
	old := cfg
	cfg = c
	t.Cleanup(func() { cfg = old })
}

func TestRenderCmd(t *testing.T) {
	withConfig(t, config.DefaultConfig())
	renderWidth, renderHeight = 100, 20

	cmd, out := newTestCmd()
	if err := runRender(cmd, nil); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	for _, want := range []string{page.Welcome.Title, page.Welcome.Body} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestRenderCmdContentUnavailable(t *testing.T) {
	c := config.DefaultConfig()
	c.Content.File = filepath.Join(t.TempDir(), "missing.toml")
	withConfig(t, c)

	cmd, out := newTestCmd()
	err := runRender(cmd, nil)
	if !errors.Is(err, page.ErrContentUnavailable) {
		t.Fatalf("runRender error = %v, want ErrContentUnavailable", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no partial output, got:\n%s", out.String())
	}
}

func TestExportCmd(t *testing.T) {
	withConfig(t, config.DefaultConfig())
	exportDir = t.TempDir()
	exportOpen = false
	defer func() { exportDir = "" }()

	cmd, out := newTestCmd()
	if err := runExport(cmd, nil); err != nil {
		t.Fatalf("runExport failed: %v", err)
	}

	path := strings.TrimSpace(out.String())
	if path != filepath.Join(exportDir, "index.html") {
		t.Errorf("Expected printed path, got %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	if !strings.Contains(string(data), "<h1 class=\"text-4xl font-bold\">Bienvenido a Buki</h1>") {
		t.Errorf("Unexpected export:\n%s", data)
	}
}

func TestInitCmd(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "buki", "config.toml")
	defer func() { configPath = "" }()

	cmd, out := newTestCmd()
	if err := runInit(cmd, nil); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}
	if !strings.Contains(out.String(), configPath) {
		t.Errorf("Expected created path in output, got %q", out.String())
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("Config file was not created: %v", err)
	}

	// Running it again must not overwrite the file.
	if err := runInit(cmd, nil); err == nil {
		t.Error("Expected error on second init")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	configPath = filepath.Join(dir, "config.toml")
	contentFile = filepath.Join(dir, "page.toml")
	defer func() {
		configPath = ""
		contentFile = ""
	}()
	old := cfg
	defer func() { cfg = old }()

	if err := os.WriteFile(configPath, []byte("[ui]\ntheme = \"neon\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cmd, out := newTestCmd()
	if err := loadConfig(cmd); err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Content.File != contentFile {
		t.Errorf("Expected --content override, got %q", cfg.Content.File)
	}
	if !strings.Contains(out.String(), "Warning: Invalid value for ui.theme") {
		t.Errorf("Expected theme warning, got %q", out.String())
	}
}

func TestCheckExit(t *testing.T) {
	m := app.New(config.DefaultConfig(), page.StaticSource{Content: page.Welcome})

	if err := checkExit(m); err == nil {
		t.Error("Expected error when the shell stopped without a quit request")
	}

	quit, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if err := checkExit(quit); err != nil {
		t.Errorf("checkExit after quit = %v, want nil", err)
	}
}

func TestFirstRunHint(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	firstRunHint(&out)
	if !strings.Contains(out.String(), "buki init") {
		t.Errorf("Expected init hint without a config file, got %q", out.String())
	}

	if err := config.CreateDefaultConfigFile(config.ConfigPath()); err != nil {
		t.Fatalf("CreateDefaultConfigFile() error: %v", err)
	}
	out.Reset()
	firstRunHint(&out)
	if out.Len() != 0 {
		t.Errorf("Expected no hint once the config exists, got %q", out.String())
	}
}
