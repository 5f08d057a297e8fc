package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"

	"github.com/henri123lemoine/buki/internal/config"
	"github.com/henri123lemoine/buki/internal/debug"
	"github.com/henri123lemoine/buki/internal/exec"
	"github.com/henri123lemoine/buki/internal/page"
	"github.com/henri123lemoine/buki/internal/ui"
	"github.com/henri123lemoine/buki/internal/web"
)

// State represents the current UI state.
type State int

const (
	StateView State = iota
	StateFind
	StateHelp
)

// Default surface size until the terminal reports its own.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the main application model.
type Model struct {
	// Configuration
	config *config.Config
	source page.Source
	styles ui.Styles
	keys   KeyMap

	// Page
	renderer *page.Renderer
	gen      int
	tree     *page.DocumentNode
	renders  int

	// State
	state   State
	loading bool
	err     error
	status  string

	// Find
	findInput textinput.Model
	matches   []int

	// UI
	width  int
	height int

	shouldQuit bool
}

// New creates a new Model.
func New(cfg *config.Config, source page.Source) Model {
	findInput := textinput.New()
	findInput.Placeholder = "find..."
	findInput.CharLimit = 50

	return Model{
		config:    cfg,
		source:    source,
		styles:    ui.NewStyles(cfg.UI.Theme),
		keys:      KeyMapFromConfig(&cfg.Keys),
		findInput: findInput,
		state:     StateView,
		loading:   true,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return loadContent(m.source)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// A new surface is a new display request.
		if m.renderer != nil {
			return m, renderPage(m.renderer, m.gen)
		}
		return m, nil

	case tea.KeyMsg:
		// Handle quit globally, except while typing a query
		if msg.Type == tea.KeyCtrlC || (key.Matches(msg, m.keys.Quit) && m.state == StateView) {
			m.shouldQuit = true
			return m, tea.Quit
		}

		// Delegate to state-specific handler
		return m.handleKeyPress(msg)

	case ContentLoadedMsg:
		m.loading = false
		// Renders still in flight belong to the previous content.
		m.gen++
		if msg.Err != nil {
			// Never keep showing a page whose content could not be loaded.
			m.err = msg.Err
			m.tree = nil
			m.renderer = nil
			debug.Info("content load failed", zap.Error(msg.Err))
			return m, nil
		}
		m.err = nil
		m.renderer = page.NewRenderer(msg.Content)
		return m, renderPage(m.renderer, m.gen)

	case PageRenderedMsg:
		if m.renderer == nil || msg.Gen != m.gen {
			debug.Log("dropping render from generation %d (current %d)", msg.Gen, m.gen)
			return m, nil
		}
		if msg.Err != nil {
			m.err = msg.Err
			m.tree = nil
			return m, nil
		}
		tree := msg.Tree
		m.tree = &tree
		m.renders++
		m.applyFind()
		return m, nil

	case PageExportedMsg:
		if msg.Err != nil {
			m.status = "Export failed: " + msg.Err.Error()
			return m, nil
		}
		m.status = "Exported to " + msg.Path
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateView:
		return m.handleViewKeys(msg)
	case StateFind:
		return m.handleFindKeys(msg)
	case StateHelp:
		return m.handleHelpKeys(msg)
	}
	return m, nil
}

// handleViewKeys handles key presses while the page is shown.
func (m Model) handleViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Find):
		if m.tree == nil {
			return m, nil
		}
		m.state = StateFind
		m.findInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Cancel):
		m.findInput.Reset()
		m.matches = nil
		m.status = ""
	case key.Matches(msg, m.keys.Reload):
		m.status = ""
		return m, loadContent(m.source)
	case key.Matches(msg, m.keys.Open):
		if m.tree == nil {
			return m, nil
		}
		m.status = "Exporting..."
		return m, exportPage(m.config.Export, *m.tree)
	case key.Matches(msg, m.keys.Help):
		m.state = StateHelp
	}
	return m, nil
}

// handleHelpKeys handles key presses in the help view.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	m.state = StateView
	return m, nil
}

// handleFindKeys handles key presses in find mode.
func (m Model) handleFindKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateView
		m.findInput.Reset()
		m.findInput.Blur()
		m.matches = nil
		return m, nil
	case tea.KeyEnter:
		m.state = StateView
		m.findInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.findInput, cmd = m.findInput.Update(msg)
	m.applyFind()
	return m, cmd
}

// leafSource implements fuzzy.Source over the page's text leaves.
type leafSource []page.DocumentNode

func (l leafSource) String(i int) string {
	return l[i].Text
}

func (l leafSource) Len() int {
	return len(l)
}

// applyFind matches the find query against the page text using fuzzy matching.
func (m *Model) applyFind() {
	query := m.findInput.Value()
	if query == "" || m.tree == nil {
		m.matches = nil
		return
	}

	found := fuzzy.FindFrom(query, leafSource(page.Leaves(*m.tree)))
	m.matches = make([]int, 0, len(found))
	for _, match := range found {
		m.matches = append(m.matches, match.Index)
	}
}

// View renders the UI.
func (m Model) View() string {
	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = defaultWidth, defaultHeight
	}

	switch {
	case m.loading:
		return ui.RenderLoading(m.styles, width, height)
	case m.tree == nil && m.err != nil:
		return ui.RenderError(m.err, m.keys.ErrorBindings(), m.styles, width, height)
	case m.tree == nil:
		return ui.RenderLoading(m.styles, width, height)
	case m.state == StateHelp:
		return ui.RenderHelp(m.keys.HelpBindings(), m.styles, width, height)
	}

	var footer []string
	if m.state == StateFind || m.findInput.Value() != "" {
		footer = append(footer, ui.FindLine(m.findInput.View(), len(m.matches), m.styles))
	}
	if m.status != "" {
		footer = append(footer, m.styles.Help.Render(m.status))
	}
	if m.config.UI.ShowHelp {
		footer = append(footer, ui.HelpLine(m.keys.FooterBindings(), m.styles, width))
	}

	body := ui.Mount(*m.tree, ui.MountParams{
		Width:     width,
		Height:    height - len(footer),
		Styles:    m.styles,
		Highlight: m.matches,
	})
	if len(footer) == 0 {
		return body
	}
	return body + "\n" + strings.Join(footer, "\n")
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Renders returns how many trees the shell has received from the renderer.
func (m Model) Renders() int {
	return m.renders
}

// Commands

func loadContent(source page.Source) tea.Cmd {
	return func() tea.Msg {
		defer debug.Timed("load content")()
		content, err := source.Load()
		return ContentLoadedMsg{Content: content, Err: err}
	}
}

func renderPage(r *page.Renderer, gen int) tea.Cmd {
	return func() tea.Msg {
		tree := r.Render()
		if err := page.CheckStructure(tree); err != nil {
			return PageRenderedMsg{Gen: gen, Err: err}
		}
		debug.Log("rendered page %q", r.Content().Title)
		return PageRenderedMsg{Gen: gen, Tree: tree}
	}
}

func exportPage(cfg config.ExportConfig, tree page.DocumentNode) tea.Cmd {
	return func() tea.Msg {
		path, err := web.Export(cfg.OutputDir, cfg.Filename, tree, web.OptionsFromConfig(cfg))
		if err != nil {
			return PageExportedMsg{Err: err}
		}
		if err := exec.Open(cfg.OpenCommand, path); err != nil {
			return PageExportedMsg{Path: path, Err: err}
		}
		return PageExportedMsg{Path: path}
	}
}
