// Package viewer is the interactive terminal viewer for a symbol sequence.
// It shows one part at a time and can cycle through them on a timer so a
// phone camera can scan the whole sequence hands-free.
package viewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bft-labs/qrship/pkg/render"
	"github.com/bft-labs/qrship/pkg/symbol"
)

const (
	// DefaultInterval is the auto-play dwell time per part.
	DefaultInterval = 4 * time.Second

	// DefaultTitle heads the screen.
	DefaultTitle = "Scan to sign"

	emptyText = "No QR codes to display"

	// chromeLines is the header and footer around the symbol.
	chromeLines = 5
)

// ReloadMsg replaces the displayed sequence, e.g. after the payload file
// changed. Err, if set, is shown above the sequence.
type ReloadMsg struct {
	Symbols []*symbol.Symbol
	Err     error
}

// tickMsg advances auto-play. Ticks from an older generation are stale.
type tickMsg struct {
	gen int
}

// Config controls the viewer.
type Config struct {
	Title    string
	Interval time.Duration
	Variant  render.Variant
}

// Model is the bubbletea model for the viewer.
type Model struct {
	keys   *KeyMap
	styles *Styles

	title    string
	interval time.Duration
	variant  render.Variant

	symbols []*symbol.Symbol
	index   int
	playing bool
	gen     int
	err     error

	width  int
	height int
}

// New creates a viewer over symbols.
func New(symbols []*symbol.Symbol, cfg Config) *Model {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	return &Model{
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		title:    cfg.Title,
		interval: cfg.Interval,
		variant:  cfg.Variant,
		symbols:  symbols,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tickMsg:
		if !m.playing || msg.gen != m.gen || len(m.symbols) == 0 {
			return m, nil
		}
		m.index = (m.index + 1) % len(m.symbols)
		return m, m.tick()

	case ReloadMsg:
		m.symbols = msg.Symbols
		m.err = msg.Err
		m.index = 0
		m.playing = false
		m.gen++
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.AutoPlay):
		m.playing = !m.playing
		m.gen++
		if m.playing && len(m.symbols) > 1 {
			return m, m.tick()
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if m.index < len(m.symbols)-1 {
			m.index++
		}
		return m, m.restartTimer()

	case key.Matches(msg, m.keys.Prev):
		if m.index > 0 {
			m.index--
		}
		return m, m.restartTimer()

	case key.Matches(msg, m.keys.First):
		m.index = 0
		return m, m.restartTimer()
	}
	return m, nil
}

// restartTimer gives the part the user just navigated to a full interval.
func (m *Model) restartTimer() tea.Cmd {
	m.gen++
	if !m.playing || len(m.symbols) < 2 {
		return nil
	}
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if len(m.symbols) == 0 {
		b.WriteString("\n")
		b.WriteString(emptyText)
		b.WriteString("\n\n")
		b.WriteString(m.styles.Help.Render(helpLine([]key.Binding{m.keys.Quit})))
		return b.String()
	}

	s := m.symbols[m.index]
	counter := fmt.Sprintf("Part %d of %d", m.index+1, len(m.symbols))
	b.WriteString(m.styles.Counter.Render(counter))
	if m.playing {
		b.WriteString("  ")
		b.WriteString(m.styles.Playing.Render("▶ auto-play"))
	}
	b.WriteString("\n\n")

	if s.IsSentinel() {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Failed to generate QR code for part %d", s.Part())))
		b.WriteString("\n")
	} else {
		b.WriteString(s.Render(m.currentVariant(s)))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(helpLine(m.keys.ShortHelp())))
	return b.String()
}

func (m *Model) currentVariant(s *symbol.Symbol) render.Variant {
	if m.variant != render.Auto {
		return m.variant
	}
	height := m.height
	if height > 0 {
		height = max(1, height-chromeLines)
	}
	return render.Select(m.width, height, s.Size())
}

// Index returns the zero-based position of the displayed part.
func (m *Model) Index() int {
	return m.index
}

// Playing reports whether auto-play is on.
func (m *Model) Playing() bool {
	return m.playing
}

// Run starts the viewer on the alternate screen. Other goroutines deliver
// ReloadMsg through the returned program; the channel yields the exit error.
func Run(m *Model, opts ...tea.ProgramOption) (*tea.Program, <-chan error) {
	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
	}()
	return p, done
}
