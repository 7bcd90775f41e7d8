package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/kvpage/internal/kv"
	"github.com/HaiFongPan/kvpage/internal/layout"
	"github.com/HaiFongPan/kvpage/internal/textfit"
	tuiconfig "github.com/HaiFongPan/kvpage/internal/tui/config"
	"github.com/HaiFongPan/kvpage/internal/tui/messaging"
	"github.com/HaiFongPan/kvpage/internal/tui/theme"
)

// PagerModel hosts a kv.Pager in a bubbletea program. Keys and mouse
// events are translated into pager gestures.
type PagerModel struct {
	pager    *kv.Pager
	viewport layout.Size
	status   messaging.StatusManager
	keyMap   KeyMap
	help     help.Model

	showHelp     bool
	closing      bool
	redraws      int
	lastRedraw   layout.Rect
	windowWidth  int
	windowHeight int
}

// statusTickMsg expires old status messages.
type statusTickMsg struct{}

// NewPagerModel creates a pager model. status receives action results and
// may be shared with an actions.Binder.
func NewPagerModel(entries []kv.Entry, viewport layout.Size, title string, face textfit.Face, opts kv.Options, status messaging.StatusManager) (*PagerModel, error) {
	if status == nil {
		status = messaging.NewStatusManager()
	}

	h := help.New()
	h.ShowAll = false
	h.Width = viewport.W

	m := &PagerModel{
		viewport:     viewport,
		status:       status,
		keyMap:       DefaultKeyMap(),
		help:         h,
		windowWidth:  viewport.W,
		windowHeight: viewport.H + tuiconfig.FooterHeight,
	}

	pager, err := kv.New(entries, viewport, title, face, opts, m)
	if err != nil {
		return nil, err
	}
	m.pager = pager
	return m, nil
}

// Redraw implements kv.Host. bubbletea repaints after every Update, so the
// request is only recorded.
func (m *PagerModel) Redraw(r layout.Rect) {
	m.redraws++
	m.lastRedraw = r
	logrus.WithFields(logrus.Fields{
		"page":    m.pageOrZero(),
		"redraws": m.redraws,
	}).Debug("Redraw requested")
}

// Dismiss implements kv.Host.
func (m *PagerModel) Dismiss() {
	m.closing = true
}

func (m *PagerModel) pageOrZero() int {
	if m.pager == nil {
		return 0
	}
	return m.pager.Page()
}

// Pager returns the hosted pager.
func (m *PagerModel) Pager() *kv.Pager {
	return m.pager
}

// Closing reports whether the pager asked to be dismissed.
func (m *PagerModel) Closing() bool {
	return m.closing
}

// Init implements the bubbletea.Model interface
func (m *PagerModel) Init() tea.Cmd {
	return statusTick()
}

func statusTick() tea.Cmd {
	return tea.Tick(tuiconfig.StatusTickInterval, func(time.Time) tea.Msg {
		return statusTickMsg{}
	})
}

// Update implements the bubbletea.Model interface
func (m *PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.help.Width = m.visible().W
		return m, nil

	case statusTickMsg:
		if m.status.Expired(tuiconfig.StatusTTL) {
			m.status.ClearMessage()
		}
		return m, statusTick()
	}

	if m.closing {
		return m, tea.Quit
	}
	return m, nil
}

func (m *PagerModel) handleKey(msg tea.KeyMsg) {
	if m.showHelp {
		// any key closes help, quit keys also close the pager
		m.showHelp = false
		if key.Matches(msg, m.keyMap.Quit) {
			m.pager.Close()
		}
		return
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.pager.Close()
	case key.Matches(msg, m.keyMap.Next):
		m.pager.Handle(kv.Swipe{Dir: kv.West})
	case key.Matches(msg, m.keyMap.Prev):
		m.pager.Handle(kv.Swipe{Dir: kv.East})
	case key.Matches(msg, m.keyMap.Tap):
		n := rowNumber(msg)
		if n > m.pager.TappableRows() {
			logrus.WithFields(logrus.Fields{
				"row":      n,
				"tappable": m.pager.TappableRows(),
			}).Debug("No action on row")
			return
		}
		m.pager.TapRow(n)
	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = true
	}
}

func (m *PagerModel) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		if m.showHelp {
			m.showHelp = false
			return
		}
		m.pager.Handle(kv.Tap{X: msg.X, Y: msg.Y})
	case tea.MouseButtonWheelDown:
		m.pager.Handle(kv.Swipe{Dir: kv.West})
	case tea.MouseButtonWheelUp:
		m.pager.Handle(kv.Swipe{Dir: kv.East})
	}
}

// View implements the bubbletea.Model interface
func (m *PagerModel) View() string {
	if m.closing {
		return ""
	}

	var page string
	if m.showHelp {
		vis := m.visible()
		page = lipgloss.Place(vis.W, vis.H, lipgloss.Center, lipgloss.Center, m.renderHelpDialog())
	} else {
		page = m.renderPage()
	}

	return page + "\n" + m.renderFooter()
}

// visible is the part of the viewport that fits in the terminal window,
// leaving the footer line.
func (m *PagerModel) visible() layout.Size {
	return layout.Size{
		W: min(m.viewport.W, m.windowWidth),
		H: min(m.viewport.H, max(m.windowHeight-tuiconfig.FooterHeight, 0)),
	}
}

func (m *PagerModel) renderPage() string {
	grid := layout.NewGrid(m.viewport.W, m.viewport.H)
	grid.Paint(m.pager.View(), layout.Point{})
	return strings.Join(grid.Lines(theme.RoleStyle), "\n")
}

func (m *PagerModel) renderFooter() string {
	style := theme.CreateFooterStyle(m.visible().W)
	if m.status.HasMessage() {
		return style.Render(m.status.RenderMessage())
	}
	return style.Render(m.help.ShortHelpView(m.keyMap.ShortHelp()))
}

func (m *PagerModel) renderHelpDialog() string {
	title := theme.CreateHeaderStyle().MarginBottom(1).Render("Keys")
	h := m.help
	h.Width = 0
	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		h.FullHelpView(m.keyMap.FullHelp()),
		theme.CreateSecondaryTextStyle().MarginTop(1).Render("Click a row or press its number to run its action"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColorBrightYellow)).
		Padding(tuiconfig.HelpDialogPadding).
		Width(min(tuiconfig.HelpDialogWidth, max(m.visible().W-4, 0))).
		Render(content)
}
