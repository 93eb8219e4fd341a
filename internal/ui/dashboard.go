package ui

import (
	"fmt"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/QinisoNst/water-q/internal/dataset"
)

// Page identifies one of the six dashboard views. The set is closed: the
// sidebar is generated from Pages and the dashboard View switches over every
// value, so adding or removing a page is a compile-visible change.
type Page int

const (
	PageHome Page = iota
	PageOverview
	PageTrends
	PageDistribution
	PagePotability
	PageAbout
)

// Pages lists every dashboard view in sidebar order.
var Pages = []Page{
	PageHome,
	PageOverview,
	PageTrends,
	PageDistribution,
	PagePotability,
	PageAbout,
}

// Title returns the sidebar label of the page.
func (p Page) Title() string {
	switch p {
	case PageHome:
		return "Home"
	case PageOverview:
		return "Dataset Overview"
	case PageTrends:
		return "Parameter Trends"
	case PageDistribution:
		return "Distribution"
	case PagePotability:
		return "Potability"
	case PageAbout:
		return "About"
	}
	return fmt.Sprintf("Page(%d)", int(p))
}

func (p Page) blurb() string {
	switch p {
	case PageHome:
		return "welcome"
	case PageOverview:
		return "rows, columns, statistics"
	case PageTrends:
		return "per-parameter line plot"
	case PageDistribution:
		return "per-parameter histogram"
	case PagePotability:
		return "potable vs. not potable"
	case PageAbout:
		return "about this dashboard"
	}
	return ""
}

// hasSelector reports whether the page carries a parameter selector.
func (p Page) hasSelector() bool {
	return p == PageTrends || p == PageDistribution
}

// pageItem adapts a Page for the sidebar list
type pageItem struct {
	page Page
}

func (i pageItem) Title() string       { return i.page.Title() }
func (i pageItem) Description() string { return Dim.Render(i.page.blurb()) }
func (i pageItem) FilterValue() string { return i.page.Title() }

// paramItem adapts a measurement column for the parameter selector
type paramItem struct {
	name    string
	missing int
}

func (i paramItem) Title() string { return i.name }

func (i paramItem) Description() string {
	if i.missing == 0 {
		return Dim.Render("complete column")
	}
	return Dim.Render(fmt.Sprintf("%d value(s) imputed", i.missing))
}

func (i paramItem) FilterValue() string { return i.name }

type focusArea int

const (
	focusNav focusArea = iota
	focusContent
)

const (
	sidebarWidth = 26
	headPageSize = 5
	// headLimit caps the overview sample table at fifty rows.
	headLimit = 50
	// distributionBuckets is the fixed histogram resolution.
	distributionBuckets = 20
)

// dashboardModel is the Bubble Tea model for the whole dashboard. Every
// navigation or key press triggers one full synchronous re-render; the only
// asynchronous work is the initial dataset load command.
type dashboardModel struct {
	loader *dataset.Loader
	path   string

	nav    list.Model
	params list.Model
	spin   spinner.Model

	page       Page
	focus      focusArea
	result     *dataset.Result
	loading    bool
	headOffset int

	width    int
	height   int
	quitting bool
}

type loadedMsg struct {
	result *dataset.Result
}

func newDashboard(loader *dataset.Loader, path string) dashboardModel {
	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorHighlight).
		BorderForeground(ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorTextDim).
		BorderForeground(ColorPrimary)

	items := make([]list.Item, 0, len(Pages))
	for _, p := range Pages {
		items = append(items, pageItem{page: p})
	}

	nav := list.New(items, delegate, sidebarWidth, 16)
	nav.Title = "Navigation"
	nav.SetShowStatusBar(false)
	nav.SetFilteringEnabled(false)
	nav.SetShowHelp(false)
	nav.Styles.Title = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 0, 1, 0)

	params := list.New([]list.Item{}, delegate, 30, 14)
	params.Title = "Select Parameter"
	params.SetShowStatusBar(false)
	params.SetFilteringEnabled(false)
	params.SetShowHelp(false)
	params.Styles.Title = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		Padding(0, 0, 1, 0)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorSecondary)

	return dashboardModel{
		loader:  loader,
		path:    path,
		nav:     nav,
		params:  params,
		spin:    s,
		page:    PageHome,
		loading: true,
		width:   80,
		height:  24,
	}
}

// Init kicks off the spinner and the asynchronous dataset load.
func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCmd())
}

func (m dashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{result: m.loader.Load(m.path)}
	}
}

// Update handles messages
func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.page.hasSelector() && m.hasData() {
				if m.focus == focusNav {
					m.focus = focusContent
				} else {
					m.focus = focusNav
				}
			}
			return m, nil
		}

		if m.focus == focusContent && m.page.hasSelector() {
			var cmd tea.Cmd
			m.params, cmd = m.params.Update(msg)
			return m, cmd
		}

		if m.page == PageOverview && m.hasData() {
			switch msg.String() {
			case "l", "right":
				if m.headOffset+headPageSize < m.headRows() {
					m.headOffset += headPageSize
				}
				return m, nil
			case "h", "left":
				if m.headOffset >= headPageSize {
					m.headOffset -= headPageSize
				}
				return m, nil
			}
		}

		var cmd tea.Cmd
		m.nav, cmd = m.nav.Update(msg)
		if it, ok := m.nav.SelectedItem().(pageItem); ok && it.page != m.page {
			// Fresh render on every transition; nothing carries over.
			m.page = it.page
			m.focus = focusNav
			m.headOffset = 0
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.nav.SetSize(sidebarWidth, msg.Height-8)
		m.params.SetSize(30, msg.Height-10)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case loadedMsg:
		m.loading = false
		m.result = msg.result
		if d := msg.result.Dataset; d != nil {
			params := d.Parameters()
			items := make([]list.Item, 0, len(params))
			for _, p := range params {
				items = append(items, paramItem{name: p, missing: d.MissingCount(p)})
			}
			m.params.SetItems(items)
		}
		return m, nil
	}

	return m, nil
}

// View renders the sidebar plus the current page's content pane.
func (m dashboardModel) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	var content string
	if m.loading {
		content = m.spin.View() + " " + Dim.Render("Loading dataset…")
	} else {
		switch m.page {
		case PageHome:
			content = m.viewHome()
		case PageOverview:
			content = m.viewOverview()
		case PageTrends:
			content = m.viewTrends()
		case PageDistribution:
			content = m.viewDistribution()
		case PagePotability:
			content = m.viewPotability()
		case PageAbout:
			content = m.viewAbout()
		}
	}

	header := Title.Render("Water Quality Dashboard") + "  " +
		Subtitle.Render("exploratory analysis of water quality parameters")
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.nav.View(), "  ", content)

	return tea.NewView(header + "\n\n" + body + "\n" + m.helpLine())
}

func (m dashboardModel) helpLine() string {
	help := "↑/↓: navigate · q: quit"
	if m.page.hasSelector() && m.hasData() {
		help = "tab: switch pane · " + help
	}
	if m.page == PageOverview && m.hasData() {
		help = "h/l: page sample rows · " + help
	}
	return Muted.Render(help)
}

func (m dashboardModel) hasData() bool {
	return m.result != nil && m.result.Dataset != nil
}

func (m dashboardModel) contentWidth() int {
	w := m.width - sidebarWidth - 4
	if w < 40 {
		w = 40
	}
	return w
}

func (m dashboardModel) headRows() int {
	if !m.hasData() {
		return 0
	}
	n := m.result.Dataset.Rows()
	if n > headLimit {
		n = headLimit
	}
	return n
}

func (m dashboardModel) selectedParam() (string, bool) {
	if it, ok := m.params.SelectedItem().(paramItem); ok {
		return it.name, true
	}
	return "", false
}

// RunDashboard launches the interactive dashboard and blocks until the user
// quits. The loader is shared with whoever preloaded the dataset, so the
// initial load command resolves from cache when a load already happened.
func RunDashboard(loader *dataset.Loader, path string) error {
	p := tea.NewProgram(newDashboard(loader, path))
	_, err := p.Run()
	return err
}
