// Package ui is the presentation layer: a Bubble Tea program over the
// enriched complaint collection.
//
// The root App does NOT touch the dataset file or the state database
// directly. It receives data via messages from injected command functions,
// owns all session state (filter criteria, selection, focus) and passes
// derived views down to the subviews.
package ui

import (
	"fmt"
	"time"

	"github.com/abelbrown/warroom/internal/complaint"
	"github.com/abelbrown/warroom/internal/filter"
	"github.com/abelbrown/warroom/internal/tone"
	"github.com/abelbrown/warroom/internal/ui/analytics"
	"github.com/abelbrown/warroom/internal/ui/detail"
	"github.com/abelbrown/warroom/internal/ui/feed"
	"github.com/abelbrown/warroom/internal/ui/replay"
	"github.com/abelbrown/warroom/internal/ui/sidebar"
	"github.com/abelbrown/warroom/internal/ui/tour"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/time/rate"
)

// View mode
type viewMode int

const (
	modeLoading viewMode = iota
	modeFeed
	modeSidebar
	modeAnalytics
	modeReplay
)

// searchRetry is how long to wait before re-deriving when the throttle
// rejected an immediate derivation.
const searchRetry = 150 * time.Millisecond

// AppConfig wires the App to its data sources.
type AppConfig struct {
	// LoadDataset returns a Cmd producing a DatasetLoaded message.
	LoadDataset func() tea.Cmd
	// LoadState returns a Cmd producing a StateLoaded message.
	LoadState func() tea.Cmd
	// SetStarred persists one star toggle, producing StarSaved.
	SetStarred func(id int, starred bool) tea.Cmd
	// SetTutorialDone persists the tutorial flag, producing TutorialSaved.
	SetTutorialDone func() tea.Cmd

	CompactMode  bool
	KeywordLimit int
	MinLoadTime  time.Duration
}

// App is the root Bubble Tea model.
type App struct {
	cfg AppConfig

	// Data
	all        []complaint.Enriched
	kwIndex    []string
	stats      filter.Stats
	criteria   filter.Criteria
	starred    map[int]bool
	selectedID int // 0 = no selection

	// Subviews
	feed      feed.Model
	detail    detail.Model
	sidebar   sidebar.Model
	analytics analytics.Model
	replay    replay.Model
	tour      tour.Model

	mode        viewMode
	tourActive  bool
	focusDetail bool

	// Search throttle: per-keystroke re-derivation is paced so typing into
	// a large collection doesn't re-filter on every byte.
	limiter       *rate.Limiter
	searchPending bool

	spin         spinner.Model
	loadStart    time.Time
	datasetReady bool
	stateReady   bool
	tutorialDone bool

	width  int
	height int
	ready  bool
	err    error
}

// New creates the root model.
func New(cfg AppConfig) App {
	if cfg.KeywordLimit == 0 {
		cfg.KeywordLimit = 20
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8732"))

	return App{
		cfg:       cfg,
		starred:   make(map[int]bool),
		feed:      feed.New(cfg.CompactMode),
		detail:    detail.New(),
		sidebar:   sidebar.New(),
		analytics: analytics.New(),
		replay:    replay.New(),
		tour:      tour.New(),
		mode:      modeLoading,
		limiter:   rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
		spin:      s,
		loadStart: time.Now(),
	}
}

// Init kicks off dataset and state loading.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spin.Tick}
	if a.cfg.LoadDataset != nil {
		cmds = append(cmds, a.cfg.LoadDataset())
	}
	if a.cfg.LoadState != nil {
		cmds = append(cmds, a.cfg.LoadState())
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout()
		return a, nil

	case DatasetLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.all = msg.Items
		a.kwIndex = msg.KeywordsIndex
		a.stats = filter.ComputeStats(a.all, time.Now())
		a.datasetReady = true
		cmd := a.maybeFinishLoading()
		return a, cmd

	case StateLoaded:
		if msg.Err != nil {
			a.err = msg.Err
		}
		if msg.Starred != nil {
			a.starred = msg.Starred
		}
		a.tutorialDone = msg.TutorialDone
		a.stateReady = true
		cmd := a.maybeFinishLoading()
		return a, cmd

	case loaderDoneMsg:
		cmd := a.finishLoading()
		return a, cmd

	case spinner.TickMsg:
		if a.mode == modeLoading {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return a, cmd
		}
		return a, nil

	case StarSaved:
		if msg.Err != nil {
			a.err = fmt.Errorf("saving star: %w", msg.Err)
		}
		return a, nil

	case TutorialSaved:
		if msg.Err != nil {
			a.err = fmt.Errorf("saving tutorial flag: %w", msg.Err)
		}
		return a, nil

	case rederiveMsg:
		a.searchPending = false
		a.criteria.Search = a.feed.Query()
		a.rederive()
		return a, nil

	case tour.FinishedMsg:
		a.tourActive = false
		a.tutorialDone = true
		if a.cfg.SetTutorialDone != nil {
			return a, a.cfg.SetTutorialDone()
		}
		return a, nil

	case sidebar.ToggleMsg:
		a.applyToggle(msg)
		a.rederive()
		a.refreshSidebar()
		return a, nil

	case sidebar.ClearMsg:
		a.criteria = filter.Criteria{Search: a.criteria.Search}
		a.rederive()
		a.refreshSidebar()
		return a, nil

	case sidebar.CloseMsg:
		a.mode = modeFeed
		a.layout()
		return a, nil

	case analytics.CloseMsg:
		a.mode = modeFeed
		return a, nil

	case replay.CloseMsg:
		a.mode = modeFeed
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Non-key messages flow to the owning subview (animation frames,
	// replay ticks, search input blinks).
	return a.delegate(msg)
}

// maybeFinishLoading transitions out of the loader once both loads are
// done, holding the loader up to the configured minimum display time.
func (a *App) maybeFinishLoading() tea.Cmd {
	if !a.datasetReady || !a.stateReady || a.mode != modeLoading {
		return nil
	}
	if a.loadStart.IsZero() {
		return a.finishLoading()
	}
	remaining := a.cfg.MinLoadTime - time.Since(a.loadStart)
	if remaining > 0 {
		return tea.Tick(remaining, func(time.Time) tea.Msg { return loaderDoneMsg{} })
	}
	return a.finishLoading()
}

func (a *App) finishLoading() tea.Cmd {
	a.mode = modeFeed
	a.layout()
	a.rederive()
	a.refreshSidebar()
	a.analytics.SetData(a.keywordCounts(), len(a.all))
	if !a.tutorialDone {
		a.tourActive = true
		a.tour.Restart()
	}
	return nil
}

// rederive recomputes the visible view and pushes it into the feed.
func (a *App) rederive() {
	view := filter.DeriveView(a.all, a.criteria, a.starred)
	kwSel := make(map[string]bool, len(a.criteria.Keywords))
	for _, kw := range a.criteria.Keywords {
		kwSel[kw] = true
	}
	a.feed.SetItems(view, a.starred, kwSel)
	a.syncDetail()
}

// syncDetail points the detail panel at the selected complaint, falling
// back to clearing it when the selection left the visible view.
func (a *App) syncDetail() {
	if a.selectedID == 0 {
		a.detail.SetComplaint(nil, false)
		return
	}
	for i := range a.feed.Items() {
		if a.feed.Items()[i].ID == a.selectedID {
			item := a.feed.Items()[i]
			a.detail.SetComplaint(&item, a.starred[item.ID])
			return
		}
	}
	a.selectedID = 0
	a.focusDetail = false
	a.detail.SetComplaint(nil, false)
}

func (a *App) refreshSidebar() {
	a.sidebar.SetData(
		filter.CategoryCounts(a.all),
		filter.AngerCounts(a.all),
		filter.StateCounts(a.all),
		a.keywordCounts(),
		len(a.all),
		a.criteria,
	)
}

// keywordCounts tallies keywords from the records, falling back to the
// dataset's shipped vocabulary when no record carries inline keywords.
func (a *App) keywordCounts() []filter.Count {
	counts := filter.KeywordCounts(a.all, a.cfg.KeywordLimit)
	if len(counts) > 0 {
		return counts
	}
	limit := a.cfg.KeywordLimit
	if limit == 0 || limit > len(a.kwIndex) {
		limit = len(a.kwIndex)
	}
	counts = make([]filter.Count, 0, limit)
	for _, kw := range a.kwIndex[:limit] {
		counts = append(counts, filter.Count{Label: kw})
	}
	return counts
}

// applyToggle implements click-to-toggle: choosing the already-active
// value clears that filter; keywords toggle membership.
func (a *App) applyToggle(msg sidebar.ToggleMsg) {
	switch msg.Section {
	case sidebar.SectionCategory:
		if a.criteria.Category == msg.Value {
			a.criteria.Category = ""
		} else {
			a.criteria.Category = msg.Value
		}
	case sidebar.SectionAnger:
		if string(a.criteria.Anger) == msg.Value {
			a.criteria.Anger = ""
		} else {
			a.criteria.Anger = tone.Band(msg.Value)
		}
	case sidebar.SectionState:
		if a.criteria.State == msg.Value {
			a.criteria.State = ""
		} else {
			a.criteria.State = msg.Value
		}
	case sidebar.SectionKeyword:
		a.criteria = a.criteria.ToggleKeyword(msg.Value)
	}
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.err != nil {
		a.err = nil
	}

	if a.mode == modeLoading {
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, nil
	}

	// The tour overlay captures all keys while active.
	if a.tourActive {
		var cmd tea.Cmd
		a.tour, cmd = a.tour.Update(msg)
		return a, cmd
	}

	switch a.mode {
	case modeSidebar:
		var cmd tea.Cmd
		a.sidebar, cmd = a.sidebar.Update(msg)
		return a, cmd
	case modeAnalytics:
		var cmd tea.Cmd
		a.analytics, cmd = a.analytics.Update(msg)
		return a, cmd
	case modeReplay:
		var cmd tea.Cmd
		a.replay, cmd = a.replay.Update(msg)
		return a, cmd
	}

	// Feed mode. While the search input is focused, every key belongs to
	// it; re-derivation is throttled behind the limiter.
	if a.feed.Searching() {
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		searchCmd := a.searchChanged()
		return a, tea.Batch(cmd, searchCmd)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "/":
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd

	case "tab":
		if a.selectedID != 0 {
			a.focusDetail = !a.focusDetail
			a.detail.SetFocused(a.focusDetail)
		}
		return a, nil

	case "enter":
		if item, ok := a.feed.Current(); ok {
			a.selectedID = item.ID
			a.syncDetail()
		}
		return a, nil

	case "esc":
		if a.selectedID != 0 {
			a.selectedID = 0
			a.focusDetail = false
			a.detail.SetFocused(false)
			a.detail.SetComplaint(nil, false)
		}
		return a, nil

	case "s":
		cmd := a.toggleStar()
		return a, cmd

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if item, ok := a.feed.Current(); ok {
			idx := int(msg.String()[0] - '1')
			if idx < len(item.Keywords) {
				a.criteria = a.criteria.ToggleKeyword(item.Keywords[idx])
				a.rederive()
				a.refreshSidebar()
			}
		}
		return a, nil

	case "f":
		a.mode = modeSidebar
		a.refreshSidebar()
		a.layout()
		return a, nil

	case "a":
		a.mode = modeAnalytics
		return a, nil

	case "v":
		if item := a.currentItem(); item != nil {
			a.mode = modeReplay
			cmd := a.replay.Start(item)
			return a, cmd
		}
		return a, nil

	case "?":
		a.tourActive = true
		a.tour.Restart()
		return a, nil
	}

	// Navigation keys go to whichever pane has focus.
	if a.focusDetail {
		var cmd tea.Cmd
		a.detail, cmd = a.detail.Update(msg)
		return a, cmd
	}
	var cmd tea.Cmd
	a.feed, cmd = a.feed.Update(msg)
	return a, cmd
}

// currentItem resolves the complaint the next action applies to: the
// explicit selection if any, otherwise the one under the feed cursor.
func (a *App) currentItem() *complaint.Enriched {
	id := a.selectedID
	if id == 0 {
		if item, ok := a.feed.Current(); ok {
			id = item.ID
		}
	}
	for i := range a.feed.Items() {
		if a.feed.Items()[i].ID == id {
			item := a.feed.Items()[i]
			return &item
		}
	}
	return nil
}

// toggleStar flips the star on the current complaint, re-sorts and persists.
func (a *App) toggleStar() tea.Cmd {
	item := a.currentItem()
	if item == nil {
		return nil
	}
	now := !a.starred[item.ID]
	if now {
		a.starred[item.ID] = true
	} else {
		delete(a.starred, item.ID)
	}
	a.rederive()
	if a.cfg.SetStarred != nil {
		return a.cfg.SetStarred(item.ID, now)
	}
	return nil
}

// searchChanged re-derives when the search text moved, pacing the work
// behind the rate limiter with a deferred retry.
func (a *App) searchChanged() tea.Cmd {
	q := a.feed.Query()
	if q == a.criteria.Search {
		return nil
	}
	if a.limiter.Allow() {
		a.criteria.Search = q
		a.rederive()
		return nil
	}
	if a.searchPending {
		return nil
	}
	a.searchPending = true
	return tea.Tick(searchRetry, func(time.Time) tea.Msg { return rederiveMsg{} })
}

// delegate forwards non-key messages to the active subviews.
func (a App) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch a.mode {
	case modeFeed:
		a.feed, cmd = a.feed.Update(msg)
		cmds = append(cmds, cmd)
		if a.feed.Searching() {
			cmds = append(cmds, a.searchChanged())
		}
	case modeReplay:
		a.replay, cmd = a.replay.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// layout recomputes subview sizes for the current mode.
func (a *App) layout() {
	if !a.ready {
		return
	}
	bodyHeight := a.height - 2 // header + status bar
	if a.err != nil {
		bodyHeight--
	}

	detailWidth := a.width * 2 / 5
	if a.selectedID == 0 && a.mode != modeSidebar {
		detailWidth = a.width * 1 / 3
	}
	feedWidth := a.width - detailWidth

	switch a.mode {
	case modeSidebar:
		sideWidth := 36
		if sideWidth > a.width/2 {
			sideWidth = a.width / 2
		}
		a.sidebar.SetSize(sideWidth, bodyHeight)
		a.feed.SetSize(a.width-sideWidth, bodyHeight)
	default:
		a.feed.SetSize(feedWidth, bodyHeight)
	}

	a.detail.SetSize(detailWidth, bodyHeight)
	a.analytics.SetSize(a.width, bodyHeight)
	a.replay.SetSize(a.width, a.height-1)
	a.tour.SetSize(a.width, bodyHeight)
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	if a.mode == modeLoading {
		msg := LoaderStyle.Render(a.spin.View() + " Enriching complaints…")
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, msg)
	}

	if a.mode == modeReplay {
		return a.replay.View() + "\n" + a.statusBar()
	}

	header := a.renderHeader()

	var body string
	switch {
	case a.tourActive:
		body = a.tour.View()
	case a.mode == modeAnalytics:
		body = a.analytics.View()
	case a.mode == modeSidebar:
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.sidebar.View(), a.feed.View())
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.feed.View(), a.detail.View())
	}

	bodyHeight := a.height - 2
	if a.err != nil {
		bodyHeight--
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	errorBar := ""
	if a.err != nil {
		errorBar = ErrorStyle.Width(a.width).Render("Error: "+a.err.Error()+" (press any key to dismiss)") + "\n"
	}

	return header + "\n" + body + "\n" + errorBar + a.statusBar()
}

func (a App) renderHeader() string {
	title := HeaderTitle.Render("🍔 WAR ROOM")
	live := LiveDot.Render("● LIVE")

	stats := fmt.Sprintf("%s %s   %s %s   %s %s   %s %s",
		HeaderStatLabel.Render("TOTAL"), HeaderStat.Render(fmt.Sprintf("%d", a.stats.Total)),
		HeaderStatLabel.Render("TODAY"), HeaderStat.Render(fmt.Sprintf("%d", a.stats.Today)),
		HeaderStatLabel.Render("PRIORITY"), HeaderStat.Render(fmt.Sprintf("%d", a.stats.Priority)),
		HeaderStatLabel.Render("AVG ANGER"), HeaderStat.Render(fmt.Sprintf("%.1f", a.stats.AvgAnger)),
	)

	left := title + "  " + live
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(stats) - 1
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + stats
}

func (a App) statusBar() string {
	var hints string
	switch a.mode {
	case modeSidebar:
		hints = hint("j/k", "move") + hint("enter", "toggle") + hint("c", "clear") + hint("esc", "close")
	case modeAnalytics:
		hints = hint("j/k", "scroll") + hint("esc", "back")
	case modeReplay:
		hints = hint("space", "skip") + hint("r", "restart") + hint("esc", "close")
	default:
		if a.feed.Searching() {
			hints = hint("enter/esc", "done searching")
		} else {
			hints = hint("j/k", "move") + hint("enter", "open") + hint("s", "star") +
				hint("/", "search") + hint("f", "filters") + hint("v", "replay") +
				hint("a", "analytics") + hint("q", "quit")
		}
	}
	return StatusBar.Width(a.width).Render(hints)
}

func hint(key, desc string) string {
	return StatusBarKey.Render(key) + StatusBarText.Render(" "+desc+"  ")
}

// Criteria returns the active filter criteria (for testing).
func (a App) Criteria() filter.Criteria {
	return a.criteria
}

// Starred returns the in-memory starred set (for testing).
func (a App) Starred() map[int]bool {
	return a.starred
}
