package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerimyeniyildiz/lastmonitor/internal/api"
	"github.com/kerimyeniyildiz/lastmonitor/internal/browser"
	"github.com/kerimyeniyildiz/lastmonitor/internal/config"
	"github.com/kerimyeniyildiz/lastmonitor/internal/derive"
	"github.com/kerimyeniyildiz/lastmonitor/internal/query"
	"github.com/kerimyeniyildiz/lastmonitor/internal/update"
)

type focusPane int

const (
	focusTweets focusPane = iota
	focusNews
)

type mode int

const (
	modeHome mode = iota
	modeDashboard
	modeLive
	modeSearch
	modeFilter
	modeCategory
	modeHelp
)

type App struct {
	cfg    *config.Config
	client *api.Client
	store  *query.Store

	mode  mode
	focus focusPane

	width       int
	height      int
	currentDate string

	// Data sections, each with its own loading/error state. A failing
	// endpoint only degrades its own part of the screen.
	tweets    []api.Tweet
	news      []api.News
	daily     []api.DailyStat
	top       []api.QueryStat
	secTweets section
	secNews   section
	secDaily  section
	secTop    section

	// Sub-components
	filterBar     filterBar
	searchInput   textinput.Model
	catBar        categoryBar
	categoryInput textinput.Model
	spinner       spinner.Model

	cursor     int
	liveCursor int

	refreshing    bool
	err           error
	version       string
	updateVersion string
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg       *config.Config
	Client    *api.Client
	Store     *query.Store
	StartLive bool
	Query     string
	Search    string
	Version   string
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search tweets..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100
	ti.SetValue(opts.Search)

	ci := textinput.New()
	ci.Placeholder = "Filter value..."
	ci.Prompt = searchPromptStyle.Render("= ")
	ci.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	startMode := modeHome
	if opts.StartLive {
		startMode = modeLive
	}

	fb := newFilterBar()
	fb.selected = opts.Query

	lf := opts.Cfg.LiveFilters
	a := &App{
		cfg:           opts.Cfg,
		client:        opts.Client,
		store:         opts.Store,
		mode:          startMode,
		currentDate:   time.Now().Format("Jan 2"),
		filterBar:     fb,
		searchInput:   ti,
		catBar:        newCategoryBar(lf.Sites, lf.Places, lf.People),
		categoryInput: ci,
		spinner:       sp,
		version:       opts.Version,
	}
	a.secTweets.loading = true
	a.secNews.loading = true
	a.secDaily.loading = true
	a.secTop.loading = true
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.fetchTweetsCmd(false),
		a.fetchNewsCmd(),
		a.fetchDailyCmd(),
		a.fetchTopCmd(),
		a.checkUpdateCmd(),
	)
}

func (a *App) tweetsParams() api.TweetsParams {
	return api.TweetsParams{
		Query:  a.filterBar.selected,
		Search: a.searchInput.Value(),
		Limit:  a.cfg.TweetLimit(),
	}
}

func tweetsKey(p api.TweetsParams) string {
	return fmt.Sprintf("tweets?q=%s&search=%s&limit=%d", p.Query, p.Search, p.Limit)
}

// fetchTweetsCmd captures the current filter state into the closure so
// a later state change can't race the in-flight request. force renders
// the manual refresh: it bypasses cache freshness for the current key.
func (a *App) fetchTweetsCmd(force bool) tea.Cmd {
	client, store, timeout := a.client, a.store, a.cfg.APITimeout()
	p := a.tweetsParams()
	key := tweetsKey(p)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		load := query.Load[[]api.Tweet]
		if force {
			load = query.Reload[[]api.Tweet]
		}
		tweets, err := load(store, ctx, key, func(ctx context.Context) ([]api.Tweet, error) {
			return client.Tweets(ctx, p)
		})
		return tweetsMsg{tweets: tweets, err: err}
	}
}

func (a *App) fetchNewsCmd() tea.Cmd {
	client, store, timeout := a.client, a.store, a.cfg.APITimeout()
	p := api.NewsParams{Limit: a.cfg.NewsLimit()}
	key := fmt.Sprintf("news?limit=%d", p.Limit)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		news, err := query.Load(store, ctx, key, func(ctx context.Context) ([]api.News, error) {
			return client.News(ctx, p)
		})
		return newsMsg{news: news, err: err}
	}
}

func (a *App) fetchDailyCmd() tea.Cmd {
	client, store, timeout := a.client, a.store, a.cfg.APITimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		stats, err := query.Load(store, ctx, "stats/daily", func(ctx context.Context) ([]api.DailyStat, error) {
			return client.DailyStats(ctx)
		})
		return dailyMsg{stats: stats, err: err}
	}
}

func (a *App) fetchTopCmd() tea.Cmd {
	client, store, timeout := a.client, a.store, a.cfg.APITimeout()
	limit := a.cfg.TopQueryLimit()
	key := fmt.Sprintf("stats/top-queries?limit=%d", limit)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		stats, err := query.Load(store, ctx, key, func(ctx context.Context) ([]api.QueryStat, error) {
			return client.TopQueries(ctx, limit)
		})
		return topQueriesMsg{stats: stats, err: err}
	}
}

func (a *App) checkUpdateCmd() tea.Cmd {
	version := a.version
	return func() tea.Msg {
		result := update.Check(context.Background(), version)
		if result == nil {
			return nil
		}
		return updateCheckMsg{version: result.LatestVersion}
	}
}

func openLinkCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return openLinkMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case tweetsMsg:
		a.secTweets.loading = false
		a.refreshing = false
		a.secTweets.err = msg.err
		if msg.err == nil {
			a.tweets = msg.tweets
			a.filterBar.setTags(derive.DistinctQueries(a.tweets))
		}
		a.clampCursors()
		return a, nil

	case newsMsg:
		a.secNews.loading = false
		a.secNews.err = msg.err
		if msg.err == nil {
			a.news = msg.news
		}
		a.clampCursors()
		return a, nil

	case dailyMsg:
		a.secDaily.loading = false
		a.secDaily.err = msg.err
		if msg.err == nil {
			a.daily = msg.stats
		}
		return a, nil

	case topQueriesMsg:
		a.secTop.loading = false
		a.secTop.err = msg.err
		if msg.err == nil {
			a.top = msg.stats
		}
		return a, nil

	case updateCheckMsg:
		a.updateVersion = msg.version
		return a, nil

	case openLinkMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.refreshing {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) clampCursors() {
	if n := len(derive.RecentTweets(a.tweets)); a.focus == focusTweets && a.cursor >= n {
		a.cursor = max(0, n-1)
	}
	if n := len(derive.RecentNews(a.news)); a.focus == focusNews && a.cursor >= n {
		a.cursor = max(0, n-1)
	}
	if n := len(a.liveItems()); a.liveCursor >= n {
		a.liveCursor = max(0, n-1)
	}
}

// reloadTweets marks the section loading and re-issues the tweets
// fetch under the current filter key.
func (a *App) reloadTweets(force bool) tea.Cmd {
	a.secTweets.loading = true
	a.cursor = 0
	if force {
		a.refreshing = true
		return tea.Batch(a.fetchTweetsCmd(true), a.spinner.Tick)
	}
	return a.fetchTweetsCmd(false)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeHome:
		return a.handleHomeKey(msg)
	case modeLive:
		return a.handleLiveKey(msg)
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeCategory:
		return a.handleCategoryKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = modeDashboard
		}
		return a, nil
	}

	// Dashboard
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		limit := len(derive.RecentTweets(a.tweets))
		if a.focus == focusNews {
			limit = len(derive.RecentNews(a.news))
		}
		if a.cursor < limit-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "tab":
		if a.focus == focusTweets {
			a.focus = focusNews
		} else {
			a.focus = focusTweets
		}
		a.clampCursors()
		return a, nil
	case "o", "enter":
		if link := a.selectedLink(); link != "" {
			return a, openLinkCmd(link)
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "f":
		a.mode = modeFilter
		a.filterBar.filterMode = true
		return a, nil
	case "r":
		if !a.refreshing {
			return a, a.reloadTweets(true)
		}
		return a, nil
	case "l":
		a.mode = modeLive
		return a, nil
	case "h":
		a.mode = modeHome
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) selectedLink() string {
	if a.focus == focusTweets {
		tweets := derive.RecentTweets(a.tweets)
		if a.cursor < len(tweets) {
			return tweets[a.cursor].Link
		}
		return ""
	}
	news := derive.RecentNews(a.news)
	if a.cursor < len(news) {
		return news[a.cursor].Link
	}
	return ""
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "d", "1", "e", "enter":
		a.mode = modeDashboard
		return a, nil
	case "l", "2":
		a.mode = modeLive
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleLiveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.liveCursor < len(a.liveItems())-1 {
			a.liveCursor++
		}
		return a, nil
	case "k", "up":
		if a.liveCursor > 0 {
			a.liveCursor--
		}
		return a, nil
	case "o", "enter":
		items := a.liveItems()
		if a.liveCursor < len(items) {
			return a, openLinkCmd(items[a.liveCursor].Link)
		}
		return a, nil
	case "c":
		a.catBar.cycleKind()
		a.liveCursor = 0
		return a, nil
	case "v":
		if len(a.catBar.quick[a.catBar.kind()]) > 0 {
			a.catBar.cycleValue()
			a.liveCursor = 0
			return a, nil
		}
		a.mode = modeCategory
		a.categoryInput.SetValue(a.catBar.value)
		a.categoryInput.Focus()
		return a, textinput.Blink
	case "x":
		a.catBar.clear()
		a.liveCursor = 0
		return a, nil
	case "r":
		if !a.refreshing {
			return a, a.reloadTweets(true)
		}
		return a, nil
	case "d":
		a.mode = modeDashboard
		return a, nil
	case "h":
		a.mode = modeHome
		return a, nil
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeDashboard
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		return a, a.reloadTweets(false)
	case "enter":
		a.mode = modeDashboard
		a.searchInput.Blur()
		return a, a.reloadTweets(false)
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		a.mode = modeDashboard
		a.filterBar.filterMode = false
		return a, nil
	case "left", "h":
		a.filterBar.moveLeft()
		return a, nil
	case "right", "l":
		a.filterBar.moveRight()
		return a, nil
	case " ", "enter":
		a.filterBar.choose()
		return a, a.reloadTweets(false)
	}
	return a, nil
}

func (a *App) handleCategoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeLive
		a.categoryInput.Blur()
		return a, nil
	case "enter":
		a.catBar.value = strings.TrimSpace(a.categoryInput.Value())
		a.categoryInput.Blur()
		a.mode = modeLive
		a.liveCursor = 0
		return a, nil
	}

	var cmd tea.Cmd
	a.categoryInput, cmd = a.categoryInput.Update(msg)
	return a, cmd
}

func (a *App) withBottomBar(content string, hints string) string {
	bar := renderBottomBar(hints, a.width)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  lastmon")
	}

	switch a.mode {
	case modeHome:
		return a.withBottomBar(renderHomeScreen(a.width, a.height, a.updateVersion), "d dashboard  l live  q quit")
	case modeHelp:
		return a.withBottomBar(a.renderHelp(), "? close  q quit")
	case modeLive, modeCategory:
		return a.renderLive()
	default:
		return a.renderDashboard()
	}
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("lastmon")
	dim := dimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Dashboard") + "\n" +
		"  j/k, ↑/↓     Move within the focused pane\n" +
		"  tab           Switch focus between tweets and news\n" +
		"  o, enter      Open the selected link\n" +
		"  /             Search tweet text\n" +
		"  f             Select a query tag\n" +
		"  r             Refresh tweets (ignores cache)\n\n" +
		dim.Render("Live Feed") + "\n" +
		"  l             Open the live feed\n" +
		"  c             Cycle category (all/site/place/person)\n" +
		"  v             Cycle or type a filter value\n" +
		"  x             Clear the category filter\n\n" +
		dim.Render("General") + "\n" +
		"  h             Go to home screen\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := cardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
