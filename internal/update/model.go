package update

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/habitflower/internal/interaction"
	"github.com/sandeepkv93/habitflower/internal/model"
	"github.com/sandeepkv93/habitflower/internal/progress"
	"github.com/sandeepkv93/habitflower/internal/ui"
)

type Tab string

const (
	TabOverview Tab = "Overview"
	TabFriends  Tab = "Friends"
	TabSettings Tab = "Settings"
)

var tabOrder = []Tab{TabOverview, TabFriends, TabSettings}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Overview string
	Friends  string
	Settings string
	NextTab  string
	Theme    string
	Help     string
	Quit     string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Options wires the model's collaborators. Zero fields get defaults.
type Options struct {
	Catalog *model.Catalog
	History progress.HistorySource
	Colors  ui.Resolver
	Logger  *slog.Logger
	Clock   func() time.Time
	Config  RuntimeConfig
}

type Model struct {
	CurrentTab  Tab
	Scheme      ui.Scheme
	Cursor      int
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Config      RuntimeConfig
	Quitting    bool
	LastError   error

	store     *interaction.Store
	history   progress.HistorySource
	colors    ui.Resolver
	logger    *slog.Logger
	clock     func() time.Time
	summaries []progress.HabitSummary

	commandInput   textinput.Model
	helpModel      help.Model
	detailViewport viewport.Model
	friendsTable   table.Model
	activityList   list.Model
	uiDensity      int
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchTabMsg struct {
	Tab Tab
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// DispatchMsg feeds an interaction event through the store.
type DispatchMsg struct {
	Event interaction.Event
}

func NewModel() Model {
	return NewModelWithOptions(Options{Config: DefaultRuntimeConfig()})
}

func NewModelWithOptions(opts Options) Model {
	cfg := opts.Config
	if cfg.Theme == "" {
		cfg.Theme = ui.SchemeLight
	}
	if cfg.Density < 1 || cfg.Density > maxDensity {
		cfg.Density = 1
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	catalog := model.Seed(clock())
	if opts.Catalog != nil {
		catalog = *opts.Catalog
	}
	history := opts.History
	if history == nil {
		history = progress.PatternSource{}
	}
	colors := opts.Colors
	if colors == nil {
		colors = ui.DefaultPalette
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := Model{
		CurrentTab: TabOverview,
		Scheme:     cfg.Theme,
		Config:     cfg,
		Keys: GlobalKeyMap{
			Overview: "1",
			Friends:  "2",
			Settings: "3",
			NextTab:  "tab",
			Theme:    "t",
			Help:     "?",
			Quit:     "q",
		},
		store:     interaction.NewStore(catalog),
		history:   history,
		colors:    colors,
		logger:    logger,
		clock:     clock,
		uiDensity: cfg.Density,
	}
	m.store.SetShowCompleted(cfg.ShowCompleted)
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

// State returns a snapshot of the interaction state.
func (m Model) State() model.InteractionState {
	return m.store.State()
}

func (m Model) Catalog() model.Catalog {
	return m.store.Catalog()
}

// Summaries are the habit card values derived after the last update.
func (m Model) Summaries() []progress.HabitSummary {
	return m.summaries
}
