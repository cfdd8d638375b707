package demo

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/navsync/containers"
	"github.com/jask/navsync/core"
	"github.com/jask/navsync/core/modal"
	"github.com/jask/navsync/core/stack"
	"github.com/jask/navsync/internal/config"
	"github.com/jask/navsync/navigation"
	"github.com/jask/navsync/widgets"
)

// App is the root bubbletea model: a tab bar whose home tab is a navigator,
// all under a modal host. Each container is driven by its sync handler.
type App struct {
	store *Store
	loop  *containers.Loop
	cfg   config.NavigationConfig
	keys  keyMap

	width, height int

	// Each managed container owns its handler.
	nav  *containers.ManagedNavigator[Route]
	tabs *containers.ManagedTabBar[Tab]
	host *containers.ManagedModalHost[Dialog]
}

// New wires the demo. observer may be nil.
func New(cfg config.NavigationConfig, log zerolog.Logger, observer navigation.Observer) *App {
	keys := containers.DefaultKeyMap()
	a := &App{
		store: core.NewStore(NewState(), Reduce),
		loop:  &containers.Loop{},
		cfg:   cfg,
		keys:  defaultKeyMap(),
	}
	opts := handlerOptions(cfg, log, observer)
	// The home tab is the navigator, so it has to exist before the tab bar
	// syncs its screens.
	a.nav = containers.NewManagedNavigator[Route](homeScope(a.store), navigation.ScreenFactoryFunc[Route, containers.Screen](a.routeScreen), a.loop, keys, opts...)
	a.tabs = containers.NewManagedTabBar[Tab](tabScope(a.store), navigation.ScreenFactoryFunc[Tab, containers.Screen](a.tabScreen), a.loop, keys, opts...)
	a.host = containers.NewManagedModalHost[Dialog](a.tabs, modalScope(a.store), navigation.ScreenFactoryFunc[Dialog, containers.Screen](a.dialogScreen), a.loop, keys, opts...)
	return a
}

func handlerOptions(cfg config.NavigationConfig, log zerolog.Logger, observer navigation.Observer) []navigation.Option {
	opts := []navigation.Option{
		navigation.WithAnimations(cfg.Animations),
		navigation.WithDebug(cfg.Debug),
		navigation.WithLogger(log),
		navigation.WithWindowWait(cfg.WindowPollInterval, cfg.MaxWindowWait),
	}
	if observer != nil {
		opts = append(opts, navigation.WithObserver(observer))
	}
	return opts
}

func (a *App) routeScreen(r Route) containers.Screen {
	return &routeScreen{route: r}
}

func (a *App) tabScreen(t Tab) containers.Screen {
	switch t {
	case TabHome:
		return a.nav
	case TabInbox:
		return &inboxScreen{messages: []string{"welcome to navsync", "press g to jump between tabs"}}
	default:
		return &settingsScreen{cfg: a.cfg}
	}
}

func (a *App) dialogScreen(d Dialog) containers.Screen {
	switch d {
	case DialogJump:
		return newJumpScreen()
	case DialogNotice:
		return &messageScreen{title: "notice", body: "Alerts can only be closed from inside."}
	default:
		return &messageScreen{title: "about", body: "navsync keeps containers in step with navigation state."}
	}
}

// State returns the current navigation state.
func (a *App) State() State {
	return a.store.State()
}

// Close stops the handlers observing the store.
func (a *App) Close() {
	a.nav.Close()
	a.tabs.Close()
	a.host.Close()
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.loop.Handle(msg) {
		return a, a.loop.Flush()
	}
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case actionMsg:
		a.store.Send(msg.action)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		cmd = a.host.Update(tea.WindowSizeMsg{Width: msg.Width, Height: a.hostHeight()})
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if _, presented := a.host.Presented(); !presented {
			if c, handled := a.globalKey(msg); handled {
				return a, tea.Batch(c, a.loop.Flush())
			}
		}
		cmd = a.host.Update(msg)
	default:
		cmd = a.host.Update(msg)
	}
	return a, tea.Batch(cmd, a.loop.Flush())
}

func (a *App) globalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, a.keys.PopRoot):
		a.store.Send(Action{Home: stack.PopRoot[Route]()})
	case key.Matches(msg, a.keys.Sheet):
		a.store.Send(Action{Modal: modal.PresentSheet(DialogAbout)})
	case key.Matches(msg, a.keys.FullScreen):
		a.store.Send(Action{Modal: modal.PresentFullScreen(DialogAbout)})
	case key.Matches(msg, a.keys.Alert):
		a.store.Send(Action{Modal: modal.PresentAlert(DialogNotice)})
	case key.Matches(msg, a.keys.GoTo):
		a.store.Send(Action{Modal: modal.PresentSheet(DialogJump)})
	default:
		return nil, false
	}
	return nil, true
}

// hostHeight leaves the last line to the footer when there is room for both.
func (a *App) hostHeight() int {
	if a.height > 1 {
		return a.height - 1
	}
	return a.height
}

func (a *App) View() string {
	if !a.host.Attached() {
		return "starting…"
	}
	if a.hostHeight() == a.height {
		return a.host.Render(a.width, a.height)
	}
	_, shown := a.host.Presented()
	footer := widgets.Footer{Bindings: a.keys.help(shown, a.host.Style().Interactive())}
	return widgets.VStack{
		Header:       widgets.Func(a.host.Render),
		HeaderHeight: a.hostHeight(),
		Body:         footer,
	}.Render(a.width, a.height)
}
