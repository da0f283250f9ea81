package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nisaljde/VetPulzNext/internal/auth"
	"github.com/Nisaljde/VetPulzNext/internal/config"
	"github.com/Nisaljde/VetPulzNext/internal/notify"
	"github.com/Nisaljde/VetPulzNext/internal/prefs"
	"github.com/Nisaljde/VetPulzNext/internal/store"
)

// View identifies the active screen.
type View int

const (
	ViewLogin View = iota
	ViewClients
	ViewRegister
	ViewAppointments
	ViewQueue
)

// Options configures the UI.
type Options struct {
	Store     *store.Store
	Config    *config.Config
	Prefs     prefs.Prefs
	PrefsPath string
}

type tickMsg time.Time

type toastExpireMsg struct{ id string }

// Model is the root Bubble Tea model.
type Model struct {
	store           *store.Store
	cfg             *config.Config
	prefsPath       string
	defaultLanguage string

	theme       Theme
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool

	user   *auth.User
	toasts *notify.Feed

	login   loginState
	clients clientsState
	reg     *registerState
	appts   apptState
	queue   queueState

	showHelp bool
}

// New creates the root model.
func New(opts Options) Model {
	m := Model{
		store:           opts.Store,
		cfg:             opts.Config,
		prefsPath:       opts.PrefsPath,
		defaultLanguage: opts.Prefs.PreferredLanguage,
		theme:           GetTheme(opts.Prefs.Theme),
		keys:            newKeyMap(),
		currentView:     ViewLogin,
		toasts:          notify.NewFeed(5),
		login:           newLoginState(),
		clients:         newClientsState(),
		appts:           newApptState(time.Now()),
	}
	m.queue.items = buildQueue(m.store)
	m.reloadClients()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.cfg.QueueTick), textinput.Blink)
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func expireToastCmd(id string) tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return toastExpireMsg{id: id}
	})
}

// toast pushes a notification and schedules its expiry.
func (m Model) toast(title, description string, destructive bool) (Model, tea.Cmd) {
	sev := notify.SeverityNormal
	if destructive {
		sev = notify.SeverityDestructive
	}
	t := notify.New(title, description, sev)
	m.toasts.Push(t)
	return m, expireToastCmd(t.ID)
}

func keyMatches(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		advanceQueue(m.queue.items)
		return m, tickCmd(m.cfg.QueueTick)

	case toastExpireMsg:
		m.toasts.Dismiss(msg.id)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even inside text entry.
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.currentView == ViewLogin {
		return m.handleLoginKey(msg)
	}
	if m.currentView == ViewRegister {
		return m.handleRegisterKey(msg)
	}

	// Global keys apply outside text-entry contexts.
	capturing := m.currentView == ViewClients &&
		(m.clients.search.Focused() || m.clients.confirm != nil)
	if !capturing {
		switch {
		case keyMatches(msg, m.keys.Quit):
			return m, tea.Quit
		case keyMatches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case keyMatches(msg, m.keys.Theme):
			return m.cycleTheme()
		case keyMatches(msg, m.keys.NextView):
			m.currentView = nextView(m.currentView)
			return m, nil
		case keyMatches(msg, m.keys.Clients):
			m.currentView = ViewClients
			m.reloadClients()
			return m, nil
		case keyMatches(msg, m.keys.Calendar):
			m.currentView = ViewAppointments
			return m, nil
		case keyMatches(msg, m.keys.WaitingRm):
			m.currentView = ViewQueue
			return m, nil
		}
	}

	switch m.currentView {
	case ViewClients:
		return m.handleClientsKey(msg)
	case ViewAppointments:
		return m.handleApptKey(msg)
	case ViewQueue:
		return m.handleQueueKey(msg)
	}
	return m, nil
}

func nextView(v View) View {
	switch v {
	case ViewClients:
		return ViewAppointments
	case ViewAppointments:
		return ViewQueue
	default:
		return ViewClients
	}
}

// cycleTheme switches to the next theme and persists the choice.
// A failed save is not worth interrupting the user over.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	name := NextTheme(m.theme.Name)
	m.theme = GetTheme(name)
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:             name,
		PreferredLanguage: m.defaultLanguage,
	})
	return m.toast("Theme", name, false)
}

func (m Model) View() string {
	if m.currentView == ViewLogin {
		return m.renderLogin()
	}
	if !m.ready {
		return "loading..."
	}

	contentHeight := m.height - 3
	var content string
	switch m.currentView {
	case ViewClients:
		content = m.renderClients(contentHeight)
	case ViewRegister:
		content = m.renderRegister(contentHeight)
	case ViewAppointments:
		content = m.renderAppointments(contentHeight)
	case ViewQueue:
		content = m.renderQueue(contentHeight)
	}
	if m.showHelp {
		content = m.renderHelp(content)
	}

	return m.renderHeader() + "\n" +
		m.renderCommandBar() + "\n" +
		content + "\n" +
		m.renderStatusBar()
}

// Run starts the UI and blocks until the user quits or ctx is
// canceled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
