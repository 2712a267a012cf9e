// Package tui renders the encounter tracker dashboard in the terminal:
// a tab bar driven by the navigation entries, a login screen gating
// everything behind authentication, and one view per destination over
// the shared party store.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fennwald/tracker-api/internal/auth"
	"github.com/fennwald/tracker-api/internal/nav"
	"github.com/fennwald/tracker-api/internal/pkg/idgen"
	"github.com/fennwald/tracker-api/internal/repositories/snapshot"
	"github.com/fennwald/tracker-api/internal/store/party"
)

// snapshotLoadedMsg carries the persisted dashboard state at startup.
type snapshotLoadedMsg struct {
	out *snapshot.LoadOutput
	err error
}

// persistedMsg reports the outcome of writing the snapshot.
type persistedMsg struct {
	err error
}

// mutatedMsg signals that a view changed store state and the snapshot
// should be written.
type mutatedMsg struct{}

// loggedOutMsg signals that the session was torn down.
type loggedOutMsg struct{}

// Config holds the dependencies for the dashboard.
type Config struct {
	Store     *party.Store
	Gateway   *auth.Gateway
	Snapshots snapshot.Repository
	IDs       idgen.Generator
}

// App is the root Bubbletea model.
type App struct {
	store     *party.Store
	gateway   *auth.Gateway
	snapshots snapshot.Repository

	entries []nav.Entry
	path    string

	login     loginModel
	dashboard dashboardModel
	parties   partiesModel
	encounter encounterModel
	settings  settingsModel
	admin     adminModel

	width  int
	height int
	status string
}

// NewApp creates the dashboard over the given dependencies.
func NewApp(cfg Config) App {
	return App{
		store:     cfg.Store,
		gateway:   cfg.Gateway,
		snapshots: cfg.Snapshots,
		entries:   nav.DefaultEntries(),
		path:      "/dashboard",
		login:     newLoginModel(cfg.Gateway),
		dashboard: newDashboardModel(cfg.Store),
		parties:   newPartiesModel(cfg.Store, cfg.IDs),
		encounter: newEncounterModel(cfg.Store, cfg.IDs),
		settings:  newSettingsModel(cfg.Gateway),
		admin:     newAdminModel(cfg.Gateway),
	}
}

func (a App) Init() tea.Cmd {
	return a.loadSnapshot()
}

func (a App) loadSnapshot() tea.Cmd {
	repo := a.snapshots
	store := a.store
	store.SetLoading(true)
	return func() tea.Msg {
		out, err := repo.Load(context.Background(), snapshot.LoadInput{})
		return snapshotLoadedMsg{out: out, err: err}
	}
}

func (a App) persist() tea.Cmd {
	repo := a.snapshots
	snap := a.store.Snapshot()
	return func() tea.Msg {
		_, err := repo.Save(context.Background(), snapshot.SaveInput{Snapshot: snap})
		return persistedMsg{err: err}
	}
}

func (a App) logout() tea.Cmd {
	gw := a.gateway
	return func() tea.Msg {
		gw.Logout(context.Background())
		return loggedOutMsg{}
	}
}

// visibleEntries is the nav filtered for the current session user.
func (a App) visibleEntries() []nav.Entry {
	return nav.Visible(a.entries, a.gateway.Session().User())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case snapshotLoadedMsg:
		a.store.SetLoading(false)
		if msg.err != nil {
			a.store.SetErr(msg.err)
			return a, nil
		}
		a.store.SetErr(nil)
		if msg.out.Found {
			a.store.Restore(msg.out.Snapshot)
		}
		return a, nil

	case mutatedMsg:
		return a, a.persist()

	case persistedMsg:
		if msg.err != nil {
			a.status = "save failed: " + msg.err.Error()
		}
		return a, nil

	case loginDoneMsg:
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		return a, cmd

	case loggedOutMsg:
		a.path = "/dashboard"
		a.login = newLoginModel(a.gateway)
		return a, nil

	case tea.KeyMsg:
		a.status = ""

		// Unauthenticated visitors only ever see the login screen.
		if gate := nav.Gate(a.gateway.Session().Authenticated(), nav.LoginPath); !gate.Allow {
			if msg.String() == "ctrl+c" {
				return a, tea.Quit
			}
			var cmd tea.Cmd
			a.login, cmd = a.login.Update(msg)
			return a, cmd
		}

		visible := a.visibleEntries()
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "L":
			return a, a.logout()
		case "1", "2", "3", "4", "5":
			idx := int(key[0] - '1')
			if idx < len(visible) && a.path != visible[idx].Path {
				a.path = visible[idx].Path
			}
			return a, nil
		}
	}

	if gate := nav.Gate(a.gateway.Session().Authenticated(), nav.LoginPath); !gate.Allow {
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.path {
	case "/dashboard":
		a.dashboard, cmd = a.dashboard.Update(msg)
	case "/parties":
		a.parties, cmd = a.parties.Update(msg)
	case "/encounters":
		a.encounter, cmd = a.encounter.Update(msg)
	case "/settings":
		a.settings, cmd = a.settings.Update(msg)
	case "/admin":
		a.admin, cmd = a.admin.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	header := titleStyle.Render("ENCOUNTER TRACKER")
	if user := a.gateway.Session().User(); user != nil {
		line := user.Email
		if user.Admin {
			line += " " + adminTagStyle.Render("[admin]")
		}
		header += "  " + metaStyle.Render(line)
	}

	if gate := nav.Gate(a.gateway.Session().Authenticated(), nav.LoginPath); !gate.Allow {
		return header + "\n\n" + a.login.View()
	}

	// Tab bar from the filtered navigation, numbered for hotkeys.
	var tabs []string
	for i, e := range a.visibleEntries() {
		key := fmt.Sprintf("%d", i+1)
		if nav.IsActive(e, a.path) {
			tabs = append(tabs, accentStyle.Render(key)+" "+selectedStyle.Underline(true).Render(e.Label))
		} else {
			tabs = append(tabs, metaStyle.Render(key)+" "+dimStyle.Render(e.Label))
		}
	}
	tabBar := " " + strings.Join(tabs, "   ")

	var body, help string
	switch a.path {
	case "/dashboard":
		body = a.dashboard.View()
		help = " " + helpEntry("1-5", "tabs") + "  " + helpEntry("L", "logout") + "  " + helpEntry("q", "quit")
	case "/parties":
		body = a.parties.View()
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "activate") + "  " + helpEntry("n", "new") + "  " + helpEntry("x", "delete") + "  " + helpEntry("q", "quit")
	case "/encounters":
		body = a.encounter.View()
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("d/D", "damage") + "  " + helpEntry("h/H", "heal") + "  " + helpEntry("a", "add") + "  " + helpEntry("x", "remove") + "  " + helpEntry("q", "quit")
	case "/settings":
		body = a.settings.View()
		help = " " + helpEntry("1-5", "tabs") + "  " + helpEntry("L", "logout") + "  " + helpEntry("q", "quit")
	case "/admin":
		body = a.admin.View()
		help = " " + helpEntry("1-5", "tabs") + "  " + helpEntry("q", "quit")
	}

	status := ""
	if a.status != "" {
		status = " " + errorStyle.Render(a.status)
	}

	if a.height > 0 {
		chrome := 5 // header + blank + tabs + status + help
		body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")
	}

	return fmt.Sprintf("%s\n\n%s\n%s\n%s\n%s", header, tabBar, body, status, help)
}
