// Package nav defines the dashboard's navigation entries and the rules
// for which entries a given user can see, which entry is active, and
// whether an unauthenticated visitor may view a page at all.
package nav

import "github.com/fennwald/tracker-api/internal/entities"

// LoginPath is where gated pages send unauthenticated visitors.
const LoginPath = "/login"

// Entry is a single navigation destination.
type Entry struct {
	Label     string
	Path      string
	AdminOnly bool
}

// DefaultEntries returns the navigation in display order. Exactly one
// entry is restricted to admins.
func DefaultEntries() []Entry {
	return []Entry{
		{Label: "Dashboard", Path: "/dashboard"},
		{Label: "Parties", Path: "/parties"},
		{Label: "Encounters", Path: "/encounters"},
		{Label: "Settings", Path: "/settings"},
		{Label: "Admin", Path: "/admin", AdminOnly: true},
	}
}

// Visible filters entries for the given user, preserving order.
// Admin-only entries are dropped for non-admins and for a nil user.
func Visible(entries []Entry, user *entities.User) []Entry {
	visible := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.AdminOnly && (user == nil || !user.Admin) {
			continue
		}
		visible = append(visible, e)
	}
	return visible
}

// IsActive reports whether the entry matches the current path. Matching
// is exact; "/parties" is not active on "/parties/abc".
func IsActive(e Entry, currentPath string) bool {
	return e.Path == currentPath
}

// Decision is the outcome of gating a page view.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Gate decides whether an authenticated-only page may render. When the
// visitor is not authenticated the decision carries the login path.
func Gate(authenticated bool, loginPath string) Decision {
	if !authenticated {
		return Decision{RedirectTo: loginPath}
	}
	return Decision{Allow: true}
}
