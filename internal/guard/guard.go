// Package guard decides which screen a user may see.
//
// Routes are slash paths: "/", "/login", "/register", "/onboarding", and
// the role areas "/team/..." and "/talent/...". Decide is pure; the TUI
// calls it on every navigation and follows the redirect.
package guard

import (
	"strings"

	"nathanbeddoewebdev/hirectl/internal/domain"
)

// Route paths.
const (
	RouteHome       = "/"
	RouteLogin      = "/login"
	RouteRegister   = "/register"
	RouteOnboarding = "/onboarding"
	RouteTeam       = "/team"
	RouteTalent     = "/talent"
	RouteTheme      = "/settings/theme"
)

// Session is the slice of auth state the guard needs.
type Session struct {
	Authenticated          bool
	Role                   domain.Role
	HasCompletedOnboarding bool
}

// Decision is the guard's verdict for a route. When Allow is false,
// Redirect names the route to go to instead.
type Decision struct {
	Allow    bool
	Redirect string
}

func allow() Decision                  { return Decision{Allow: true} }
func redirect(to string) Decision      { return Decision{Redirect: to} }
func isUnder(path, prefix string) bool { return path == prefix || strings.HasPrefix(path, prefix+"/") }

// Clean normalises a route: leading slash, no trailing slash, no query.
func Clean(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// IsPublic reports whether path is reachable without signing in.
func IsPublic(path string) bool {
	switch Clean(path) {
	case RouteHome, RouteLogin, RouteRegister:
		return true
	}
	return false
}

// isAuthPage reports whether path is a sign-in page a signed-in user
// should skip.
func isAuthPage(path string) bool {
	return path == RouteLogin || path == RouteRegister
}

// Area returns the role area path falls under: RouteTeam, RouteTalent,
// or "" for everything else.
func Area(path string) string {
	path = Clean(path)
	switch {
	case isUnder(path, RouteTeam):
		return RouteTeam
	case isUnder(path, RouteTalent):
		return RouteTalent
	}
	return ""
}

// Home returns the dashboard root for role. Unknown roles go to "/".
func Home(role domain.Role) string {
	switch role {
	case domain.RoleEmployer:
		return RouteTeam
	case domain.RoleTalent:
		return RouteTalent
	}
	return RouteHome
}

// Decide returns whether s may view path.
func Decide(path string, s Session) Decision {
	path = Clean(path)

	if !s.Authenticated {
		if IsPublic(path) {
			return allow()
		}
		return redirect(RouteLogin)
	}

	if isAuthPage(path) {
		return redirect(landing(s))
	}

	if needsOnboarding(s) {
		if path == RouteOnboarding || IsPublic(path) {
			return allow()
		}
		return redirect(RouteOnboarding)
	}

	switch {
	case isUnder(path, RouteTeam) && s.Role != domain.RoleEmployer:
		return redirect(Home(s.Role))
	case isUnder(path, RouteTalent) && s.Role != domain.RoleTalent:
		return redirect(Home(s.Role))
	case path == RouteOnboarding && !needsOnboarding(s):
		return redirect(Home(s.Role))
	}
	return allow()
}

// PostLoginRoute is where to go after signing in. Onboarding overrides
// the requested route; otherwise the requested route is honoured when
// the guard allows it, falling back to the role's home.
func PostLoginRoute(s Session, requested string) string {
	if needsOnboarding(s) {
		return RouteOnboarding
	}
	if requested == "" {
		return Home(s.Role)
	}
	requested = Clean(requested)
	if IsPublic(requested) {
		return Home(s.Role)
	}
	if d := Decide(requested, s); !d.Allow {
		return d.Redirect
	}
	return requested
}

// Resolve follows redirects from path until a route is allowed. It stops
// after a few hops so a misconfigured rule cannot loop.
func Resolve(path string, s Session) string {
	path = Clean(path)
	for range 4 {
		d := Decide(path, s)
		if d.Allow {
			return path
		}
		path = d.Redirect
	}
	return path
}

func landing(s Session) string {
	if needsOnboarding(s) {
		return RouteOnboarding
	}
	return Home(s.Role)
}

// Only talent users go through the onboarding wizard.
func needsOnboarding(s Session) bool {
	return s.Role == domain.RoleTalent && !s.HasCompletedOnboarding
}
