package routes

import "slices"

// Route describes one navigable view.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
	// Authorize restricts the route to these roles. Empty means any
	// authenticated identity.
	Authorize []string
	Public    bool
}

// DecisionKind is the outcome of Authorize.
type DecisionKind int

const (
	Allow DecisionKind = iota
	RedirectLogin
	RedirectHome
	RedirectUnauthorized
)

func (k DecisionKind) String() string {
	switch k {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	case RedirectUnauthorized:
		return "redirect-unauthorized"
	default:
		return "unknown"
	}
}

// Decision pairs the outcome with the path to go to instead.
type Decision struct {
	Kind     DecisionKind
	Redirect string
}

// Allowed reports whether navigation may proceed.
func (d Decision) Allowed() bool { return d.Kind == Allow }

// Authorize decides whether a session holding token and role may open r.
// Checks run in order: missing token, login route while signed in, role
// allow-list. Public routes skip the token and role checks.
func Authorize(r Route, token, role string) Decision {
	if r.RequiresAuth && !r.Public && token == "" {
		return Decision{Kind: RedirectLogin, Redirect: PathLogin}
	}

	if r.Path == PathLogin && token != "" {
		return Decision{Kind: RedirectHome, Redirect: PathHome}
	}

	if len(r.Authorize) > 0 && !r.Public {
		if role == "" || !slices.Contains(r.Authorize, role) {
			return Decision{Kind: RedirectUnauthorized, Redirect: PathUnauthorized}
		}
	}

	return Decision{Kind: Allow}
}
