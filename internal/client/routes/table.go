package routes

import (
	"net/url"
	"strings"
)

const (
	PathLanding      = "/"
	PathLogin        = "/login"
	PathHome         = "/home"
	PathUnauthorized = "/unauthorized"
)

var (
	management = []string{RoleAdmin, RoleSupervisor, RoleManager}
	operations = []string{RoleAdmin, RoleSupervisor, RoleManager, RoleOperasional}
	workshop   = []string{RoleAdmin, RoleSupervisor, RoleMekanik}
)

// Table is the route list of the client.
var Table = []Route{
	{Path: PathLanding, Name: "landing", Public: true},
	{Path: PathLogin, Name: "login"},
	{Path: PathUnauthorized, Name: "unauthorized", Public: true},
	{Path: PathHome, Name: "home", RequiresAuth: true},
	{Path: "/notifications", Name: "notifications", RequiresAuth: true},

	{Path: "/trucks", Name: "trucks", RequiresAuth: true, Authorize: operations},
	{Path: "/trucks/:id", Name: "truck-detail", RequiresAuth: true, Authorize: operations},
	{Path: "/chassis", Name: "chassis", RequiresAuth: true, Authorize: operations},
	{Path: "/chassis/:id", Name: "chassis-detail", RequiresAuth: true, Authorize: operations},
	{Path: "/drivers", Name: "drivers", RequiresAuth: true, Authorize: operations},
	{Path: "/drivers/:id", Name: "driver-detail", RequiresAuth: true, Authorize: operations},
	{Path: "/customers", Name: "customers", RequiresAuth: true, Authorize: management},
	{Path: "/customers/:id", Name: "customer-detail", RequiresAuth: true, Authorize: management},
	{Path: "/orders", Name: "orders", RequiresAuth: true, Authorize: operations},
	{Path: "/orders/:id", Name: "order-detail", RequiresAuth: true, Authorize: operations},
	{Path: "/spj", Name: "spj", RequiresAuth: true, Authorize: operations},
	{Path: "/spj/:id", Name: "spj-detail", RequiresAuth: true, Authorize: operations},
	{Path: "/komisi", Name: "komisi", RequiresAuth: true, Authorize: management},
	{Path: "/komisi/:id", Name: "komisi-detail", RequiresAuth: true, Authorize: management},
	{Path: "/assets", Name: "assets", RequiresAuth: true, Authorize: workshop},
	{Path: "/assets/:id", Name: "asset-detail", RequiresAuth: true, Authorize: workshop},
	{Path: "/request-assets", Name: "request-assets", RequiresAuth: true, Authorize: workshop},
	{Path: "/request-assets/:id", Name: "request-asset-detail", RequiresAuth: true, Authorize: workshop},
	{Path: "/report-truck", Name: "report-truck", RequiresAuth: true, Authorize: workshop},
	{Path: "/reports", Name: "reports", RequiresAuth: true, Authorize: management},
	{Path: "/users", Name: "users", RequiresAuth: true, Authorize: []string{RoleAdmin}},
}

// Match finds the route for target, which may carry a query string. Path
// segments written as ":name" in the table bind to the matching segment of
// target; query parameters are merged into the returned params.
func Match(target string) (Route, map[string]string, bool) {
	u, err := url.Parse(target)
	if err != nil {
		return Route{}, nil, false
	}

	path := u.Path
	if path == "" {
		path = PathLanding
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}

	for _, r := range Table {
		params, ok := matchPath(r.Path, path)
		if !ok {
			continue
		}
		for k, v := range u.Query() {
			if _, taken := params[k]; !taken && len(v) > 0 {
				params[k] = v[0]
			}
		}
		return r, params, true
	}
	return Route{}, nil, false
}

func matchPath(pattern, path string) (map[string]string, bool) {
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	ts := strings.Split(strings.Trim(path, "/"), "/")
	if len(ps) != len(ts) {
		return nil, false
	}

	params := map[string]string{}
	for i, p := range ps {
		if name, ok := strings.CutPrefix(p, ":"); ok {
			if ts[i] == "" {
				return nil, false
			}
			params[name] = ts[i]
			continue
		}
		if p != ts[i] {
			return nil, false
		}
	}
	return params, true
}
