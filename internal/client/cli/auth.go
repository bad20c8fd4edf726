package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sitrack/internal/client/routes"
	"github.com/dmitrijs2005/sitrack/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login authenticates with the username from args, prompting for it when
// absent, and a password read without echo. The password is wiped before
// returning. A failed login leaves the current session as it was.
func (a *App) Login(ctx context.Context, args []string) error {
	var username string
	if len(args) > 0 {
		username = args[0]
	} else {
		u, err := getSimpleText(a.reader, "Username", a.out)
		if err != nil {
			return err
		}
		username = u
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, username, string(password)); err != nil {
		return fmt.Errorf("login gagal: %w", err)
	}
	fmt.Fprintf(a.out, "Selamat datang, %s\n", a.session.Username())
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

func (a *App) Whoami() error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	role := a.session.Role()
	if role == "" {
		role = "-"
	}
	fmt.Fprintf(a.out, "%s (role: %s)\n", a.session.Username(), role)
	return nil
}

// Open navigates to a page. A denied navigation follows the redirect the
// route guard decided on.
func (a *App) Open(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: open <path>", errUsage)
	}

	r, params, ok := routes.Match(args[0])
	if !ok {
		return fmt.Errorf("unknown page %q", args[0])
	}

	d := routes.Authorize(r, a.session.Token(), a.session.Role())
	if !d.Allowed() {
		a.explain(d)
		a.navigate(d.Redirect)
		return nil
	}

	a.navigate(args[0])
	if id := params["id"]; id != "" {
		fmt.Fprintf(a.out, "%s %s\n", r.Name, id)
	}
	return nil
}

// guard reports whether the current session may use the page at path and
// prints the reason when it may not.
func (a *App) guard(path string) bool {
	r, _, ok := routes.Match(path)
	if !ok {
		return true
	}
	d := routes.Authorize(r, a.session.Token(), a.session.Role())
	if d.Allowed() {
		return true
	}
	a.explain(d)
	return false
}

func (a *App) explain(d routes.Decision) {
	switch d.Kind {
	case routes.RedirectLogin:
		fmt.Fprintln(a.out, "Silakan login terlebih dahulu")
	case routes.RedirectHome:
		fmt.Fprintln(a.out, "Anda sudah login")
	case routes.RedirectUnauthorized:
		fmt.Fprintf(a.out, "Akses ditolak untuk role %q\n", a.session.Role())
	}
}
