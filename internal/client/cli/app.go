package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/sitrack/internal/client/client"
	"github.com/dmitrijs2005/sitrack/internal/client/config"
	"github.com/dmitrijs2005/sitrack/internal/client/export"
	"github.com/dmitrijs2005/sitrack/internal/client/routes"
	"github.com/dmitrijs2005/sitrack/internal/client/services"
	"github.com/dmitrijs2005/sitrack/internal/client/session"
	"github.com/dmitrijs2005/sitrack/internal/client/store"
	"github.com/dmitrijs2005/sitrack/internal/logging"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	session  *session.Session
	registry *services.Registry
	entities map[string]entity
	reader   *bufio.Reader
	out      io.Writer
	log      logging.Logger

	// path is the page the user is on, as set by navigation.
	path string
}

// NewApp opens the local database, builds the backend client, the session
// and one store per entity. The session is not restored until Run.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	sink, err := newSink(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	api := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	storage := session.NewMetadataStorage(db, []byte(c.StorageSecret))

	a := newApp(api, storage, sink, os.Stdin, os.Stdout, log)
	a.config = c
	a.db = db
	return a, nil
}

// newApp wires an App around an existing backend client and storage.
func newApp(api client.Client, storage session.Storage, sink export.Sink, in io.Reader, out io.Writer, log logging.Logger) *App {
	if log == nil {
		log = logging.Discard()
	}
	a := &App{
		reader: bufio.NewReader(in),
		out:    out,
		log:    log,
		path:   routes.PathLanding,
	}
	a.session = session.New(api, storage, session.NavigatorFunc(a.navigate), log)
	a.registry = services.NewRegistry(store.Deps{
		Client:   api,
		Tokens:   a.session,
		Notifier: newTerminalNotifier(out),
		Log:      log,
	}, sink)
	a.entities = catalog(a.registry)
	return a
}

func newSink(ctx context.Context, c *config.Config) (export.Sink, error) {
	if c.S3.Enabled() {
		return export.NewS3Sink(ctx, c.S3)
	}
	return export.NewFileSink(c.ExportDir), nil
}

func (a *App) navigate(path string) {
	if a.path != path {
		a.path = path
		fmt.Fprintf(a.out, "-> %s\n", path)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	s := a.path
	if a.isLoggedIn() {
		s = fmt.Sprintf("%s (%s) %s", a.session.Username(), a.session.Role(), s)
	}
	return s
}

// Run restores the persisted session and blocks in the REPL until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	fmt.Fprintln(a.out, "Welcome to SITRACK admin CLI (type 'help' for commands)")
	if err := a.session.Init(ctx); err != nil {
		fmt.Fprintf(a.out, "Stored session discarded: %v\n", err)
	}
	if a.isLoggedIn() {
		a.navigate(routes.PathHome)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "close database", "error", err)
		}
	}
}
