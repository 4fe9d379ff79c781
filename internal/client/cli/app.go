package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/dmitrijs2005/medreminder/internal/client/client"
	"github.com/dmitrijs2005/medreminder/internal/client/config"
	"github.com/dmitrijs2005/medreminder/internal/client/edit"
	"github.com/dmitrijs2005/medreminder/internal/client/reminders"
	"github.com/dmitrijs2005/medreminder/internal/client/services"
	"github.com/dmitrijs2005/medreminder/internal/client/session"
	"github.com/dmitrijs2005/medreminder/internal/logging"
)

type App struct {
	config          *config.Config
	authService     services.AuthService
	reminderService services.ReminderService
	log             logging.Logger
	ui              *Formatter

	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
	inputFd int
}

// NewApp opens the local database, restores the stored session and wires
// the services. Schedules are entered and shown in the local time zone.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Discard()
	}

	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DBPath, "err", err)
		return nil, err
	}

	holder := session.NewHolder(db)
	if err := holder.Init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout, holder)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	loc := time.Local
	list := reminders.NewList()
	ed := edit.NewSession(loc)

	return &App{
		config:          c,
		authService:     services.NewAuthService(apiClient, holder, list, ed, log),
		reminderService: services.NewReminderService(apiClient, list, ed, log),
		log:             log,
		ui:              NewFormatter(c.Colored, loc),
		db:              db,
		reader:          bufio.NewReader(in),
		out:             out,
		inputFd:         terminalFd(in),
	}, nil
}

// terminalFd returns the descriptor of in if it is an interactive terminal.
func terminalFd(in io.Reader) int {
	f, ok := in.(*os.File)
	if !ok {
		return noTerminal
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return noTerminal
	}
	return fd
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.println(a.ui.Info("Welcome to medreminder (type 'help' for commands)"))
	if a.isLoggedIn() {
		a.println(a.ui.Info("Logged in as " + a.authService.User()))
		_ = a.List(ctx)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsLoggedIn()
}

func (a *App) getStatus() string {
	s := ""
	if a.isLoggedIn() {
		s = a.authService.User()
		if s == "" {
			s = "logged in"
		}
	}
	if sc, ok := a.reminderService.Editing(); ok {
		if s != "" {
			s += ", "
		}
		s += "editing " + sc.ID
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) fail(err error, fallback string) error {
	a.println(a.ui.Error(services.Message(err, fallback)))
	return err
}
