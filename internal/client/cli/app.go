package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/ordercli/internal/client/config"
	"github.com/dmitrijs2005/ordercli/internal/client/models"
	"github.com/dmitrijs2005/ordercli/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/ordercli/internal/client/repositories/transactions"
	"github.com/dmitrijs2005/ordercli/internal/client/services"
	"github.com/dmitrijs2005/ordercli/internal/filex"
	"github.com/dmitrijs2005/ordercli/internal/logging"
	"golang.org/x/term"
)

// App is the interactive client. It holds at most one Session; a nil
// session means nobody is logged in.
type App struct {
	authService     services.AuthService
	checkoutService services.CheckoutService
	logger          logging.Logger

	logsPath         string
	transactionsPath string

	reader *bufio.Reader
	out    io.Writer
	// terminalFd is the descriptor used for unechoed password input,
	// or -1 when input does not come from a terminal.
	terminalFd int

	session *models.Session
	log     logging.Logger
}

// NewApp builds an App reading from stdin and writing to stdout. The data
// directory is created if it does not exist yet.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fd = -1
	}
	return newApp(c, logger, os.Stdin, os.Stdout, fd)
}

func newApp(c *config.Config, logger logging.Logger, in io.Reader, out io.Writer, terminalFd int) (*App, error) {
	if _, err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	a := &App{
		authService:      services.NewAuthService(accounts.NewFileRepository(c.UsersPath())),
		checkoutService:  services.NewCheckoutService(transactions.NewFileRepository(c.TransactionsPath()), time.Now),
		logger:           logger,
		logsPath:         c.LogPath(),
		transactionsPath: c.TransactionsPath(),
		reader:           bufio.NewReader(in),
		out:              out,
		terminalFd:       terminalFd,
	}
	a.log = logger
	return a, nil
}

// Run shows the main menu until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.logger.Info(ctx, "ordercli started", "transactions", a.transactionsPath)
	runMenu(ctx, a, a.reader, a.out)
	if a.isLoggedIn() {
		_ = a.Logout(ctx)
	}
	a.logger.Info(ctx, "ordercli stopped")
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) prompt(text string) (string, error) {
	return getSimpleText(a.reader, text, a.out)
}
