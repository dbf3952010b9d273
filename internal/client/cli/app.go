package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/easypost-cli/internal/client/client"
	"github.com/dmitrijs2005/easypost-cli/internal/client/labels"
	"github.com/dmitrijs2005/easypost-cli/internal/client/ledger"
	"github.com/dmitrijs2005/easypost-cli/internal/client/session"
	"github.com/dmitrijs2005/easypost-cli/internal/logging"
)

const (
	shipmentPageSize = 10
	addressPageSize  = 5
	shipmentWindow   = 30 * 24 * time.Hour
	prompt           = "> "
)

// Deps are the collaborators of App. Ledger and Archiver are optional.
type Deps struct {
	Client   client.ShippingClient
	Ledger   ledger.Repository
	Archiver labels.Archiver
	Logger   logging.Logger
}

// App runs the menu for one session.
type App struct {
	*Console
	session  session.Session
	client   client.ShippingClient
	ledger   ledger.Repository
	archiver labels.Archiver
	logger   logging.Logger
	now      func() time.Time
}

// NewApp binds a bootstrapped session to a console and the API.
func NewApp(s session.Session, c *Console, d Deps) *App {
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	return &App{
		Console:  c,
		session:  s,
		client:   d.Client,
		ledger:   d.Ledger,
		archiver: d.Archiver,
		logger:   d.Logger.With("mode", s.Mode.String()),
		now:      time.Now,
	}
}

// Run shows the main menu until the user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.p.SetProd(a.session.Mode.IsProd())
	return runMenu(ctx, a, a.Console, a.mode(), a.logger)
}

func (a *App) mode() string {
	return a.session.Mode.String()
}

// line prints a titled block tagged with the session mode.
func (a *App) line(title string, lines ...string) {
	a.p.Line(a.mode(), title, lines...)
}
