package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// CommandHandle processes one console command with its arguments and
// writes the user facing outcome to out.
type CommandHandle func(ctx context.Context, out io.Writer, args []string)

// Statistics holds app stats displayed by the status command.
type Statistics struct {
	version  string
	runtime  string
	platform string
	called   uint64
	started  time.Time
}

// ConsoleHandler defines the console commands handler. It is the view
// layer of the storefront: it only reads store state and dispatches
// user actions, never mutates cart or session state itself.
type ConsoleHandler struct {
	logger     *zap.Logger
	config     *Config
	stats      *Statistics
	clock      Clocker
	idsHandler UIDHandler
	sessions   SessionStoreProvider
	cart       CartStoreProvider
	orders     OrderServiceProvider
	books      BookServiceProvider
}

// NewConsoleHandler provides a new instance of ConsoleHandler.
func NewConsoleHandler(logger *zap.Logger, config *Config, stats *Statistics, clock Clocker, idh UIDHandler,
	sessions SessionStoreProvider, cart CartStoreProvider, orders OrderServiceProvider, books BookServiceProvider,
) *ConsoleHandler {
	return &ConsoleHandler{
		logger:     logger,
		config:     config,
		stats:      stats,
		clock:      clock,
		idsHandler: idh,
		sessions:   sessions,
		cart:       cart,
		orders:     orders,
		books:      books,
	}
}

// Status provides basics details about the storefront client.
func (cli *ConsoleHandler) Status(ctx context.Context, out io.Writer, _ []string) {
	fmt.Fprintf(out, "bookshop storefront %s | %s %s | backend %s | up since %.0f mins | commands handled %d\n",
		cli.stats.version,
		cli.stats.runtime,
		cli.stats.platform,
		cli.config.Backend.BaseURL,
		cli.clock.Now().Sub(cli.stats.started).Minutes(),
		GetCommandNumberFromContext(ctx),
	)
	if session := cli.sessions.Current(); session.Valid() {
		fmt.Fprintf(out, "logged in as %s\n", session.Username)
	} else {
		fmt.Fprintln(out, "not logged in")
	}
}

// Help lists the available commands.
func (cli *ConsoleHandler) Help(_ context.Context, out io.Writer, _ []string) {
	fmt.Fprint(out, `available commands:
  status                              show client status
  register <user> <pass> <email>      create an account
  login <user> <pass>                 authenticate
  logout                              end the session
  whoami                              show the active session
  books                               list the catalog
  book <id>                           show one book
  cart                                show the cart and its total
  add <book-id> [qty]                 add a book to the cart
  update <line-id> <qty>              change a line quantity (0 removes)
  remove <line-id>                    remove a cart line
  clear                               empty the cart
  checkout                            place the order
  orders                              list order history
  order <id>                          show one order
  book-add <title>|<author>|<price>   add a catalog entry (admin)
  book-update <id> <title>|<author>|<price>  edit a catalog entry (admin)
  book-del <id>                       delete a catalog entry (admin)
  book-populate [query] [max]         import catalog entries (admin)
  exit                                quit
`)
}

// reportFailure logs the failing command and prints its user facing
// message. Store errors always carry a displayable message so the view
// layer never inspects transport level details.
func (cli *ConsoleHandler) reportFailure(ctx context.Context, out io.Writer, action string, err error) {
	cli.logger.Error("command failed",
		zap.String("command.id", GetValueFromContext(ctx, ContextCommandID)),
		zap.String("command.action", action),
		zap.Error(err),
	)
	fmt.Fprintf(out, "%s: %s\n", action, err)
}
