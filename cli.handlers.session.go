package main

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Login authenticates with the backend and reports the outcome.
// Usage: login <user> <pass>
func (cli *ConsoleHandler) Login(ctx context.Context, out io.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "usage: login <user> <pass>")
		return
	}
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	if err := cli.sessions.Login(tctx, args[0], args[1]); err != nil {
		cli.reportFailure(ctx, out, "login failed", err)
		return
	}
	// landing view after login: the freshly fetched cart summary.
	fmt.Fprintf(out, "welcome %s. your cart holds %d line(s).\n", args[0], len(cli.cart.Lines()))
}

// Register creates a new account. It does not log the user in.
// Usage: register <user> <pass> <email>
func (cli *ConsoleHandler) Register(ctx context.Context, out io.Writer, args []string) {
	if len(args) != 3 {
		fmt.Fprintln(out, "usage: register <user> <pass> <email>")
		return
	}
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	if err := cli.sessions.Register(tctx, args[0], args[1], args[2]); err != nil {
		cli.reportFailure(ctx, out, "registration failed", err)
		return
	}
	fmt.Fprintln(out, "registration successful. you can now log in.")
}

// Logout ends the session. Always succeeds.
func (cli *ConsoleHandler) Logout(_ context.Context, out io.Writer, _ []string) {
	cli.sessions.Logout()
	fmt.Fprintln(out, "logged out.")
}

// WhoAmI displays the active session details.
func (cli *ConsoleHandler) WhoAmI(_ context.Context, out io.Writer, _ []string) {
	session := cli.sessions.Current()
	if !session.Valid() {
		fmt.Fprintln(out, "not logged in.")
		return
	}
	fmt.Fprintf(out, "%s <%s> roles=[%s]\n", session.Username, session.Email, strings.Join(session.Roles, ","))
}
