package main

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// SetupCommands wires each console command name to its wrapped handler.
func (cli *ConsoleHandler) SetupCommands(m *CommandMiddlewares) map[string]CommandHandle {
	return map[string]CommandHandle{
		"status":        m.Chain(cli.Status),
		"help":          m.Chain(cli.Help),
		"register":      m.Chain(cli.Register),
		"login":         m.Chain(cli.Login),
		"logout":        m.Chain(cli.Logout),
		"whoami":        m.Chain(cli.WhoAmI),
		"books":         m.Chain(cli.ListBooks),
		"book":          m.Chain(cli.ShowBook),
		"cart":          m.Chain(cli.ShowCart),
		"add":           m.Chain(cli.AddToCart),
		"update":        m.Chain(cli.UpdateQuantity),
		"remove":        m.Chain(cli.RemoveLine),
		"clear":         m.Chain(cli.ClearCart),
		"checkout":      m.Chain(cli.Checkout),
		"orders":        m.Chain(cli.ListOrders),
		"order":         m.Chain(cli.ShowOrder),
		"book-add":      m.Chain(cli.AddBook),
		"book-update":   m.Chain(cli.UpdateBook),
		"book-del":      m.Chain(cli.DeleteBook),
		"book-populate": m.Chain(cli.PopulateBooks),
	}
}

// Dispatch parses one console line and runs the matching command.
// It reports whether the console should keep running.
func Dispatch(ctx context.Context, out io.Writer, commands map[string]CommandHandle, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	name := strings.ToLower(fields[0])
	if name == "exit" || name == "quit" {
		return false
	}
	handle, ok := commands[name]
	if !ok {
		fmt.Fprintf(out, "unknown command %q. type `help` for the list.\n", name)
		return true
	}
	handle(ctx, out, fields[1:])
	return true
}
