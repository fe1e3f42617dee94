package main

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// CommandMiddlewareFunc is a custom type for ease of use.
type CommandMiddlewareFunc func(CommandHandle) CommandHandle

// CommandMiddlewares is a custom type to represent a stack of
// middleware functions used to build a single chain.
type CommandMiddlewares []CommandMiddlewareFunc

// CoreMiddleware setup the duration measurement for each command and logs its result.
func (cli *ConsoleHandler) CoreMiddleware(next CommandHandle) CommandHandle {
	return func(ctx context.Context, out io.Writer, args []string) {
		start := cli.clock.Now()
		commandID := GetValueFromContext(ctx, ContextCommandID)

		cli.logger.Info(
			"command",
			zap.String("command.id", commandID),
			zap.Strings("command.args", args),
		)

		next(ctx, out, args)
		cli.logger.Info(
			"command",
			zap.String("command.id", commandID),
			zap.Duration("command.duration", cli.clock.Now().Sub(start)),
		)
	}
}

// CommandsCounterMiddleware increments the number of handled commands statistics and add this
// new value to the command context to be used during logging as `command.number` field.
func (cli *ConsoleHandler) CommandsCounterMiddleware(next CommandHandle) CommandHandle {
	return func(ctx context.Context, out io.Writer, args []string) {
		ctx = context.WithValue(ctx, ContextCommandNumber, atomic.AddUint64(&cli.stats.called, 1))
		next(ctx, out, args)
	}
}

// CommandIDMiddleware generates and add a unique id to the command context.
func (cli *ConsoleHandler) CommandIDMiddleware(next CommandHandle) CommandHandle {
	return func(ctx context.Context, out io.Writer, args []string) {
		commandID := cli.idsHandler.Generate(CommandIDPrefix)
		ctx = context.WithValue(ctx, ContextCommandID, commandID)
		next(ctx, out, args)
	}
}

// PanicRecoveryMiddleware catches any panic during the command lifecycle and produces
// an error log for further analysis. It prints a failure message to the user.
func (cli *ConsoleHandler) PanicRecoveryMiddleware(next CommandHandle) CommandHandle {
	return func(ctx context.Context, out io.Writer, args []string) {
		recovery := func() {
			if err := recover(); err != nil {
				commandID := GetValueFromContext(ctx, ContextCommandID)
				cli.logger.Error("panic occurred", zap.String("command.id", commandID), zap.Any("error", err))
				fmt.Fprintln(out, "failed to process the command.")
			}
		}
		defer recovery()
		next(ctx, out, args)
	}
}

// Chain wraps a given CommandHandle with a list of middlewares.
// It does by starting from the last middleware from the list.
func (m *CommandMiddlewares) Chain(h CommandHandle) CommandHandle {
	if len(*m) == 0 {
		return h
	}
	lg := len(*m)
	handle := (*m)[lg-1](h)

	for i := lg - 2; i >= 0; i-- {
		handle = (*m)[i](handle)
	}

	return handle
}

// MiddlewaresStack builds the middleware stack applied to every command.
func (cli *ConsoleHandler) MiddlewaresStack() CommandMiddlewares {
	return CommandMiddlewares{
		cli.PanicRecoveryMiddleware,
		cli.CommandsCounterMiddleware,
		cli.CommandIDMiddleware,
		cli.CoreMiddleware,
	}
}

// timedContext bounds each backend bound command with the configured
// request timeout so a stuck transport cannot wedge the console.
func (cli *ConsoleHandler) timedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, cli.config.Backend.RequestTimeout+time.Second)
}
