package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
)

// ListOrders displays the order history of the active session.
func (cli *ConsoleHandler) ListOrders(ctx context.Context, out io.Writer, _ []string) {
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	orders, err := cli.orders.History(tctx)
	if err != nil {
		cli.reportFailure(ctx, out, "failed to load orders", err)
		return
	}
	RenderOrders(out, orders)
}

// ShowOrder displays one order with its lines. Usage: order <id>
func (cli *ConsoleHandler) ShowOrder(ctx context.Context, out io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: order <id>")
		return
	}
	orderID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(out, "invalid order id.")
		return
	}
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	order, err := cli.orders.Get(tctx, orderID)
	if err != nil {
		cli.reportFailure(ctx, out, "failed to load order", err)
		return
	}
	RenderOrder(out, order)
}
