package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
)

// ShowCart fetches the backend copy of the cart and renders it.
func (cli *ConsoleHandler) ShowCart(ctx context.Context, out io.Writer, _ []string) {
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	if err := cli.cart.Fetch(tctx); err != nil {
		cli.reportFailure(ctx, out, "failed to load cart", err)
		return
	}
	RenderCartLines(out, cli.cart.Lines(), cli.cart.TotalPrice())
}

// AddToCart adds a book to the cart. Usage: add <book-id> [qty]
func (cli *ConsoleHandler) AddToCart(ctx context.Context, out io.Writer, args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(out, "usage: add <book-id> [qty]")
		return
	}
	bookID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(out, "invalid book id.")
		return
	}
	quantity := 1
	if len(args) == 2 {
		if quantity, err = strconv.Atoi(args[1]); err != nil {
			fmt.Fprintln(out, "invalid quantity.")
			return
		}
	}
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	if err := cli.cart.Add(tctx, bookID, quantity); err != nil {
		cli.reportFailure(ctx, out, "failed to add to cart", err)
		return
	}
	fmt.Fprintf(out, "added. cart total is now %s\n", cli.cart.TotalPrice())
}

// UpdateQuantity changes a cart line quantity. A zero quantity removes
// the line. Usage: update <line-id> <qty>
func (cli *ConsoleHandler) UpdateQuantity(ctx context.Context, out io.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "usage: update <line-id> <qty>")
		return
	}
	lineID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(out, "invalid line id.")
		return
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(out, "invalid quantity.")
		return
	}
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	if err := cli.cart.UpdateQuantity(tctx, lineID, quantity); err != nil {
		cli.reportFailure(ctx, out, "failed to update cart", err)
		return
	}
	fmt.Fprintf(out, "updated. cart total is now %s\n", cli.cart.TotalPrice())
}

// RemoveLine removes one cart line. Usage: remove <line-id>
func (cli *ConsoleHandler) RemoveLine(ctx context.Context, out io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: remove <line-id>")
		return
	}
	lineID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(out, "invalid line id.")
		return
	}
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	if err := cli.cart.Remove(tctx, lineID); err != nil {
		cli.reportFailure(ctx, out, "failed to remove from cart", err)
		return
	}
	fmt.Fprintf(out, "removed. cart total is now %s\n", cli.cart.TotalPrice())
}

// ClearCart empties the cart on the backend.
func (cli *ConsoleHandler) ClearCart(ctx context.Context, out io.Writer, _ []string) {
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	if err := cli.cart.Clear(tctx); err != nil {
		cli.reportFailure(ctx, out, "failed to clear cart", err)
		return
	}
	fmt.Fprintln(out, "your cart has been cleared.")
}

// Checkout places the order built from the current cart.
func (cli *ConsoleHandler) Checkout(ctx context.Context, out io.Writer, _ []string) {
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	order, err := cli.cart.PlaceOrder(tctx)
	if err != nil {
		cli.reportFailure(ctx, out, "failed to place order", err)
		return
	}
	fmt.Fprintf(out, "order placed successfully. order id: %d total: %s\n", order.ID, order.TotalAmount)
}
