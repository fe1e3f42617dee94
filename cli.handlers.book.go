package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ListBooks displays the catalog.
func (cli *ConsoleHandler) ListBooks(ctx context.Context, out io.Writer, _ []string) {
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	books, err := cli.books.List(tctx)
	if err != nil {
		cli.reportFailure(ctx, out, "failed to load catalog", err)
		return
	}
	RenderBooks(out, books)
}

// ShowBook displays one catalog entry. Usage: book <id>
func (cli *ConsoleHandler) ShowBook(ctx context.Context, out io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: book <id>")
		return
	}
	bookID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(out, "invalid book id.")
		return
	}
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	book, err := cli.books.Get(tctx, bookID)
	if err != nil {
		cli.reportFailure(ctx, out, "failed to load book", err)
		return
	}
	RenderBook(out, book)
}

// parseBookFields parses the pipe separated book details used by the
// admin commands. It reports false when a mandatory field is missing.
func parseBookFields(args []string) (Book, bool) {
	fields := strings.Split(strings.Join(args, " "), "|")
	if len(fields) < 3 {
		return Book{}, false
	}
	book := Book{
		Title:  strings.TrimSpace(fields[0]),
		Author: strings.TrimSpace(fields[1]),
		Price:  Money(strings.TrimSpace(fields[2])),
	}
	if len(fields) > 3 {
		book.Description = strings.TrimSpace(fields[3])
	}
	return book, true
}

// AddBook creates a catalog entry (admin only).
// Usage: book-add <title>|<author>|<price>[|<description>]
func (cli *ConsoleHandler) AddBook(ctx context.Context, out io.Writer, args []string) {
	book, ok := parseBookFields(args)
	if !ok {
		fmt.Fprintln(out, "usage: book-add <title>|<author>|<price>[|<description>]")
		return
	}
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	created, err := cli.books.Create(tctx, book)
	if err != nil {
		cli.reportFailure(ctx, out, "failed to add book", err)
		return
	}
	fmt.Fprintf(out, "book created with id %d\n", created.ID)
}

// UpdateBook replaces an existing catalog entry (admin only).
// Usage: book-update <id> <title>|<author>|<price>[|<description>]
func (cli *ConsoleHandler) UpdateBook(ctx context.Context, out io.Writer, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(out, "usage: book-update <id> <title>|<author>|<price>[|<description>]")
		return
	}
	bookID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(out, "invalid book id.")
		return
	}
	book, ok := parseBookFields(args[1:])
	if !ok {
		fmt.Fprintln(out, "usage: book-update <id> <title>|<author>|<price>[|<description>]")
		return
	}
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	updated, err := cli.books.Update(tctx, bookID, book)
	if err != nil {
		cli.reportFailure(ctx, out, "failed to update book", err)
		return
	}
	fmt.Fprintf(out, "book %d updated.\n", updated.ID)
}

// DeleteBook removes a catalog entry (admin only). Usage: book-del <id>
func (cli *ConsoleHandler) DeleteBook(ctx context.Context, out io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: book-del <id>")
		return
	}
	bookID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(out, "invalid book id.")
		return
	}
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	if err := cli.books.Delete(tctx, bookID); err != nil {
		cli.reportFailure(ctx, out, "failed to delete book", err)
		return
	}
	fmt.Fprintln(out, "book deleted.")
}

// PopulateBooks imports catalog entries from the backend external
// source (admin only). Usage: book-populate [query] [max]
func (cli *ConsoleHandler) PopulateBooks(ctx context.Context, out io.Writer, args []string) {
	query := "programming"
	maxResults := 10
	if len(args) > 0 {
		query = args[0]
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintln(out, "invalid max results.")
			return
		}
		maxResults = n
	}
	tctx, cancel := cli.timedContext(ctx)
	defer cancel()
	summary, err := cli.books.Populate(tctx, query, maxResults)
	if err != nil {
		cli.reportFailure(ctx, out, "failed to populate catalog", err)
		return
	}
	fmt.Fprintln(out, summary)
}
