package main

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Rendering helpers for the console views. They only format data the
// stores already settled: no network calls happen here.

func RenderCartLines(out io.Writer, lines []CartLine, total string) {
	if len(lines) == 0 {
		fmt.Fprintln(out, "your cart is empty.")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tBOOK\tTITLE\tAUTHOR\tPRICE\tQTY")
	for _, line := range lines {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%d\n",
			line.ID, line.BookID, line.BookTitle, line.BookAuthor, line.BookPrice, line.Quantity)
	}
	tw.Flush()
	fmt.Fprintf(out, "total: %s\n", total)
}

func RenderOrders(out io.Writer, orders []Order) {
	if len(orders) == 0 {
		fmt.Fprintln(out, "no orders yet.")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tDATE\tSTATUS\tTOTAL")
	for _, order := range orders {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", order.ID, order.OrderDate, order.Status, order.TotalAmount)
	}
	tw.Flush()
}

func RenderOrder(out io.Writer, order Order) {
	fmt.Fprintf(out, "order %d placed %s status %s total %s\n",
		order.ID, order.OrderDate, order.Status, order.TotalAmount)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BOOK\tTITLE\tAUTHOR\tPRICE\tQTY")
	for _, item := range order.OrderItems {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n",
			item.BookID, item.BookTitle, item.BookAuthor, item.Price, item.Quantity)
	}
	tw.Flush()
}

func RenderBooks(out io.Writer, books []Book) {
	if len(books) == 0 {
		fmt.Fprintln(out, "the catalog is empty.")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tPRICE\tSTOCK")
	for _, book := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", book.ID, book.Title, book.Author, book.Price, book.Stock)
	}
	tw.Flush()
}

func RenderBook(out io.Writer, book Book) {
	fmt.Fprintf(out, "%s by %s\nprice: %s stock: %d\n", book.Title, book.Author, book.Price, book.Stock)
	if len(book.Description) != 0 {
		fmt.Fprintln(out, book.Description)
	}
}
