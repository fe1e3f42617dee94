package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoginCommand ensures the login command reports the landing cart
// summary on success and the store message on failure.
func TestLoginCommand(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		sessions := &MockSessionStore{
			LoginFunc: func(_ context.Context, username, password string) error {
				assert.Equal(t, "alice", username)
				assert.Equal(t, "secret", password)
				return nil
			},
		}
		cart := &MockCartStore{
			LinesFunc: func() []CartLine { return testCartLines() },
		}
		cli := newTestConsoleHandler(sessions, cart, nil, nil)
		out := &bytes.Buffer{}
		cli.Login(context.TODO(), out, []string{"alice", "secret"})
		assert.Equal(t, "welcome alice. your cart holds 2 line(s).\n", out.String())
	})

	t.Run("Failure", func(t *testing.T) {
		sessions := &MockSessionStore{
			LoginFunc: func(_ context.Context, _, _ string) error {
				return &AuthenticationError{Err: &ServerError{Status: 401, Message: "Bad credentials"}}
			},
		}
		cli := newTestConsoleHandler(sessions, nil, nil, nil)
		out := &bytes.Buffer{}
		cli.Login(context.TODO(), out, []string{"alice", "wrong"})
		assert.Equal(t, "login failed: Bad credentials\n", out.String())
	})

	t.Run("Usage", func(t *testing.T) {
		cli := newTestConsoleHandler(nil, nil, nil, nil)
		out := &bytes.Buffer{}
		cli.Login(context.TODO(), out, []string{"alice"})
		assert.Equal(t, "usage: login <user> <pass>\n", out.String())
	})
}

// TestLogoutCommand ensures the logout command always reports success.
func TestLogoutCommand(t *testing.T) {
	var called bool
	sessions := &MockSessionStore{LogoutFunc: func() { called = true }}
	cli := newTestConsoleHandler(sessions, nil, nil, nil)
	out := &bytes.Buffer{}
	cli.Logout(context.TODO(), out, nil)
	assert.True(t, called)
	assert.Equal(t, "logged out.\n", out.String())
}

// TestWhoAmICommand ensures session details rendering for both states.
func TestWhoAmICommand(t *testing.T) {
	t.Run("Authenticated", func(t *testing.T) {
		sessions := &MockSessionStore{
			CurrentFunc: func() *Session {
				return &Session{Username: "alice", Email: "alice@bookshop.io", Roles: []string{"USER", "ADMIN"}, AccessToken: "jwt"}
			},
		}
		cli := newTestConsoleHandler(sessions, nil, nil, nil)
		out := &bytes.Buffer{}
		cli.WhoAmI(context.TODO(), out, nil)
		assert.Equal(t, "alice <alice@bookshop.io> roles=[USER,ADMIN]\n", out.String())
	})

	t.Run("Anonymous", func(t *testing.T) {
		sessions := &MockSessionStore{CurrentFunc: func() *Session { return nil }}
		cli := newTestConsoleHandler(sessions, nil, nil, nil)
		out := &bytes.Buffer{}
		cli.WhoAmI(context.TODO(), out, nil)
		assert.Equal(t, "not logged in.\n", out.String())
	})
}

// TestShowCartCommand ensures the cart view refreshes then renders the
// lines with their locally derived total.
func TestShowCartCommand(t *testing.T) {
	var fetched bool
	cart := &MockCartStore{
		FetchFunc:      func(_ context.Context) error { fetched = true; return nil },
		LinesFunc:      func() []CartLine { return testCartLines() },
		TotalPriceFunc: func() string { return "82.97" },
	}
	cli := newTestConsoleHandler(nil, cart, nil, nil)
	out := &bytes.Buffer{}
	cli.ShowCart(context.TODO(), out, nil)
	assert.True(t, fetched)
	assert.Contains(t, out.String(), "The Go Programming Language")
	assert.Contains(t, out.String(), "total: 82.97")
}

// TestShowCartCommandEmpty ensures the empty cart message.
func TestShowCartCommandEmpty(t *testing.T) {
	cart := &MockCartStore{
		FetchFunc:      func(_ context.Context) error { return nil },
		LinesFunc:      func() []CartLine { return nil },
		TotalPriceFunc: func() string { return "0.00" },
	}
	cli := newTestConsoleHandler(nil, cart, nil, nil)
	out := &bytes.Buffer{}
	cli.ShowCart(context.TODO(), out, nil)
	assert.Equal(t, "your cart is empty.\n", out.String())
}

// TestAddToCartCommand ensures argument handling and the updated total.
func TestAddToCartCommand(t *testing.T) {
	t.Run("Default Quantity", func(t *testing.T) {
		cart := &MockCartStore{
			AddFunc: func(_ context.Context, bookID int64, quantity int) error {
				assert.Equal(t, int64(10), bookID)
				assert.Equal(t, 1, quantity)
				return nil
			},
			TotalPriceFunc: func() string { return "31.99" },
		}
		cli := newTestConsoleHandler(nil, cart, nil, nil)
		out := &bytes.Buffer{}
		cli.AddToCart(context.TODO(), out, []string{"10"})
		assert.Equal(t, "added. cart total is now 31.99\n", out.String())
	})

	t.Run("Invalid Book ID", func(t *testing.T) {
		cli := newTestConsoleHandler(nil, nil, nil, nil)
		out := &bytes.Buffer{}
		cli.AddToCart(context.TODO(), out, []string{"ten"})
		assert.Equal(t, "invalid book id.\n", out.String())
	})
}

// TestCheckoutCommand ensures the outcome of placing an order.
func TestCheckoutCommand(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cart := &MockCartStore{
			PlaceOrderFunc: func(_ context.Context) (Order, error) {
				return Order{ID: 51, TotalAmount: "82.97"}, nil
			},
		}
		cli := newTestConsoleHandler(nil, cart, nil, nil)
		out := &bytes.Buffer{}
		cli.Checkout(context.TODO(), out, nil)
		assert.Equal(t, "order placed successfully. order id: 51 total: 82.97\n", out.String())
	})

	t.Run("Empty Cart", func(t *testing.T) {
		cart := &MockCartStore{
			PlaceOrderFunc: func(_ context.Context) (Order, error) {
				return Order{}, ErrEmptyCart
			},
		}
		cli := newTestConsoleHandler(nil, cart, nil, nil)
		out := &bytes.Buffer{}
		cli.Checkout(context.TODO(), out, nil)
		assert.Equal(t, "failed to place order: cart is empty\n", out.String())
	})
}

// TestUpdateBookCommand ensures the admin edit command parses the pipe
// separated details and reports the outcome.
func TestUpdateBookCommand(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		books := &MockBookService{
			UpdateFunc: func(_ context.Context, bookID int64, book Book) (Book, error) {
				assert.Equal(t, int64(10), bookID)
				assert.Equal(t, "Learning Go", book.Title)
				assert.Equal(t, "Jon Bodner", book.Author)
				assert.Equal(t, Money("25.49"), book.Price)
				book.ID = bookID
				return book, nil
			},
		}
		cli := newTestConsoleHandler(nil, nil, nil, books)
		out := &bytes.Buffer{}
		cli.UpdateBook(context.TODO(), out, []string{"10", "Learning", "Go|Jon", "Bodner|25.49"})
		assert.Equal(t, "book 10 updated.\n", out.String())
	})

	t.Run("Not Admin", func(t *testing.T) {
		books := &MockBookService{
			UpdateFunc: func(_ context.Context, _ int64, _ Book) (Book, error) {
				return Book{}, ErrAdminRequired
			},
		}
		cli := newTestConsoleHandler(nil, nil, nil, books)
		out := &bytes.Buffer{}
		cli.UpdateBook(context.TODO(), out, []string{"10", "Learning", "Go|Jon", "Bodner|25.49"})
		assert.Equal(t, "failed to update book: admin role required\n", out.String())
	})

	t.Run("Usage", func(t *testing.T) {
		cli := newTestConsoleHandler(nil, nil, nil, nil)
		out := &bytes.Buffer{}
		cli.UpdateBook(context.TODO(), out, []string{"10", "title only"})
		assert.Equal(t, "usage: book-update <id> <title>|<author>|<price>[|<description>]\n", out.String())
	})

	t.Run("Invalid Book ID", func(t *testing.T) {
		cli := newTestConsoleHandler(nil, nil, nil, nil)
		out := &bytes.Buffer{}
		cli.UpdateBook(context.TODO(), out, []string{"ten", "a|b|1.00"})
		assert.Equal(t, "invalid book id.\n", out.String())
	})
}

// TestStatusCommand ensures the status line holds the session state.
func TestStatusCommand(t *testing.T) {
	sessions := &MockSessionStore{
		CurrentFunc: func() *Session {
			return &Session{Username: "alice", AccessToken: "jwt"}
		},
	}
	cli := newTestConsoleHandler(sessions, nil, nil, nil)
	out := &bytes.Buffer{}
	cli.Status(context.TODO(), out, nil)
	require.Contains(t, out.String(), "bookshop storefront test")
	assert.Contains(t, out.String(), "logged in as alice")
}
