package main

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sessionWith(roles ...string) *MockSessionStore {
	return &MockSessionStore{
		CurrentFunc: func() *Session {
			return &Session{ID: 3, Username: "alice", Roles: roles, AccessToken: "test.jwt"}
		},
	}
}

func noSession() *MockSessionStore {
	return &MockSessionStore{CurrentFunc: func() *Session { return nil }}
}

// Ensure order reads require a session and carry its credential.
func TestOrderService(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "Bearer test.jwt", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []Order{{ID: 51, Status: "PENDING"}})
	})
	mux.HandleFunc("/api/orders/51", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test.jwt", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, Order{ID: 51, Status: "PENDING"})
	})
	client, _ := newTestBackend(t, mux)

	t.Run("History", func(t *testing.T) {
		svc := NewOrderService(zap.NewNop(), client, sessionWith("USER"))
		orders, err := svc.History(context.TODO())
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, int64(51), orders[0].ID)
	})

	t.Run("Get", func(t *testing.T) {
		svc := NewOrderService(zap.NewNop(), client, sessionWith("USER"))
		order, err := svc.Get(context.TODO(), 51)
		require.NoError(t, err)
		assert.Equal(t, "PENDING", order.Status)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		before := atomic.LoadInt32(&calls)
		svc := NewOrderService(zap.NewNop(), client, noSession())
		_, err := svc.History(context.TODO())
		assert.Equal(t, ErrNotAuthenticated, err)
		_, err = svc.Get(context.TODO(), 51)
		assert.Equal(t, ErrNotAuthenticated, err)
		assert.Equal(t, before, atomic.LoadInt32(&calls))
	})
}

// Ensure catalog reads are open while management operations are gated
// locally on the admin role.
func TestBookService(t *testing.T) {
	var adminCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/books", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Empty(t, r.Header.Get("Authorization"))
			writeJSON(t, w, http.StatusOK, []Book{{ID: 10, Title: "Learning Go"}})
		case http.MethodPost:
			atomic.AddInt32(&adminCalls, 1)
			assert.Equal(t, "Bearer test.jwt", r.Header.Get("Authorization"))
			writeJSON(t, w, http.StatusOK, Book{ID: 11, Title: "New Book"})
		}
	})
	mux.HandleFunc("/api/books/10", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			atomic.AddInt32(&adminCalls, 1)
			writeJSON(t, w, http.StatusOK, messageResponse{Message: "deleted"})
		case http.MethodPut:
			atomic.AddInt32(&adminCalls, 1)
			assert.Equal(t, "Bearer test.jwt", r.Header.Get("Authorization"))
			writeJSON(t, w, http.StatusOK, Book{ID: 10, Title: "Learning Go, 2nd Edition"})
		default:
			writeJSON(t, w, http.StatusOK, Book{ID: 10, Title: "Learning Go"})
		}
	})
	client, _ := newTestBackend(t, mux)

	t.Run("List And Get Are Open", func(t *testing.T) {
		svc := NewBookService(zap.NewNop(), client, noSession())
		books, err := svc.List(context.TODO())
		require.NoError(t, err)
		require.Len(t, books, 1)

		book, err := svc.Get(context.TODO(), 10)
		require.NoError(t, err)
		assert.Equal(t, "Learning Go", book.Title)
	})

	t.Run("Create As Admin", func(t *testing.T) {
		svc := NewBookService(zap.NewNop(), client, sessionWith("USER", RoleAdmin))
		created, err := svc.Create(context.TODO(), Book{Title: "New Book"})
		require.NoError(t, err)
		assert.Equal(t, int64(11), created.ID)
	})

	t.Run("Update As Admin", func(t *testing.T) {
		svc := NewBookService(zap.NewNop(), client, sessionWith(RoleAdmin))
		updated, err := svc.Update(context.TODO(), 10, Book{Title: "Learning Go, 2nd Edition"})
		require.NoError(t, err)
		assert.Equal(t, "Learning Go, 2nd Edition", updated.Title)
	})

	t.Run("Delete As Admin", func(t *testing.T) {
		svc := NewBookService(zap.NewNop(), client, sessionWith(RoleAdmin))
		assert.NoError(t, svc.Delete(context.TODO(), 10))
	})

	t.Run("Management Without Admin Role", func(t *testing.T) {
		before := atomic.LoadInt32(&adminCalls)
		svc := NewBookService(zap.NewNop(), client, sessionWith("USER"))
		_, err := svc.Create(context.TODO(), Book{Title: "New Book"})
		assert.Equal(t, ErrAdminRequired, err)
		_, err = svc.Update(context.TODO(), 10, Book{Title: "New Book"})
		assert.Equal(t, ErrAdminRequired, err)
		err = svc.Delete(context.TODO(), 10)
		assert.Equal(t, ErrAdminRequired, err)
		_, err = svc.Populate(context.TODO(), "golang", 5)
		assert.Equal(t, ErrAdminRequired, err)
		assert.Equal(t, before, atomic.LoadInt32(&adminCalls))
	})

	t.Run("Management Without Session", func(t *testing.T) {
		svc := NewBookService(zap.NewNop(), client, noSession())
		_, err := svc.Create(context.TODO(), Book{Title: "New Book"})
		assert.Equal(t, ErrNotAuthenticated, err)
	})
}
