package main

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrAdminRequired is returned by book management operations when the
// active session does not hold the ADMIN role.
var ErrAdminRequired = errors.New("admin role required")

// BookServiceProvider exposes the catalog and its management operations.
type BookServiceProvider interface {
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, bookID int64) (Book, error)
	Create(ctx context.Context, book Book) (Book, error)
	Update(ctx context.Context, bookID int64, book Book) (Book, error)
	Delete(ctx context.Context, bookID int64) error
	Populate(ctx context.Context, query string, maxResults int) (string, error)
}

// BookService reads the public catalog and performs the admin book
// management calls. Management operations are gated locally on the
// ADMIN role before reaching the backend.
type BookService struct {
	logger   *zap.Logger
	client   *BackendClient
	sessions SessionStoreProvider
}

func NewBookService(logger *zap.Logger, client *BackendClient, sessions SessionStoreProvider) BookServiceProvider {
	return &BookService{
		logger:   logger,
		client:   client,
		sessions: sessions,
	}
}

// List retrieves the whole catalog. Open to unauthenticated users.
func (bs *BookService) List(ctx context.Context) ([]Book, error) {
	return bs.client.FetchBooks(ctx)
}

// Get retrieves one catalog entry. Open to unauthenticated users.
func (bs *BookService) Get(ctx context.Context, bookID int64) (Book, error) {
	return bs.client.FetchBook(ctx, bookID)
}

// Create adds a catalog entry.
func (bs *BookService) Create(ctx context.Context, book Book) (Book, error) {
	token, err := bs.adminToken()
	if err != nil {
		return Book{}, err
	}
	return bs.client.CreateBook(ctx, token, book)
}

// Update replaces a catalog entry.
func (bs *BookService) Update(ctx context.Context, bookID int64, book Book) (Book, error) {
	token, err := bs.adminToken()
	if err != nil {
		return Book{}, err
	}
	return bs.client.UpdateBook(ctx, token, bookID, book)
}

// Delete removes a catalog entry.
func (bs *BookService) Delete(ctx context.Context, bookID int64) error {
	token, err := bs.adminToken()
	if err != nil {
		return err
	}
	return bs.client.DeleteBook(ctx, token, bookID)
}

// Populate asks the backend to import books from its external source.
func (bs *BookService) Populate(ctx context.Context, query string, maxResults int) (string, error) {
	token, err := bs.adminToken()
	if err != nil {
		return "", err
	}
	return bs.client.PopulateBooks(ctx, token, query, maxResults)
}

func (bs *BookService) adminToken() (string, error) {
	session := bs.sessions.Current()
	if !session.Valid() {
		return "", ErrNotAuthenticated
	}
	if !session.HasRole(RoleAdmin) {
		return "", ErrAdminRequired
	}
	return session.AccessToken, nil
}
