package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// FetchBooks retrieves the whole catalog. No credential required.
func (c *BackendClient) FetchBooks(ctx context.Context) ([]Book, error) {
	var books []Book
	if err := c.doJSON(ctx, http.MethodGet, "/api/books", "", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// FetchBook retrieves one catalog entry by its id.
func (c *BackendClient) FetchBook(ctx context.Context, bookID int64) (Book, error) {
	var book Book
	path := fmt.Sprintf("/api/books/%d", bookID)
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &book); err != nil {
		return Book{}, err
	}
	return book, nil
}

// CreateBook adds a new catalog entry. Admin credential required.
func (c *BackendClient) CreateBook(ctx context.Context, token string, book Book) (Book, error) {
	var created Book
	if err := c.doJSON(ctx, http.MethodPost, "/api/books", token, book, &created); err != nil {
		return Book{}, err
	}
	return created, nil
}

// UpdateBook replaces an existing catalog entry. Admin credential required.
func (c *BackendClient) UpdateBook(ctx context.Context, token string, bookID int64, book Book) (Book, error) {
	var updated Book
	path := fmt.Sprintf("/api/books/%d", bookID)
	if err := c.doJSON(ctx, http.MethodPut, path, token, book, &updated); err != nil {
		return Book{}, err
	}
	return updated, nil
}

// DeleteBook removes a catalog entry. Admin credential required.
func (c *BackendClient) DeleteBook(ctx context.Context, token string, bookID int64) error {
	path := fmt.Sprintf("/api/books/%d", bookID)
	return c.doJSON(ctx, http.MethodDelete, path, token, nil, nil)
}

// PopulateBooks asks the backend to import catalog entries from its
// external books source. The endpoint answers with a plain text
// summary. Admin credential required.
func (c *BackendClient) PopulateBooks(ctx context.Context, token, query string, maxResults int) (string, error) {
	path := "/api/admin/books/populate?query=" + url.QueryEscape(query) + "&maxResults=" + strconv.Itoa(maxResults)
	return c.doText(ctx, http.MethodPost, path, token, struct{}{})
}
