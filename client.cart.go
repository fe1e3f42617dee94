package main

import (
	"context"
	"fmt"
	"net/http"
)

// Every mutating cart endpoint answers with the entire updated list of
// cart lines. The caller adopts that list wholesale: the client never
// computes the post-mutation cart state itself.

// FetchCart retrieves the full cart of the authenticated user.
func (c *BackendClient) FetchCart(ctx context.Context, token string) ([]CartLine, error) {
	var lines []CartLine
	if err := c.doJSON(ctx, http.MethodGet, "/api/cart", token, nil, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// AddToCart adds quantity copies of a book to the cart.
func (c *BackendClient) AddToCart(ctx context.Context, token string, bookID int64, quantity int) ([]CartLine, error) {
	var lines []CartLine
	payload := cartLineRequest{BookID: bookID, Quantity: quantity}
	if err := c.doJSON(ctx, http.MethodPost, "/api/cart/add", token, payload, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateCartLine sets the quantity of an existing cart line. The
// endpoint is keyed by the line id carried in the request BookID field
// (backend contract quirk, see cartLineRequest).
func (c *BackendClient) UpdateCartLine(ctx context.Context, token string, lineID int64, quantity int) ([]CartLine, error) {
	var lines []CartLine
	payload := cartLineRequest{BookID: lineID, Quantity: quantity}
	if err := c.doJSON(ctx, http.MethodPut, "/api/cart/update", token, payload, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// RemoveCartLine deletes one cart line by its server-assigned id.
func (c *BackendClient) RemoveCartLine(ctx context.Context, token string, lineID int64) ([]CartLine, error) {
	var lines []CartLine
	path := fmt.Sprintf("/api/cart/remove/%d", lineID)
	if err := c.doJSON(ctx, http.MethodDelete, path, token, nil, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// ClearCart deletes all cart lines.
func (c *BackendClient) ClearCart(ctx context.Context, token string) ([]CartLine, error) {
	var lines []CartLine
	if err := c.doJSON(ctx, http.MethodDelete, "/api/cart/clear", token, nil, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}
