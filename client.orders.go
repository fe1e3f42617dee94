package main

import (
	"context"
	"fmt"
	"net/http"
)

// PlaceOrder converts the server side cart into an order. No payload
// is required beyond the bearer credential: the backend builds the
// order from its own copy of the cart and clears it.
func (c *BackendClient) PlaceOrder(ctx context.Context, token string) (Order, error) {
	var order Order
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders", token, struct{}{}, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

// FetchOrders retrieves the order history of the authenticated user.
func (c *BackendClient) FetchOrders(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FetchOrder retrieves a single order by its id.
func (c *BackendClient) FetchOrder(ctx context.Context, token string, orderID int64) (Order, error) {
	var order Order
	path := fmt.Sprintf("/api/orders/%d", orderID)
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}
