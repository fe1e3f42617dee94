package main

import (
	"context"

	"go.uber.org/zap"
)

// OrderServiceProvider exposes the order history of the active session.
type OrderServiceProvider interface {
	History(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, orderID int64) (Order, error)
}

// OrderService reads order data from the backend. It holds no local
// state: orders are immutable once placed so every call goes through.
type OrderService struct {
	logger   *zap.Logger
	client   *BackendClient
	sessions SessionStoreProvider
}

func NewOrderService(logger *zap.Logger, client *BackendClient, sessions SessionStoreProvider) OrderServiceProvider {
	return &OrderService{
		logger:   logger,
		client:   client,
		sessions: sessions,
	}
}

// History retrieves all orders of the authenticated user.
func (os *OrderService) History(ctx context.Context) ([]Order, error) {
	session := os.sessions.Current()
	if !session.Valid() {
		return nil, ErrNotAuthenticated
	}
	return os.client.FetchOrders(ctx, session.AccessToken)
}

// Get retrieves one order by its id.
func (os *OrderService) Get(ctx context.Context, orderID int64) (Order, error) {
	session := os.sessions.Current()
	if !session.Valid() {
		return Order{}, ErrNotAuthenticated
	}
	return os.client.FetchOrder(ctx, session.AccessToken, orderID)
}
