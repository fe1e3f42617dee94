package main

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// CartStoreProvider exposes the cart state and operations to every
// consumer of the storefront.
type CartStoreProvider interface {
	Lines() []CartLine
	TotalPrice() string
	Fetch(ctx context.Context) error
	Add(ctx context.Context, bookID int64, quantity int) error
	UpdateQuantity(ctx context.Context, lineID int64, quantity int) error
	Remove(ctx context.Context, lineID int64) error
	Clear(ctx context.Context) error
	PlaceOrder(ctx context.Context) (Order, error)
}

// CartStore owns the cart of the active session. Every mutation is
// synchronized with the backend and the server's returned list is
// adopted wholesale as the new local state. The store follows the
// session identity: it re-fetches when a session appears and clears
// locally (no network call) when it vanishes.
//
// Responses are adopted under a session generation guard: a response
// that resolves after the session changed is discarded. Within one
// session generation overlapping mutations are not serialized, the
// last response to land wins.
type CartStore struct {
	logger *zap.Logger
	client *BackendClient

	mu         sync.RWMutex
	session    *Session
	lines      []CartLine
	generation uint64
}

// NewCartStore builds the store, registers it on the session store and
// adopts the current identity (fetching the cart when one is present).
func NewCartStore(logger *zap.Logger, client *BackendClient, sessions *SessionStore) *CartStore {
	cs := &CartStore{
		logger: logger,
		client: client,
	}
	sessions.Subscribe(cs.onSessionChange)
	cs.onSessionChange(sessions.Current())
	return cs
}

// onSessionChange runs on every session identity transition. A new
// session triggers a fresh fetch; an absent one empties the local cart
// immediately since the backend would not authorize the call anyway.
func (cs *CartStore) onSessionChange(session *Session) {
	cs.mu.Lock()
	cs.generation++
	gen := cs.generation
	cs.session = session
	if !session.Valid() {
		cs.lines = nil
		cs.mu.Unlock()
		return
	}
	cs.mu.Unlock()

	if err := cs.refresh(context.Background(), session.AccessToken, gen); err != nil {
		cs.logger.Warn("cart: failed to load cart for session",
			zap.String("session.username", session.Username),
			zap.Error(err),
		)
	}
}

// Lines returns a copy of the current cart lines.
func (cs *CartStore) Lines() []CartLine {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	lines := make([]CartLine, len(cs.lines))
	copy(lines, cs.lines)
	return lines
}

// TotalPrice derives the cart total from local state only, formatted
// with two decimal places. Lines with a malformed price are skipped.
func (cs *CartStore) TotalPrice() string {
	return SumLinesPrice(cs.Lines())
}

// Fetch replaces the local cart with the backend copy. On failure the
// local cart is emptied and the error surfaced.
func (cs *CartStore) Fetch(ctx context.Context) error {
	token, gen, err := cs.snapshot()
	if err != nil {
		return err
	}
	return cs.refresh(ctx, token, gen)
}

// Add puts quantity copies of a book into the cart.
func (cs *CartStore) Add(ctx context.Context, bookID int64, quantity int) error {
	token, gen, err := cs.snapshot()
	if err != nil {
		return err
	}
	lines, err := cs.client.AddToCart(ctx, token, bookID, quantity)
	if err != nil {
		return err
	}
	cs.adopt(gen, lines)
	return nil
}

// UpdateQuantity sets the quantity of an existing cart line. A
// quantity of zero or less is a removal request, not an error.
func (cs *CartStore) UpdateQuantity(ctx context.Context, lineID int64, quantity int) error {
	if quantity <= 0 {
		return cs.Remove(ctx, lineID)
	}
	token, gen, err := cs.snapshot()
	if err != nil {
		return err
	}
	lines, err := cs.client.UpdateCartLine(ctx, token, lineID, quantity)
	if err != nil {
		return err
	}
	cs.adopt(gen, lines)
	return nil
}

// Remove deletes one cart line by its server-assigned id.
func (cs *CartStore) Remove(ctx context.Context, lineID int64) error {
	token, gen, err := cs.snapshot()
	if err != nil {
		return err
	}
	lines, err := cs.client.RemoveCartLine(ctx, token, lineID)
	if err != nil {
		return err
	}
	cs.adopt(gen, lines)
	return nil
}

// Clear deletes all cart lines on the backend and adopts its answer.
func (cs *CartStore) Clear(ctx context.Context) error {
	token, gen, err := cs.snapshot()
	if err != nil {
		return err
	}
	lines, err := cs.client.ClearCart(ctx, token)
	if err != nil {
		return err
	}
	cs.adopt(gen, lines)
	return nil
}

// PlaceOrder converts the cart into an order. An empty local cart
// fails with ErrEmptyCart before any network call. On success the
// local cart is cleared without a follow-up request: the backend
// already cleared its copy as part of order creation.
func (cs *CartStore) PlaceOrder(ctx context.Context) (Order, error) {
	cs.mu.RLock()
	if !cs.session.Valid() {
		cs.mu.RUnlock()
		return Order{}, ErrNotAuthenticated
	}
	if len(cs.lines) == 0 {
		cs.mu.RUnlock()
		return Order{}, ErrEmptyCart
	}
	token := cs.session.AccessToken
	gen := cs.generation
	cs.mu.RUnlock()

	order, err := cs.client.PlaceOrder(ctx, token)
	if err != nil {
		return Order{}, err
	}
	cs.adopt(gen, nil)
	cs.logger.Info("cart: order placed", zap.Int64("order.id", order.ID))
	return order, nil
}

// snapshot captures the credential and generation the next backend
// call runs under. It fails with ErrNotAuthenticated when no session
// is established.
func (cs *CartStore) snapshot() (string, uint64, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if !cs.session.Valid() {
		return "", 0, ErrNotAuthenticated
	}
	return cs.session.AccessToken, cs.generation, nil
}

func (cs *CartStore) refresh(ctx context.Context, token string, gen uint64) error {
	lines, err := cs.client.FetchCart(ctx, token)
	if err != nil {
		cs.adopt(gen, nil)
		return err
	}
	cs.adopt(gen, lines)
	return nil
}

// adopt replaces the local lines with the server answer unless the
// session changed while the request was in flight.
func (cs *CartStore) adopt(gen uint64, lines []CartLine) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if gen != cs.generation {
		cs.logger.Debug("cart: discarding stale response", zap.Uint64("cart.generation", gen))
		return
	}
	cs.lines = lines
}
