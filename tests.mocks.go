package main

import (
	"context"
	"time"
)

// This file contains mocks definitions needed to perform unit tests.

type MockSessionVault struct {
	SaveFunc   func(ctx context.Context, session Session) error
	LoadFunc   func(ctx context.Context) (Session, error)
	DeleteFunc func(ctx context.Context) error
}

// Save mocks the behavior of persisting a session by the vault.
func (m *MockSessionVault) Save(ctx context.Context, session Session) error {
	return m.SaveFunc(ctx, session)
}

// Load mocks the behavior of restoring a session by the vault.
func (m *MockSessionVault) Load(ctx context.Context) (Session, error) {
	return m.LoadFunc(ctx)
}

// Delete mocks the behavior of purging a session by the vault.
func (m *MockSessionVault) Delete(ctx context.Context) error {
	return m.DeleteFunc(ctx)
}

// MockSessionStore implements a fake SessionStoreProvider.
type MockSessionStore struct {
	CurrentFunc  func() *Session
	LoginFunc    func(ctx context.Context, username, password string) error
	RegisterFunc func(ctx context.Context, username, password, email string) error
	LogoutFunc   func()
}

func (m *MockSessionStore) Current() *Session {
	return m.CurrentFunc()
}

func (m *MockSessionStore) IsAuthenticated() bool {
	return m.CurrentFunc().Valid()
}

func (m *MockSessionStore) Login(ctx context.Context, username, password string) error {
	return m.LoginFunc(ctx, username, password)
}

func (m *MockSessionStore) Register(ctx context.Context, username, password, email string) error {
	return m.RegisterFunc(ctx, username, password, email)
}

func (m *MockSessionStore) Logout() {
	m.LogoutFunc()
}

func (m *MockSessionStore) Subscribe(_ func(*Session)) {}

// MockCartStore implements a fake CartStoreProvider.
type MockCartStore struct {
	LinesFunc          func() []CartLine
	TotalPriceFunc     func() string
	FetchFunc          func(ctx context.Context) error
	AddFunc            func(ctx context.Context, bookID int64, quantity int) error
	UpdateQuantityFunc func(ctx context.Context, lineID int64, quantity int) error
	RemoveFunc         func(ctx context.Context, lineID int64) error
	ClearFunc          func(ctx context.Context) error
	PlaceOrderFunc     func(ctx context.Context) (Order, error)
}

func (m *MockCartStore) Lines() []CartLine {
	return m.LinesFunc()
}

func (m *MockCartStore) TotalPrice() string {
	return m.TotalPriceFunc()
}

func (m *MockCartStore) Fetch(ctx context.Context) error {
	return m.FetchFunc(ctx)
}

func (m *MockCartStore) Add(ctx context.Context, bookID int64, quantity int) error {
	return m.AddFunc(ctx, bookID, quantity)
}

func (m *MockCartStore) UpdateQuantity(ctx context.Context, lineID int64, quantity int) error {
	return m.UpdateQuantityFunc(ctx, lineID, quantity)
}

func (m *MockCartStore) Remove(ctx context.Context, lineID int64) error {
	return m.RemoveFunc(ctx, lineID)
}

func (m *MockCartStore) Clear(ctx context.Context) error {
	return m.ClearFunc(ctx)
}

func (m *MockCartStore) PlaceOrder(ctx context.Context) (Order, error) {
	return m.PlaceOrderFunc(ctx)
}

// MockBookService implements a fake BookServiceProvider.
type MockBookService struct {
	ListFunc     func(ctx context.Context) ([]Book, error)
	GetFunc      func(ctx context.Context, bookID int64) (Book, error)
	CreateFunc   func(ctx context.Context, book Book) (Book, error)
	UpdateFunc   func(ctx context.Context, bookID int64, book Book) (Book, error)
	DeleteFunc   func(ctx context.Context, bookID int64) error
	PopulateFunc func(ctx context.Context, query string, maxResults int) (string, error)
}

func (m *MockBookService) List(ctx context.Context) ([]Book, error) {
	return m.ListFunc(ctx)
}

func (m *MockBookService) Get(ctx context.Context, bookID int64) (Book, error) {
	return m.GetFunc(ctx, bookID)
}

func (m *MockBookService) Create(ctx context.Context, book Book) (Book, error) {
	return m.CreateFunc(ctx, book)
}

func (m *MockBookService) Update(ctx context.Context, bookID int64, book Book) (Book, error) {
	return m.UpdateFunc(ctx, bookID, book)
}

func (m *MockBookService) Delete(ctx context.Context, bookID int64) error {
	return m.DeleteFunc(ctx, bookID)
}

func (m *MockBookService) Populate(ctx context.Context, query string, maxResults int) (string, error) {
	return m.PopulateFunc(ctx, query, maxResults)
}

// MockClocker implements a fake Clocker.
type MockClocker struct {
	MockNow time.Time
}

// NewMockClocker returns a mocked instance with fixed time.
func NewMockClocker() *MockClocker {
	return &MockClocker{time.Date(2023, 0o7, 0o2, 0o0, 0o0, 0o0, 0o00000000, time.UTC)}
}

// Now returns an already defined time to be used as mock.
func (mck *MockClocker) Now() time.Time {
	return mck.MockNow
}

// MockUIDHandler implements a fake UIDHandler.
type MockUIDHandler struct {
	MockedUID string
}

// NewMockUIDHandler returns a mocked instance with predictable id.
func NewMockUIDHandler(id string) *MockUIDHandler {
	return &MockUIDHandler{MockedUID: id}
}

// Generate constructs a predictable id to be used as mock.
func (muid *MockUIDHandler) Generate(prefix string) string {
	return prefix + ":" + muid.MockedUID
}
