package main

// This file gathers the wire payloads exchanged with the bookshop
// backend. Domain entities live in the domain.* files.

// messageResponse is the error/acknowledgement envelope the backend
// sends on most non-2xx statuses and on simple confirmations.
type messageResponse struct {
	Message string `json:"message"`
}

// loginResponse is the payload of a successful authentication call.
// The bearer credential travels under the `jwt` field.
type loginResponse struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
	JWT      string   `json:"jwt"`
}

// cartLineRequest is the body of cart add and update calls. The update
// endpoint is keyed by the cart line identifier reused in the BookID
// field: that is the backend contract as observed, preserved here even
// though the naming is inconsistent.
type cartLineRequest struct {
	BookID   int64 `json:"bookId"`
	Quantity int   `json:"quantity"`
}
