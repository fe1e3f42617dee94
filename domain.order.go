package main

// Order is a submitted order as returned by the backend.
type Order struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"userId"`
	Username    string      `json:"username"`
	OrderDate   string      `json:"orderDate"`
	TotalAmount Money       `json:"totalAmount"`
	Status      string      `json:"status"`
	OrderItems  []OrderItem `json:"orderItems"`
}

// OrderItem is one purchased line within an order.
type OrderItem struct {
	ID         int64  `json:"id"`
	BookID     int64  `json:"bookId"`
	BookTitle  string `json:"bookTitle"`
	BookAuthor string `json:"bookAuthor"`
	Quantity   int    `json:"quantity"`
	Price      Money  `json:"price"`
}
