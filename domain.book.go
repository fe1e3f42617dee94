package main

// Book represents a catalog entity served by the backend.
type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Stock       int    `json:"stock"`
}
