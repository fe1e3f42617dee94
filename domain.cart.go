package main

import (
	"strconv"
	"strings"
)

// Money is the raw numeric text of a price as sent by the backend. It
// accepts both JSON numbers and quoted strings so a malformed value
// degrades to a skipped line in totals instead of failing the whole
// payload decode.
type Money string

func (m *Money) UnmarshalJSON(data []byte) error {
	*m = Money(strings.Trim(string(data), `"`))
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseFloat(string(m), 64); err == nil {
		return []byte(m), nil
	}
	return []byte(strconv.Quote(string(m))), nil
}

func (m Money) String() string {
	return string(m)
}

// Quantity is the line quantity as sent by the backend. Like Money it
// tolerates malformed values: they decode to -1 so the line is skipped
// in totals instead of failing the whole payload decode.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	n, err := strconv.Atoi(strings.Trim(string(data), `"`))
	if err != nil {
		*q = -1
		return nil
	}
	*q = Quantity(n)
	return nil
}

// CartLine is one entry of the cart as returned by the backend. The ID
// is the server-assigned line identifier, distinct from the book id.
type CartLine struct {
	ID           int64    `json:"id"`
	BookID       int64    `json:"bookId"`
	BookTitle    string   `json:"bookTitle"`
	BookAuthor   string   `json:"bookAuthor"`
	BookImageURL string   `json:"bookImageUrl"`
	BookPrice    Money    `json:"bookPrice"`
	Quantity     Quantity `json:"quantity"`
	Subtotal     Money    `json:"subtotal"`
}

// SumLinesPrice computes the total price over the given lines with two
// decimal places. Lines whose price or quantity did not parse as a
// number are excluded from the sum.
func SumLinesPrice(lines []CartLine) string {
	var total float64
	for _, line := range lines {
		if line.Quantity < 0 {
			continue
		}
		price, err := strconv.ParseFloat(line.BookPrice.String(), 64)
		if err != nil {
			continue
		}
		total += price * float64(line.Quantity)
	}
	return strconv.FormatFloat(total, 'f', 2, 64)
}
