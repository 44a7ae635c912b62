// Package model defines domain types used by the storefront.
package model

import "strings"

// Categories is the fixed set of product categories offered by the shop.
var Categories = []string{"Hoodies", "T-Shirts", "Pants", "Accessories"}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// Product is the canonical catalog entry. The catalog owns these values;
// carts and wishlists hold their own copies.
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Category string   `json:"category"`
	Sizes    []string `json:"sizes"`
	Colors   []string `json:"colors"`
	Stock    int      `json:"stock"`
	Material string   `json:"material"`
	Image    string   `json:"image"`
	IsLatest bool     `json:"isLatest"`
}

// Draft is unsaved product form data. Sizes and colors arrive as
// comma-separated free text and are only parsed when the draft is committed.
type Draft struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Material    string  `json:"material"`
	Image       string  `json:"image"`
	IsLatest    bool    `json:"isLatest"`
	SizesInput  string  `json:"sizesInput"`
	ColorsInput string  `json:"colorsInput"`
}

// SplitList parses a comma-separated input into trimmed, non-empty items,
// preserving order.
func SplitList(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Product materializes the draft into a product with the given id.
func (d Draft) Product(id int) Product {
	return Product{
		ID:       id,
		Name:     d.Name,
		Price:    d.Price,
		Category: d.Category,
		Sizes:    SplitList(d.SizesInput),
		Colors:   SplitList(d.ColorsInput),
		Stock:    d.Stock,
		Material: d.Material,
		Image:    d.Image,
		IsLatest: d.IsLatest,
	}
}

// CartLine is a product snapshot taken at add time plus the chosen variant.
// Later catalog edits do not affect existing lines.
type CartLine struct {
	Product
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

// Action classifies an admin mutation for the activity log.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// ActivityEntry is one line of the admin activity log.
type ActivityEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Action    Action `json:"action"`
	Details   string `json:"details"`
}

// BlogPost is a static editorial entry shown on the blog page.
type BlogPost struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
}
