package model

// Product is a sellable catalog entry. Products are seeded once at startup
// and never mutated afterwards.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Image    string  `json:"image,omitempty"`
}
