package catalog

import "github.com/vlasewsky/orderdesk/internal/domain/model"

// Catalog holds the static list of sellable products in seed order.
type Catalog struct {
	products []model.Product
}

// New builds the catalog from the static seed.
func New() *Catalog {
	return &Catalog{products: seed()}
}

// List returns every product in seed order.
func (c *Catalog) List() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks up a product by id.
func (c *Catalog) Get(id string) (model.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func seed() []model.Product {
	return []model.Product{
		{ID: "1", Name: "iPhone 15 Pro Max", Category: "Electronics", Price: 1199, Stock: 25, Image: "/images/iphone.png"},
		{ID: "2", Name: "Samsung Galaxy S24 Ultra", Category: "Electronics", Price: 1299, Stock: 18, Image: "/images/s24.jpg"},
		{ID: "3", Name: "MacBook Air M2", Category: "Computers", Price: 1099, Stock: 12, Image: "/images/mac.webp"},
		{ID: "4", Name: "Logitech MX Master 3S", Category: "Accessories", Price: 99, Stock: 45, Image: "/images/mouse.jpeg"},
		{ID: "5", Name: "Apple Watch Series 9", Category: "Wearables", Price: 399, Stock: 30, Image: "/images/watch.webp"},
		{ID: "6", Name: "PlayStation 5", Category: "Gaming", Price: 499, Stock: 8, Image: "/images/ps5.jpg"},
	}
}
