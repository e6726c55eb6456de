package draft

import (
	"strings"
	"time"

	domainErrors "github.com/vlasewsky/orderdesk/internal/domain/errors"
	"github.com/vlasewsky/orderdesk/internal/domain/model"
)

// Draft is an in-progress order being assembled from the catalog. It is not
// persisted; a discarded draft simply goes out of scope.
type Draft struct {
	customerName  string
	customerEmail string
	items         []model.OrderItem
	searchTerm    string
}

// New returns an empty draft.
func New() *Draft {
	return &Draft{}
}

func (d *Draft) SetCustomerName(name string)   { d.customerName = name }
func (d *Draft) SetCustomerEmail(email string) { d.customerEmail = email }
func (d *Draft) SetSearchTerm(term string)     { d.searchTerm = term }

func (d *Draft) CustomerName() string  { return d.customerName }
func (d *Draft) CustomerEmail() string { return d.customerEmail }
func (d *Draft) SearchTerm() string    { return d.searchTerm }

// Items returns a snapshot of the selected items in first-added order.
func (d *Draft) Items() []model.OrderItem {
	out := make([]model.OrderItem, len(d.items))
	copy(out, d.items)
	return out
}

// AddProduct adds one unit of the product. An existing line is incremented,
// capped at the product's stock; hitting the cap is a no-op, not an error.
// New lines append at the end with quantity 1.
func (d *Draft) AddProduct(p model.Product) {
	for i := range d.items {
		if d.items[i].Product.ID == p.ID {
			next := d.items[i].Quantity + 1
			if next > p.Stock {
				next = p.Stock
			}
			d.items[i].Quantity = next
			return
		}
	}
	d.items = append(d.items, model.OrderItem{Product: p, Quantity: 1})
}

// SetQuantity sets the line quantity directly. A quantity of zero or less
// removes the line. Unlike AddProduct there is no stock cap here; the caller
// owns that restriction.
func (d *Draft) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		d.Remove(productID)
		return
	}
	for i := range d.items {
		if d.items[i].Product.ID == productID {
			d.items[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the line for the product. Missing lines are a no-op.
func (d *Draft) Remove(productID string) {
	for i := range d.items {
		if d.items[i].Product.ID == productID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return
		}
	}
}

// Total derives the running sum over selected items.
func (d *Draft) Total() float64 {
	var sum float64
	for _, item := range d.items {
		sum += item.Product.Price * float64(item.Quantity)
	}
	return sum
}

// Valid reports whether the draft can become an order: a non-blank customer
// name, an email containing '@' and at least one selected item.
func (d *Draft) Valid() bool {
	return strings.TrimSpace(d.customerName) != "" &&
		strings.Contains(d.customerEmail, "@") &&
		len(d.items) > 0
}

// Validate returns ErrInvalidDraft when the draft cannot be submitted.
func (d *Draft) Validate() error {
	if !d.Valid() {
		return domainErrors.ErrInvalidDraft
	}
	return nil
}

// Reset clears all draft state back to the empty defaults.
func (d *Draft) Reset() {
	d.customerName = ""
	d.customerEmail = ""
	d.items = nil
	d.searchTerm = ""
}

// Build snapshots the draft into a Pending order. Callers validate first and
// generate the id; the draft itself stays untouched.
func (d *Draft) Build(id string, now time.Time) model.Order {
	items := make([]model.OrderItem, len(d.items))
	copy(items, d.items)
	return model.Order{
		ID: id,
		Customer: model.Customer{
			Name:  strings.TrimSpace(d.customerName),
			Email: strings.TrimSpace(d.customerEmail),
		},
		Date:   now,
		Status: model.OrderStatusPending,
		Total:  d.Total(),
		Items:  items,
	}
}

// FilterProducts narrows a product list by case-insensitive substring match
// on the name. An empty term returns the input unchanged.
func FilterProducts(products []model.Product, term string) []model.Product {
	if term == "" {
		return products
	}
	needle := strings.ToLower(term)
	var out []model.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}
