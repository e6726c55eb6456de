// Package history derives read-only views over the order list: search and
// status filtering plus per-status summary counts.
package history

import (
	"strings"

	"github.com/vlasewsky/orderdesk/internal/domain/model"
)

// StatusFilterAll matches every status.
const StatusFilterAll = "all"

// FilterOrders returns the orders matching the search term and status filter,
// preserving creation order. The term matches case-insensitively against the
// order id and the customer name; an empty term matches everything.
func FilterOrders(orders []model.Order, term, statusFilter string) []model.Order {
	needle := strings.ToLower(term)
	var out []model.Order
	for _, o := range orders {
		if !matchesSearch(o, needle) {
			continue
		}
		if statusFilter != StatusFilterAll && !strings.EqualFold(string(o.Status), statusFilter) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesSearch(o model.Order, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.ID), needle) ||
		strings.Contains(strings.ToLower(o.Customer.Name), needle)
}

// CountsByStatus tallies the full order list per status label plus an "all"
// total. Counts are always computed over the unfiltered list.
func CountsByStatus(orders []model.Order) map[string]int {
	counts := map[string]int{StatusFilterAll: len(orders)}
	for _, s := range model.OrderStatuses {
		counts[strings.ToLower(string(s))] = 0
	}
	for _, o := range orders {
		counts[strings.ToLower(string(o.Status))]++
	}
	return counts
}
