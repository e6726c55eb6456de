package history

import (
	"reflect"
	"testing"

	"github.com/vlasewsky/orderdesk/internal/domain/model"
)

func sampleOrders() []model.Order {
	return []model.Order{
		{ID: "ORD-100", Customer: model.Customer{Name: "Alice"}, Status: model.OrderStatusPending},
		{ID: "ORD-101", Customer: model.Customer{Name: "Bob"}, Status: model.OrderStatusShipped},
		{ID: "ORD-200", Customer: model.Customer{Name: "alina"}, Status: model.OrderStatusDelivered},
		{ID: "ORD-201", Customer: model.Customer{Name: "Carol"}, Status: model.OrderStatusCancelled},
		{ID: "ORD-202", Customer: model.Customer{Name: "Dave"}, Status: model.OrderStatusPending},
	}
}

func ids(orders []model.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestFilterOrdersBySearchTerm(t *testing.T) {
	orders := sampleOrders()

	got := FilterOrders(orders, "ORD-1", StatusFilterAll)
	if want := []string{"ORD-100", "ORD-101"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}

	got = FilterOrders(orders, "ord-1", StatusFilterAll)
	if len(got) != 2 {
		t.Fatalf("expected case-insensitive id match, got %v", ids(got))
	}

	got = FilterOrders(orders, "ali", StatusFilterAll)
	if want := []string{"ORD-100", "ORD-200"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected customer-name matches %v, got %v", want, ids(got))
	}

	if got := FilterOrders(orders, "", StatusFilterAll); len(got) != len(orders) {
		t.Fatalf("expected empty term to match all, got %d", len(got))
	}
}

func TestFilterOrdersByStatus(t *testing.T) {
	orders := sampleOrders()

	got := FilterOrders(orders, "", "pending")
	if want := []string{"ORD-100", "ORD-202"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}

	if got := FilterOrders(orders, "", "SHIPPED"); len(got) != 1 || got[0].ID != "ORD-101" {
		t.Fatalf("expected case-insensitive status match, got %v", ids(got))
	}

	// Both conditions must hold.
	if got := FilterOrders(orders, "Dave", "cancelled"); len(got) != 0 {
		t.Fatalf("expected no combined match, got %v", ids(got))
	}

	if got := FilterOrders(orders, "", "nonexistent"); len(got) != 0 {
		t.Fatalf("expected unknown status label to match nothing, got %v", ids(got))
	}
}

func TestCountsByStatus(t *testing.T) {
	orders := sampleOrders()

	counts := CountsByStatus(orders)
	want := map[string]int{
		"all":        5,
		"pending":    2,
		"processing": 0,
		"shipped":    1,
		"delivered":  1,
		"cancelled":  1,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("expected %v, got %v", want, counts)
	}

	if again := CountsByStatus(orders); !reflect.DeepEqual(counts, again) {
		t.Fatalf("expected idempotent counts, got %v then %v", counts, again)
	}
}

func TestCountsByStatusEmpty(t *testing.T) {
	counts := CountsByStatus(nil)
	if counts["all"] != 0 {
		t.Fatalf("expected zero total, got %d", counts["all"])
	}
	for _, s := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		if counts[s] != 0 {
			t.Fatalf("expected zero count for %s, got %d", s, counts[s])
		}
	}
}
