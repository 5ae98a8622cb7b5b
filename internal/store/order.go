package store

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/dicetrails/go-shop-api/internal/model"
)

// PlaceOrder checks and reduces stock for every line item, then assigns the
// next order identifier and appends the record. The stock step is
// all-or-nothing inside one products critical section; the order commit is a
// separate orders critical section, so a crash in between can leave stock
// reduced without an order on disk. That gap is accepted, not hidden.
func (s *Store) PlaceOrder(order model.Order) (string, error) {
	order.Status = model.StatusReadyToShip
	order.Date = s.now().UnixMilli()
	order.TrackingNumber = ""

	if err := s.reduceItems(order.Items); err != nil {
		return "", fmt.Errorf("place order: %w", err)
	}

	c := &s.orders
	c.mu.Lock()
	defer c.mu.Unlock()

	order.OrderID = nextOrderID(c.items)
	c.items = append(c.items, order)
	c.persist()
	return order.OrderID, nil
}

func (s *Store) Orders() []model.Order {
	return s.orders.snapshot()
}

func (s *Store) OrdersByUser(email string) []model.Order {
	var out []model.Order
	for _, o := range s.orders.snapshot() {
		if strings.EqualFold(o.UserID, email) {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) OrderByID(id string) (model.Order, error) {
	c := &s.orders
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, o := range c.items {
		if o.OrderID == id {
			return o, nil
		}
	}
	return model.Order{}, ErrOrderNotFound
}

// UpdateOrderStatus moves an order to a new status. The first transition to
// Shipped mints a tracking number; re-entering Shipped never replaces one
// that already exists.
func (s *Store) UpdateOrderStatus(id string, status model.OrderStatus) error {
	c := &s.orders
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].OrderID == id {
			c.items[i].Status = status
			if status == model.StatusShipped && c.items[i].TrackingNumber == "" {
				c.items[i].TrackingNumber = trackingNumber()
			}
			c.persist()
			return nil
		}
	}
	return ErrOrderNotFound
}

// trackingNumber is two uppercase letters followed by 8 decimal digits.
func trackingNumber() string {
	return "TR" + strconv.Itoa(10_000_000+rand.Intn(90_000_000))
}

// CancelOrder sets the order to Cancelled and restores stock for every line
// item. An empty email skips the ownership check (admin path). Cancellation
// is allowed from any status except Shipped and Completed; a Cancelled order
// is also refused so restoration runs exactly once. The record is never
// deleted.
func (s *Store) CancelOrder(id, email string) error {
	c := &s.orders
	c.mu.Lock()
	var items []model.OrderItem
	found := false
	for i := range c.items {
		if c.items[i].OrderID != id {
			continue
		}
		if email != "" && !strings.EqualFold(c.items[i].UserID, email) {
			break
		}
		switch c.items[i].Status {
		case model.StatusShipped, model.StatusCompleted, model.StatusCancelled:
			c.mu.Unlock()
			return ErrNotCancellable
		}
		c.items[i].Status = model.StatusCancelled
		items = append([]model.OrderItem(nil), c.items[i].Items...)
		found = true
		c.persist()
		break
	}
	c.mu.Unlock()

	if !found {
		return ErrOrderNotFound
	}
	s.restoreItems(items)
	return nil
}

func (s *Store) DeleteOrder(id string) error {
	c := &s.orders
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].OrderID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return nil
		}
	}
	return ErrOrderNotFound
}

// MarkOrderItemReviewed flips the reviewed flag on the matching line items.
// Line items are otherwise immutable once placed.
func (s *Store) MarkOrderItemReviewed(orderID, productID string) error {
	c := &s.orders
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].OrderID != orderID {
			continue
		}
		changed := false
		for j := range c.items[i].Items {
			if strconv.Itoa(c.items[i].Items[j].ProductID) == productID {
				c.items[i].Items[j].Reviewed = true
				changed = true
			}
		}
		if changed {
			c.persist()
		}
		return nil
	}
	return ErrOrderNotFound
}

// BestSellers aggregates sold quantities across all non-Cancelled orders and
// returns the top 5 products, ties broken by catalog order.
func (s *Store) BestSellers() []model.Product {
	sales := map[int]int{}
	for _, o := range s.orders.snapshot() {
		if o.Status == model.StatusCancelled {
			continue
		}
		for _, it := range o.Items {
			if it.ProductID > 0 && it.Quantity > 0 {
				sales[it.ProductID] += it.Quantity
			}
		}
	}

	products := s.products.snapshot()
	sort.SliceStable(products, func(i, j int) bool {
		return sales[products[i].ID] > sales[products[j].ID]
	})
	if len(products) > 5 {
		products = products[:5]
	}
	return products
}
