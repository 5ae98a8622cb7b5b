package store

import (
	"fmt"

	"github.com/dicetrails/go-shop-api/internal/model"
)

func (s *Store) Products() []model.Product {
	return s.products.snapshot()
}

func (s *Store) ProductByID(id int) (model.Product, error) {
	c := &s.products
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.items {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, ErrProductNotFound
}

// AddProduct assigns the next catalog identifier and returns it.
func (s *Store) AddProduct(p model.Product) (int, error) {
	c := &s.products
	c.mu.Lock()
	defer c.mu.Unlock()

	p.ID = nextProductID(c.items)
	c.items = append(c.items, p)
	c.persist()
	return p.ID, nil
}

func (s *Store) UpdateProduct(p model.Product) error {
	c := &s.products
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i] = p
			c.persist()
			return nil
		}
	}
	return ErrProductNotFound
}

func (s *Store) DeleteProduct(id int) error {
	c := &s.products
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return nil
		}
	}
	return ErrProductNotFound
}

// ReduceStock decrements a product's quantity. It refuses to drive the
// quantity negative.
func (s *Store) ReduceStock(productID, quantity int) error {
	c := &s.products
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == productID {
			if c.items[i].Quantity < quantity {
				return fmt.Errorf("%w: product %d has %d, need %d",
					ErrInsufficientStock, productID, c.items[i].Quantity, quantity)
			}
			c.items[i].Quantity -= quantity
			c.persist()
			return nil
		}
	}
	return ErrProductNotFound
}

// IncreaseStock increments unconditionally; there is no upper bound.
func (s *Store) IncreaseStock(productID, quantity int) error {
	c := &s.products
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == productID {
			c.items[i].Quantity += quantity
			c.persist()
			return nil
		}
	}
	return ErrProductNotFound
}

// reduceItems applies an order's line items in one critical section.
// Demand is summed per product first, so duplicate lines for the same
// product are checked against stock as a whole; a failure leaves stock
// untouched.
func (s *Store) reduceItems(items []model.OrderItem) error {
	demand := make(map[int]int, len(items))
	for _, it := range items {
		demand[it.ProductID] += it.Quantity
	}

	c := &s.products
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := make(map[int]int, len(c.items))
	for i, p := range c.items {
		idx[p.ID] = i
	}
	for pid, qty := range demand {
		i, ok := idx[pid]
		if !ok {
			return fmt.Errorf("%w: product %d", ErrProductNotFound, pid)
		}
		if c.items[i].Quantity < qty {
			return fmt.Errorf("%w: product %d has %d, need %d",
				ErrInsufficientStock, pid, c.items[i].Quantity, qty)
		}
	}
	for pid, qty := range demand {
		c.items[idx[pid]].Quantity -= qty
	}
	c.persist()
	return nil
}

// restoreItems puts an order's quantities back after cancellation. A line
// whose product has since been deleted is logged and skipped.
func (s *Store) restoreItems(items []model.OrderItem) {
	c := &s.products
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := false
	for _, it := range items {
		found := false
		for i := range c.items {
			if c.items[i].ID == it.ProductID {
				c.items[i].Quantity += it.Quantity
				found = true
				changed = true
				break
			}
		}
		if !found {
			s.log.Warn("stock restore skipped, product missing", "product", it.ProductID, "quantity", it.Quantity)
		}
	}
	if changed {
		c.persist()
	}
}
