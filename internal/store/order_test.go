package store

import (
	"regexp"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicetrails/go-shop-api/internal/model"
)

func placeOrder(t *testing.T, s *Store, email string, items ...model.OrderItem) string {
	t.Helper()
	id, err := s.PlaceOrder(model.Order{UserID: email, Items: items})
	require.NoError(t, err)
	return id
}

func TestPlaceOrder_AssignsSequentialIDs(t *testing.T) {
	s := newTestStore(t)
	pid := addProduct(t, s, "D20 Set", 12.50, 100)

	first := placeOrder(t, s, "a@example.com", model.OrderItem{ProductID: pid, Quantity: 1})
	second := placeOrder(t, s, "a@example.com", model.OrderItem{ProductID: pid, Quantity: 1})

	assert.Equal(t, "30000001", first)
	assert.Equal(t, "30000002", second)

	order, err := s.OrderByID(first)
	require.NoError(t, err)
	assert.Equal(t, model.StatusReadyToShip, order.Status)
	assert.NotZero(t, order.Date)
}

func TestPlaceOrder_IgnoresLegacyIDs(t *testing.T) {
	s := newTestStore(t)
	pid := addProduct(t, s, "D20 Set", 12.50, 100)

	// Simulate a collection carrying ids from the old random-token scheme.
	s.orders.items = append(s.orders.items,
		model.Order{OrderID: "7b1c9e2a-4f3d-4f6e-9a1b-2c3d4e5f6a7b", UserID: "a@example.com"},
		model.Order{OrderID: "30000040", UserID: "a@example.com"},
	)

	id := placeOrder(t, s, "a@example.com", model.OrderItem{ProductID: pid, Quantity: 1})
	assert.Equal(t, "30000041", id)
}

func TestPlaceOrder_ConcurrentUniqueIDs(t *testing.T) {
	s := newTestStore(t)
	pid := addProduct(t, s, "D20 Set", 12.50, 1000)

	const n = 40
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- placeOrder(t, s, "a@example.com", model.OrderItem{ProductID: pid, Quantity: 1})
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		num, err := strconv.Atoi(id)
		require.NoError(t, err)
		assert.Greater(t, num, 30_000_000)
		assert.False(t, seen[id], "duplicate order id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestPlaceOrder_ReducesStock(t *testing.T) {
	s := newTestStore(t)
	pid := addProduct(t, s, "D20 Set", 12.50, 10)

	placeOrder(t, s, "a@example.com", model.OrderItem{ProductID: pid, Quantity: 3})

	p, err := s.ProductByID(pid)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Quantity)
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	s := newTestStore(t)
	pid := addProduct(t, s, "D20 Set", 12.50, 2)

	_, err := s.PlaceOrder(model.Order{
		UserID: "a@example.com",
		Items:  []model.OrderItem{{ProductID: pid, Quantity: 3}},
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Empty(t, s.Orders(), "no order record on stock failure")

	p, _ := s.ProductByID(pid)
	assert.Equal(t, 2, p.Quantity)
}

func TestUpdateOrderStatus_TrackingNumber(t *testing.T) {
	s := newTestStore(t)
	pid := addProduct(t, s, "D20 Set", 12.50, 10)
	id := placeOrder(t, s, "a@example.com", model.OrderItem{ProductID: pid, Quantity: 1})

	require.NoError(t, s.UpdateOrderStatus(id, model.StatusShipped))
	order, err := s.OrderByID(id)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z]{2}\d{8}$`), order.TrackingNumber)

	first := order.TrackingNumber
	require.NoError(t, s.UpdateOrderStatus(id, model.StatusShipped))
	order, err = s.OrderByID(id)
	require.NoError(t, err)
	assert.Equal(t, first, order.TrackingNumber, "re-entering Shipped must not regenerate")

	assert.ErrorIs(t, s.UpdateOrderStatus("30099999", model.StatusShipped), ErrOrderNotFound)
}

func TestCancelOrder_RestoresStockOnce(t *testing.T) {
	s := newTestStore(t)
	pid := addProduct(t, s, "D20 Set", 12.50, 10)
	id := placeOrder(t, s, "a@example.com", model.OrderItem{ProductID: pid, Quantity: 4})

	require.NoError(t, s.CancelOrder(id, "a@example.com"))

	order, err := s.OrderByID(id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, order.Status, "cancellation never deletes the record")

	p, _ := s.ProductByID(pid)
	assert.Equal(t, 10, p.Quantity)

	// A second cancel is refused, so stock is not restored twice.
	assert.ErrorIs(t, s.CancelOrder(id, "a@example.com"), ErrNotCancellable)
	p, _ = s.ProductByID(pid)
	assert.Equal(t, 10, p.Quantity)
}

func TestCancelOrder_DeniedAfterShipping(t *testing.T) {
	s := newTestStore(t)
	pid := addProduct(t, s, "D20 Set", 12.50, 10)

	for _, status := range []model.OrderStatus{model.StatusShipped, model.StatusCompleted} {
		id := placeOrder(t, s, "a@example.com", model.OrderItem{ProductID: pid, Quantity: 1})
		require.NoError(t, s.UpdateOrderStatus(id, status))

		assert.ErrorIs(t, s.CancelOrder(id, "a@example.com"), ErrNotCancellable)

		order, err := s.OrderByID(id)
		require.NoError(t, err)
		assert.Equal(t, status, order.Status)
	}
}

func TestCancelOrder_WrongOwner(t *testing.T) {
	s := newTestStore(t)
	pid := addProduct(t, s, "D20 Set", 12.50, 10)
	id := placeOrder(t, s, "a@example.com", model.OrderItem{ProductID: pid, Quantity: 1})

	assert.ErrorIs(t, s.CancelOrder(id, "intruder@example.com"), ErrOrderNotFound)

	// Empty email is the admin path and skips the ownership check.
	require.NoError(t, s.CancelOrder(id, ""))
}

func TestDeleteOrder(t *testing.T) {
	s := newTestStore(t)
	pid := addProduct(t, s, "D20 Set", 12.50, 10)
	id := placeOrder(t, s, "a@example.com", model.OrderItem{ProductID: pid, Quantity: 1})

	require.NoError(t, s.DeleteOrder(id))
	_, err := s.OrderByID(id)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.ErrorIs(t, s.DeleteOrder(id), ErrOrderNotFound)
}

func TestMarkOrderItemReviewed(t *testing.T) {
	s := newTestStore(t)
	pid := addProduct(t, s, "D20 Set", 12.50, 10)
	id := placeOrder(t, s, "a@example.com", model.OrderItem{ProductID: pid, Quantity: 1})

	require.NoError(t, s.MarkOrderItemReviewed(id, strconv.Itoa(pid)))

	order, err := s.OrderByID(id)
	require.NoError(t, err)
	assert.True(t, order.Items[0].Reviewed)

	assert.ErrorIs(t, s.MarkOrderItemReviewed("30099999", "1"), ErrOrderNotFound)
}

func TestBestSellers_ExcludesCancelled(t *testing.T) {
	s := newTestStore(t)
	p1 := addProduct(t, s, "P1", 10, 100)
	p2 := addProduct(t, s, "P2", 10, 100)

	placeOrder(t, s, "a@example.com",
		model.OrderItem{ProductID: p1, Quantity: 3},
		model.OrderItem{ProductID: p2, Quantity: 5},
	)
	cancelled := placeOrder(t, s, "a@example.com", model.OrderItem{ProductID: p1, Quantity: 10})
	require.NoError(t, s.CancelOrder(cancelled, "a@example.com"))

	top := s.BestSellers()
	require.Len(t, top, 2)
	assert.Equal(t, p2, top[0].ID, "P2 sold 5, P1 only 3 once the cancelled order is excluded")
	assert.Equal(t, p1, top[1].ID)
}

func TestBestSellers_TopFiveStable(t *testing.T) {
	s := newTestStore(t)
	var pids []int
	for i := 0; i < 7; i++ {
		pids = append(pids, addProduct(t, s, "P", 10, 100))
	}
	// Equal sales everywhere: catalog order must win.
	var items []model.OrderItem
	for _, pid := range pids {
		items = append(items, model.OrderItem{ProductID: pid, Quantity: 1})
	}
	placeOrder(t, s, "a@example.com", items...)

	top := s.BestSellers()
	require.Len(t, top, 5)
	for i, p := range top {
		assert.Equal(t, pids[i], p.ID)
	}
}
