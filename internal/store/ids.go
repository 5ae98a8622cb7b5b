package store

import (
	"strconv"

	"github.com/dicetrails/go-shop-api/internal/model"
)

// Identifier floors keep entity classes visually distinct: the first user is
// 10000001, the first product 20000001, the first order "30000001".
const (
	userIDFloor    = 10_000_000
	productIDFloor = 20_000_000
	orderIDFloor   = 30_000_000
)

// The next* helpers must be called with the owning collection's write lock
// held, so that allocation and insertion form one atomic step.

func nextUserID(users []model.User) int {
	max := userIDFloor
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

func nextProductID(products []model.Product) int {
	max := productIDFloor
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// nextOrderID scans only ids that parse as non-negative integers; legacy
// random-token ids are opaque and never participate in the max.
func nextOrderID(orders []model.Order) string {
	max := orderIDFloor
	for _, o := range orders {
		n, err := strconv.Atoi(o.OrderID)
		if err != nil || n < 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}
