package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/dicetrails/go-shop-api/internal/model"
)

func (s *Store) ReviewsByProduct(productID string) []model.Review {
	var out []model.Review
	for _, r := range s.reviews.snapshot() {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

// AddReview generates an identifier when the client sent none, defaults the
// date, and recomputes HasMedia from the media list. It returns the stored
// review with all defaults applied.
func (s *Store) AddReview(r model.Review) model.Review {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Date == "" {
		r.Date = s.now().Format(time.RFC3339)
	}
	r.HasMedia = len(r.Media) > 0

	c := &s.reviews
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, r)
	c.persist()
	return r
}
