package service

import (
	"github.com/dicetrails/go-shop-api/internal/dto"
	"github.com/dicetrails/go-shop-api/internal/model"
	"github.com/dicetrails/go-shop-api/internal/store"
)

type ReviewService struct {
	store *store.Store
}

func NewReviewService(st *store.Store) *ReviewService {
	return &ReviewService{store: st}
}

func (s *ReviewService) ListByProduct(productID string) []model.Review {
	return s.store.ReviewsByProduct(productID)
}

// Add stores the review and, when it came from an order, flips that order
// line's reviewed flag. A stale order reference is ignored; the review
// itself always lands.
func (s *ReviewService) Add(req dto.AddReviewRequest) model.Review {
	review := s.store.AddReview(model.Review{
		ProductID: req.ProductID,
		User:      req.User,
		Rating:    req.Rating,
		Content:   req.Content,
		Media:     req.Media,
		OrderID:   req.OrderID,
	})

	if req.OrderID != "" {
		_ = s.store.MarkOrderItemReviewed(req.OrderID, req.ProductID)
	}
	return review
}
