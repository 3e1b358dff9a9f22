package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ordercli/internal/client/models"
	"github.com/dmitrijs2005/ordercli/internal/client/repositories/transactions"
	"github.com/dmitrijs2005/ordercli/internal/common"
)

// CheckoutService turns a session's order into a persisted receipt.
type CheckoutService interface {
	Checkout(ctx context.Context, s *models.Session) (models.Receipt, error)
}

type checkoutService struct {
	repo transactions.Repository
	now  func() time.Time
}

// NewCheckoutService constructs a CheckoutService writing to repo and
// stamping receipts with now.
func NewCheckoutService(repo transactions.Repository, now func() time.Time) CheckoutService {
	if now == nil {
		now = time.Now
	}
	return &checkoutService{repo: repo, now: now}
}

// Checkout appends the receipt for the current order and then clears it.
// An empty order returns common.ErrEmptyOrder without touching the log.
// If the write fails the order is kept so the user can retry.
func (c *checkoutService) Checkout(ctx context.Context, s *models.Session) (models.Receipt, error) {
	if s.Order.IsEmpty() {
		return models.Receipt{}, common.ErrEmptyOrder
	}

	r := models.NewReceipt(s.Username, s.Order, c.now())
	if err := c.repo.Append(ctx, r); err != nil {
		return r, fmt.Errorf("checkout: %w", err)
	}

	s.Order.Clear()
	return r, nil
}
