package transactions

import (
	"context"

	"github.com/dmitrijs2005/ordercli/internal/client/models"
)

type Repository interface {
	Append(ctx context.Context, r models.Receipt) error
}
