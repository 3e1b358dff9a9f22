package accounts

import (
	"context"

	"github.com/dmitrijs2005/ordercli/internal/client/models"
)

type Repository interface {
	Append(ctx context.Context, c models.Credentials) error
	Match(ctx context.Context, c models.Credentials) (bool, error)
}
