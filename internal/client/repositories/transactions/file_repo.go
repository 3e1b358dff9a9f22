package transactions

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ordercli/internal/client/models"
	"github.com/dmitrijs2005/ordercli/internal/filex"
)

type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Path() string {
	return r.path
}

// Append writes the formatted receipt block in one write.
func (r *FileRepository) Append(ctx context.Context, rc models.Receipt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := filex.AppendFile(r.path, []byte(rc.Format())); err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}
