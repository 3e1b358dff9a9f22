package accounts

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

// Append writes the credentials as one new line, creating the file if absent.
func (r *FileRepository) Append(ctx context.Context, c models.Credentials) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := filex.AppendFile(r.path, []byte(c.Line()+"\n")); err != nil {
		return fmt.Errorf("failed to append account: %w", err)
	}
	return nil
}

// Match reports whether some line equals the credentials exactly. A missing
// or unreadable file is an error, not a mismatch.
func (r *FileRepository) Match(ctx context.Context, c models.Credentials) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	want := c.Line()
	found := false
	err := filex.ScanLines(r.path, func(line string) error {
		if line == want {
			found = true
			return filex.ErrStop
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to read accounts: %w", err)
	}
	return found, nil
}
