package cli

import (
	"context"
	"path/filepath"

	"github.com/dmitrijs2005/ordercli/internal/filex"
)

// ReadLogs prints the operational log file.
func (a *App) ReadLogs(ctx context.Context) error {
	return a.dump(ctx, a.logsPath)
}

// ReadTransactions prints the transaction file.
func (a *App) ReadTransactions(ctx context.Context) error {
	return a.dump(ctx, a.transactionsPath)
}

// dump prints a "<name> contents:" header and then the file verbatim. An
// unreadable file prints only the error line.
func (a *App) dump(ctx context.Context, path string) error {
	err := filex.Dump(a.out, path, func() {
		a.printf("\n%s contents:\n", filepath.Base(path))
	})
	if err != nil {
		a.log.Warn(ctx, "file read failed", "path", path, "error", err)
		a.println("Error reading file.")
		return err
	}
	return nil
}
