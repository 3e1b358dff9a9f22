// Package accounts persists user accounts as plaintext lines of the form
// "username:password" in an append-only file.
//
// Registration appends a line; it never deduplicates, so the same username
// may appear several times with different passwords. Matching compares the
// whole line, and the first exact match wins.
//
// Typical Usage
//
//	repo := accounts.NewFileRepository("users.txt")
//	_ = repo.Append(ctx, models.Credentials{Username: "alice", Password: "pw"})
//	ok, _ := repo.Match(ctx, models.Credentials{Username: "alice", Password: "pw"})
package accounts
