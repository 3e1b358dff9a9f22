// Package transactions appends checkout receipts to the plaintext
// transaction log. Blocks are written whole and never rewritten.
package transactions
