// Package models defines the ordercli domain types: order items, the
// insertion-ordered order, receipts, sessions and account credentials.
package models
