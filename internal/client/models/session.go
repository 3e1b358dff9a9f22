package models

import "github.com/google/uuid"

// Session is the state of one logged-in user: who they are and the order
// they are building. It is created on login and dropped on logout.
type Session struct {
	// ID correlates operational log lines of one login.
	ID       uuid.UUID
	Username string
	Order    *Order
}

// NewSession starts a session with an empty order.
func NewSession(username string) *Session {
	return &Session{ID: uuid.New(), Username: username, Order: NewOrder()}
}
