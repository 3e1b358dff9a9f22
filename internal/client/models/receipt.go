package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptTimeLayout is the layout of the "Date:" line of a receipt.
const ReceiptTimeLayout = "2006-01-02 15:04:05"

// ReceiptSeparator terminates every receipt block in the transaction log.
const ReceiptSeparator = "-----"

// Receipt is an immutable snapshot of an order taken at checkout.
type Receipt struct {
	Date  time.Time
	User  string
	Items []Item
}

// NewReceipt snapshots the order for user at the given time.
func NewReceipt(user string, order *Order, at time.Time) Receipt {
	return Receipt{Date: at, User: user, Items: order.Items()}
}

func (r Receipt) Total() decimal.Decimal {
	return SumTotals(r.Items)
}

// Format renders the receipt as the human-readable block appended to the
// transaction log. The block always ends with the separator line and a
// trailing newline.
func (r Receipt) Format() string {
	var b strings.Builder
	b.WriteString("Date: " + r.Date.Format(ReceiptTimeLayout) + "\n")
	b.WriteString("User: " + r.User + "\n")
	b.WriteString("Items:\n")
	for _, it := range r.Items {
		b.WriteString(it.Line() + "\n")
	}
	b.WriteString("Total Amount: " + Money(r.Total()) + "\n")
	b.WriteString(ReceiptSeparator + "\n")
	return b.String()
}
