package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/ordercli/internal/common"
	"github.com/shopspring/decimal"
)

// Item is a single order line. Price is fixed once the item is created;
// only Quantity may change afterwards.
type Item struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// Total returns Quantity * Price.
func (i Item) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Line renders the item the way both the order listing and receipts show it:
//
//	- Pen: 3 x 1.50 = 4.50
func (i Item) Line() string {
	return fmt.Sprintf("- %s: %d x %s = %s", i.Name, i.Quantity, Money(i.Price), Money(i.Total()))
}

// Money formats an amount with two decimals, rounding half away from zero.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ParseQuantity parses a 32-bit signed integer quantity.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("quantity %q: %w", s, common.ErrInvalidInput)
	}
	return int(n), nil
}

// ParsePrice parses a decimal price such as "1.50" or "10".
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("price %q: %w", s, common.ErrInvalidInput)
	}
	return d, nil
}
