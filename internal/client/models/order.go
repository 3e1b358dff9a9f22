package models

import (
	"fmt"

	"github.com/dmitrijs2005/ordercli/internal/common"
	"github.com/shopspring/decimal"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Order is the in-memory set of items being built toward checkout, keyed by
// item name and kept in insertion order.
//
// Re-adding an existing name replaces quantity and price but keeps the
// item's original position.
type Order struct {
	items *orderedmap.OrderedMap[string, Item]
}

// NewOrder returns an empty order.
func NewOrder() *Order {
	return &Order{items: orderedmap.New[string, Item]()}
}

// Put adds the item, or overwrites the existing item with the same name.
// It reports whether an existing item was replaced.
func (o *Order) Put(item Item) bool {
	_, replaced := o.items.Set(item.Name, item)
	return replaced
}

// SetQuantity changes the quantity of an existing item in place.
func (o *Order) SetQuantity(name string, quantity int) error {
	pair := o.items.GetPair(name)
	if pair == nil {
		return fmt.Errorf("update %q: %w", name, common.ErrItemNotFound)
	}
	pair.Value.Quantity = quantity
	return nil
}

// Remove deletes the named item.
func (o *Order) Remove(name string) error {
	if _, ok := o.items.Delete(name); !ok {
		return fmt.Errorf("remove %q: %w", name, common.ErrItemNotFound)
	}
	return nil
}

// Get returns the named item.
func (o *Order) Get(name string) (Item, bool) {
	return o.items.Get(name)
}

// Items returns a snapshot of the items in insertion order.
func (o *Order) Items() []Item {
	out := make([]Item, 0, o.items.Len())
	for pair := o.items.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Total is the sum of all item totals.
func (o *Order) Total() decimal.Decimal {
	return SumTotals(o.Items())
}

func (o *Order) Len() int {
	return o.items.Len()
}

func (o *Order) IsEmpty() bool {
	return o.items.Len() == 0
}

// Clear drops every item.
func (o *Order) Clear() {
	o.items = orderedmap.New[string, Item]()
}

// SumTotals adds up the line totals of items.
func SumTotals(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Total())
	}
	return total
}
