package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/ordercli/internal/client/models"
	"github.com/dmitrijs2005/ordercli/internal/common"
)

// AddOrder prompts for name, quantity and price. An existing item with the
// same name is replaced. Quantity is validated before the price is asked for.
func (a *App) AddOrder(ctx context.Context) error {
	name, err := a.prompt("Item name: ")
	if err != nil {
		return err
	}

	rawQty, err := a.prompt("Quantity: ")
	if err != nil {
		return err
	}
	qty, err := models.ParseQuantity(rawQty)
	if err != nil {
		a.println("Invalid input.")
		return err
	}

	rawPrice, err := a.prompt("Price: ")
	if err != nil {
		return err
	}
	price, err := models.ParsePrice(rawPrice)
	if err != nil {
		a.println("Invalid input.")
		return err
	}

	replaced := a.session.Order.Put(models.Item{Name: name, Quantity: qty, Price: price})
	a.log.Info(ctx, "order item added",
		"item", name, "quantity", qty, "price", models.Money(price), "replaced", replaced)
	a.println("Order added.")
	return nil
}

// UpdateOrder changes the quantity of an existing item.
func (a *App) UpdateOrder(ctx context.Context) error {
	name, err := a.prompt("Item to update: ")
	if err != nil {
		return err
	}
	if _, ok := a.session.Order.Get(name); !ok {
		a.println("Item not found.")
		return common.ErrItemNotFound
	}

	rawQty, err := a.prompt("New quantity: ")
	if err != nil {
		return err
	}
	qty, err := models.ParseQuantity(rawQty)
	if err != nil {
		a.println("Invalid quantity.")
		return err
	}

	if err := a.session.Order.SetQuantity(name, qty); err != nil {
		a.println("Item not found.")
		return err
	}
	a.log.Info(ctx, "order item updated", "item", name, "quantity", qty)
	a.println("Order updated.")
	return nil
}

// RemoveOrder deletes an item by name.
func (a *App) RemoveOrder(ctx context.Context) error {
	name, err := a.prompt("Item to remove: ")
	if err != nil {
		return err
	}

	if err := a.session.Order.Remove(name); err != nil {
		a.println("Item not found.")
		return err
	}
	a.log.Info(ctx, "order item removed", "item", name)
	a.println("Order removed.")
	return nil
}

// ShowOrders prints every item in insertion order followed by the total.
func (a *App) ShowOrders(ctx context.Context) error {
	order := a.session.Order
	if order.IsEmpty() {
		a.println("No orders.")
		return nil
	}

	a.println("\nOrders:")
	for _, it := range order.Items() {
		a.println(it.Line())
	}
	a.printf("Total: %s\n", models.Money(order.Total()))
	return nil
}

// Checkout appends the receipt to the transaction file and empties the
// order. When the write fails the order is kept.
func (a *App) Checkout(ctx context.Context) error {
	r, err := a.checkoutService.Checkout(ctx, a.session)
	switch {
	case errors.Is(err, common.ErrEmptyOrder):
		a.println("No orders to checkout.")
		return err
	case err != nil:
		a.log.Error(ctx, "checkout failed", "items", len(r.Items), "error", err)
		a.println("Error writing transaction.")
		return err
	}

	a.log.Info(ctx, "checkout completed", "items", len(r.Items), "total", models.Money(r.Total()))
	a.println("Transaction saved.")
	return nil
}
