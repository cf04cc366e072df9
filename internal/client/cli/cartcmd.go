package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// AddToCart appends the selected product to the cart. Works logged out too;
// the cart is then local-only until the next login replaces it.
func (a *App) AddToCart(ctx context.Context, arg string) error {
	p, ok := a.viewIndex(arg)
	if !ok {
		return nil
	}
	if !p.Available() {
		printlnFn(p.Name + " is out of stock.")
		return nil
	}

	a.cart.Add(ctx, p)
	printlnFn(p.Name + " has been added to your cart.")
	return nil
}

// ShowCart prints the cart contents with a running total.
func (a *App) ShowCart(ctx context.Context) error {
	items := a.cart.Items()
	if len(items) == 0 {
		printlnFn("Your cart is empty.")
		return nil
	}

	total := decimal.Zero
	for i, item := range items {
		line := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
		printlnFn(fmt.Sprintf("%2d. %s x%d - ₹%s", i+1, item.Name, item.Quantity, line.String()))
	}
	printlnFn("Total: ₹" + total.String())
	return nil
}

// RemoveFromCart drops the item at the given 1-based position.
func (a *App) RemoveFromCart(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.cart.Items()) {
		printlnFn("No such cart item:", arg)
		return nil
	}
	a.cart.Remove(ctx, n-1)
	printlnFn("Removed.")
	return nil
}
