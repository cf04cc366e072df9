package cli

import (
	"context"
	"os"

	"github.com/craftedwonders/storefront/internal/client/models"
	"github.com/craftedwonders/storefront/internal/common"
)

// Sell prompts for listing details and publishes the product under the
// current user's email. Requires a logged-in session since listings carry
// an owner.
func (a *App) Sell(ctx context.Context) error {
	user := a.session.Current()
	if user == nil {
		printlnFn("Please log in before listing a product.")
		return common.ErrNotLoggedIn
	}

	name, err := getSimpleText(a.reader, "Product name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		printlnFn("A product needs a name.")
		return nil
	}

	priceRaw, err := getSimpleText(a.reader, "Price", os.Stdout)
	if err != nil {
		return err
	}
	price := models.NewPrice(priceRaw)

	material, err := getSimpleText(a.reader, "Material", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	p := models.Product{
		Name:        name,
		Price:       price,
		Material:    material,
		Description: description,
		Owner:       user.Email,
	}

	if _, err := a.catalog.AddListing(ctx, p); err != nil {
		a.log.Error(ctx, "adding listing failed", "name", name, "error", err)
		printlnFn("Could not save the listing.")
		return err
	}

	printlnFn(name + " is now listed for sale.")
	return nil
}

// Delete removes the product at the given position from the catalog view.
// The product disappears locally right away; the server copy is only
// removed when the current user owns the listing.
func (a *App) Delete(ctx context.Context, arg string) error {
	p, ok := a.viewIndex(arg)
	if !ok {
		return nil
	}

	var email string
	if user := a.session.Current(); user != nil {
		email = user.Email
	}

	if err := a.catalog.Delete(ctx, p, email); err != nil {
		a.log.Error(ctx, "deleting product failed", "name", p.Name, "error", err)
		printlnFn("Could not delete the product.")
		return err
	}

	printlnFn(p.Name + " has been removed.")
	return nil
}
