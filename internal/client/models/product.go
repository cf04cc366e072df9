// Package models defines the canonical product, cart and user types of the
// storefront client. The remote service and older local data are loosely
// typed (prices and ratings arrive as strings or numbers); everything is
// coerced into these types at the JSON boundary and never branched on
// elsewhere.
package models

// Product is a single catalog listing. Exactly one of ID and RemoteID is
// set: ID for listings created on this device, RemoteID for entries served
// by the remote catalog (wire name "_id", a leftover of the original
// document store).
type Product struct {
	ID          string `json:"id,omitempty"`
	RemoteID    string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Price       Price  `json:"price"`
	Material    string `json:"material,omitempty"`
	Rating      Rating `json:"rating,omitempty"`
	Image       string `json:"image,omitempty"`
	Owner       string `json:"owner,omitempty"`
	Description string `json:"description,omitempty"`
	Stock       *int   `json:"stock,omitempty"`
	InStock     *bool  `json:"inStock,omitempty"`
}

// Key identifies a listing for merge purposes: two products with the same
// name and owner are the same listing regardless of source. A missing owner
// normalizes to the empty string.
func (p Product) Key() string {
	return p.Name + "|" + p.Owner
}

// AnyID returns whichever identifier the product carries, preferring the
// remote one.
func (p Product) AnyID() string {
	if p.RemoteID != "" {
		return p.RemoteID
	}
	return p.ID
}

// Available reports whether the product can currently be added to a cart.
// Listings without stock information are assumed available.
func (p Product) Available() bool {
	if p.Stock != nil {
		return *p.Stock > 0
	}
	if p.InStock != nil {
		return *p.InStock
	}
	return true
}
