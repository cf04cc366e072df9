package models

// DefaultRating is substituted when a line item carries no usable rating.
const DefaultRating = 4

// LineItem is one position in a cart. The cart is an ordered sequence and
// duplicates are allowed: adding the same product twice appends a second
// line, it does not merge quantities.
type LineItem struct {
	Name      string `json:"name"`
	Price     Price  `json:"price"`
	Material  string `json:"material"`
	Rating    Rating `json:"rating"`
	Image     string `json:"image,omitempty"`
	ProductID string `json:"productId,omitempty"`
	Quantity  int    `json:"quantity"`
}

// NewLineItem builds a normalized line item from a product.
func NewLineItem(p Product) LineItem {
	item := LineItem{
		Name:      p.Name,
		Price:     p.Price,
		Material:  p.Material,
		Rating:    p.Rating,
		Image:     p.Image,
		ProductID: p.AnyID(),
		Quantity:  1,
	}
	return item.Normalize()
}

// Normalize coerces the item into the shape the remote cart schema expects:
// rating in [0,5] or the default, quantity at least 1. A rating of zero is
// kept; only negative (unparsable) and out-of-range values are replaced. It
// is idempotent, so items may be re-normalized before every save without
// drift.
func (li LineItem) Normalize() LineItem {
	if li.Rating < 0 || li.Rating > 5 {
		li.Rating = DefaultRating
	}
	if li.Quantity < 1 {
		li.Quantity = 1
	}
	return li
}
