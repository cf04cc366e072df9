package catalog

import "github.com/craftedwonders/storefront/internal/client/models"

// SeedCatalog returns the built-in catalog shown when the remote service is
// unreachable. Shoppers always see some products, even fully offline.
func SeedCatalog() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Handwoven Basket", Price: models.NewPrice("499"), Material: "Natural Jute", Rating: 4.5, Image: "download.jpeg"},
		{ID: "2", Name: "Clay Pot", Price: models.NewPrice("299"), Material: "clay", Rating: 4.2, Image: "clay pot.jpeg"},
		{ID: "3", Name: "Jewelry Box", Price: models.NewPrice("799"), Material: "Wooden", Rating: 4.8, Image: "jwellery.jpeg"},
		{ID: "4", Name: "Bamboo Lamp", Price: models.NewPrice("1299"), Material: "Bamboo", Rating: 4.6, Image: "bamboo.jpeg"},
		{ID: "5", Name: "Coffee Cup", Price: models.NewPrice("199"), Material: "ceramic", Rating: 4.1, Image: "coffee.jpeg"},
	}
}
