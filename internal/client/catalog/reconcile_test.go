package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftedwonders/storefront/internal/client/models"
)

func TestMerge_RemoteWinsOnKeyCollision(t *testing.T) {
	remote := []models.Product{
		{RemoteID: "r1", Name: "Clay Pot", Price: models.NewPrice("299")},
	}
	local := []models.Product{
		{ID: "loc1", Name: "Clay Pot", Price: models.NewPrice("350")},
	}

	got := Merge(remote, local)

	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].RemoteID)
	assert.Equal(t, "299", got[0].Price.String())
}

func TestMerge_OwnerDistinguishesListings(t *testing.T) {
	// same name, different owner: two distinct listings
	remote := []models.Product{
		{RemoteID: "r1", Name: "Clay Pot", Owner: "a@b.com"},
	}
	local := []models.Product{
		{ID: "loc1", Name: "Clay Pot", Owner: "c@d.com"},
	}

	got := Merge(remote, local)
	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].RemoteID)
	assert.Equal(t, "loc1", got[1].ID)
}

func TestMerge_OneEntryPerKey(t *testing.T) {
	remote := []models.Product{
		{RemoteID: "r1", Name: "Clay Pot"},
		{RemoteID: "r2", Name: "Clay Pot"}, // duplicate within remote
		{RemoteID: "r3", Name: "Bamboo Lamp"},
	}
	local := []models.Product{
		{ID: "loc1", Name: "Clay Pot"},
		{ID: "loc2", Name: "Jute Rug"},
		{ID: "loc3", Name: "Jute Rug"},
	}

	got := Merge(remote, local)

	keys := map[string]int{}
	for _, p := range got {
		keys[p.Key()]++
	}
	for key, n := range keys {
		assert.Equal(t, 1, n, "key %q appears %d times", key, n)
	}
	// first occurrence wins
	assert.Equal(t, "r1", got[0].RemoteID)
	assert.Equal(t, "loc2", got[2].ID)
}

func TestMerge_RemoteFirstOrderPreserved(t *testing.T) {
	remote := []models.Product{
		{RemoteID: "r1", Name: "A"},
		{RemoteID: "r2", Name: "B"},
	}
	local := []models.Product{
		{ID: "loc1", Name: "C"},
	}

	got := Merge(remote, local)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestApplyFilters_Tombstones(t *testing.T) {
	products := []models.Product{
		{RemoteID: "r1", Name: "Clay Pot"},
		{ID: "loc1", Name: "Jute Rug"},
		{RemoteID: "r2", Name: "Bamboo Lamp"},
	}
	dead := map[string]struct{}{"r1": {}, "loc1": {}}

	got := ApplyFilters(products, dead, "")

	require.Len(t, got, 1)
	assert.Equal(t, "r2", got[0].RemoteID)
}

func TestApplyFilters_EmptyIDNeverMatchesTombstone(t *testing.T) {
	products := []models.Product{{RemoteID: "r1", Name: "Clay Pot"}}
	dead := map[string]struct{}{"": {}}

	got := ApplyFilters(products, dead, "")
	assert.Len(t, got, 1)
}

func TestApplyFilters_Search(t *testing.T) {
	products := []models.Product{
		{RemoteID: "r1", Name: "Clay Pot"},
		{RemoteID: "r2", Name: "Bamboo Lamp"},
	}

	got := ApplyFilters(products, nil, "clay")
	require.Len(t, got, 1)
	assert.Equal(t, "Clay Pot", got[0].Name)

	// empty term equals the unfiltered merge
	got = ApplyFilters(products, nil, "")
	assert.Equal(t, products, got)
}
