package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice(t *testing.T) {
	catalog := Default()

	price, err := catalog.Price("Masala Dosa")

	require.NoError(t, err)
	assert.Equal(t, "80.00", price.StringFixed(2))
}

func TestPrice_UnknownItem(t *testing.T) {
	catalog := Default()

	_, err := catalog.Price("Paneer Tikka")

	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestItems_DisplayOrder(t *testing.T) {
	items := Default().Items()

	require.Len(t, items, 6)
	assert.Equal(t, "Idly (2 pcs)", items[0].Name)
	assert.Equal(t, "Ghee Dosa", items[5].Name)
}

func TestHas(t *testing.T) {
	catalog := Default()

	assert.True(t, catalog.Has("Pongal"))
	assert.False(t, catalog.Has("pongal"))
}
