package cart

import (
	"testing"
	"time"

	"github.com/barinistanbul/storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price int64) models.Product {
	return models.Product{ID: id, Name: "Hijab " + id, Price: price, Image: "x.jpg", Stock: 10}
}

func testCart() *Cart {
	return newCart("c1", time.Now)
}

func TestAddItem_MergesSameVariant(t *testing.T) {
	c := testCart()

	require.NoError(t, c.AddItem(product("1", 189000), 1, "Cream", "M"))
	require.NoError(t, c.AddItem(product("1", 189000), 2, "Cream", "M"))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, c.IsOpen())
}

func TestAddItem_DifferentVariantsAreSeparateLines(t *testing.T) {
	c := testCart()

	require.NoError(t, c.AddItem(product("1", 189000), 1, "Cream", "M"))
	require.NoError(t, c.AddItem(product("1", 189000), 1, "Cream", "L"))
	require.NoError(t, c.AddItem(product("1", 189000), 1, "Navy", "M"))

	assert.Len(t, c.Items(), 3)
	assert.Equal(t, 3, c.TotalItems())
	assert.Equal(t, int64(567000), c.TotalPrice())
}

func TestAddItem_Rejects(t *testing.T) {
	c := testCart()

	assert.ErrorIs(t, c.AddItem(product("1", 1000), 0, "Cream", "M"), ErrInvalidQuantity)
	assert.ErrorIs(t, c.AddItem(product("1", 1000), 1, "", "M"), ErrVariantRequired)
	assert.ErrorIs(t, c.AddItem(product("1", 1000), 1, "Cream", " "), ErrVariantRequired)
	assert.Empty(t, c.Items())
	assert.False(t, c.IsOpen())
}

func TestAddItem_KeepsPriceSnapshot(t *testing.T) {
	c := testCart()
	p := product("1", 100000)
	require.NoError(t, c.AddItem(p, 2, "Cream", "M"))

	p.Price = 500000
	require.NoError(t, c.AddItem(p, 1, "Cream", "M"))

	assert.Equal(t, int64(300000), c.TotalPrice())
}

func TestUpdateQuantity(t *testing.T) {
	c := testCart()
	require.NoError(t, c.AddItem(product("1", 1000), 1, "Cream", "M"))
	key := Key{ProductID: "1", Color: "Cream", Size: "M"}

	require.NoError(t, c.UpdateQuantity(key, 5))
	assert.Equal(t, 5, c.TotalItems())

	require.NoError(t, c.UpdateQuantity(key, 0))
	assert.Empty(t, c.Items())

	assert.NoError(t, c.UpdateQuantity(key, 0))
	assert.NoError(t, c.UpdateQuantity(key, -3))
	assert.ErrorIs(t, c.UpdateQuantity(key, 2), ErrItemNotFound)
}

func TestQuantity(t *testing.T) {
	c := testCart()
	key := Key{ProductID: "1", Color: "Cream", Size: "M"}
	assert.Zero(t, c.Quantity(key))

	require.NoError(t, c.AddItem(product("1", 1000), 2, "Cream", "M"))
	require.NoError(t, c.AddItem(product("1", 1000), 1, "Cream", "L"))

	assert.Equal(t, 2, c.Quantity(key))
}

func TestRemoveItemAndClear(t *testing.T) {
	c := testCart()
	require.NoError(t, c.AddItem(product("1", 1000), 1, "Cream", "M"))
	require.NoError(t, c.AddItem(product("2", 2000), 1, "Navy", "S"))

	c.RemoveItem(Key{ProductID: "1", Color: "Cream", Size: "M"})
	c.RemoveItem(Key{ProductID: "9", Color: "Cream", Size: "M"})
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "2", c.Items()[0].Product.ID)

	c.Clear()
	assert.Empty(t, c.Items())
	assert.Zero(t, c.TotalPrice())
}

func TestDrawer(t *testing.T) {
	c := testCart()

	c.Toggle()
	assert.True(t, c.IsOpen())
	c.Toggle()
	assert.False(t, c.IsOpen())
	c.Open()
	c.Open()
	assert.True(t, c.IsOpen())
	c.Close()
	assert.False(t, c.IsOpen())
}

func TestKeyRoundTrip(t *testing.T) {
	k := Key{ProductID: "171", Color: "Dusty_Pink", Size: "XL"}

	parsed, err := ParseKey(k.String())

	require.NoError(t, err)
	assert.Equal(t, "171_Dusty_Pink_XL", k.String())
	assert.Equal(t, k, parsed)

	for _, bad := range []string{"", "1", "1_Cream", "_Cream_M", "1_Cream_"} {
		_, err := ParseKey(bad)
		assert.ErrorIs(t, err, ErrInvalidKey, bad)
	}
}

func TestLineKeyFromViewRemovesTheLine(t *testing.T) {
	c := testCart()
	require.NoError(t, c.AddItem(product("171", 1000), 1, "Black_White", "M"))
	require.NoError(t, c.AddItem(product("172", 1000), 1, "Black/White", "L"))

	for _, line := range c.View().Items {
		key, err := ParseKey(line.Key)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Quantity(key), line.Key)
		c.RemoveItem(key)
	}

	assert.Empty(t, c.Items())
}

func TestAddItem_RejectsIDsThatBreakTheKey(t *testing.T) {
	c := testCart()

	for _, id := range []string{"hijab_01", "hijab/01", ""} {
		err := c.AddItem(product(id, 1000), 1, "Black", "M")
		assert.ErrorIs(t, err, ErrInvalidKey, id)
	}
	assert.Empty(t, c.Items())
}

func TestView(t *testing.T) {
	c := testCart()
	require.NoError(t, c.AddItem(product("1", 189000), 2, "Cream", "M"))

	v := c.View()

	assert.Equal(t, "c1", v.ID)
	assert.True(t, v.IsOpen)
	assert.Equal(t, 2, v.TotalItems)
	assert.Equal(t, int64(378000), v.TotalPrice)
	require.Len(t, v.Items, 1)
	assert.Equal(t, "1_Cream_M", v.Items[0].Key)
	assert.Equal(t, int64(378000), v.Items[0].Subtotal)
}
