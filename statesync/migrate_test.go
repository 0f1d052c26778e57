package statesync

import (
	"testing"

	"github.com/barinistanbul/storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_BackfillsLegacyProducts(t *testing.T) {
	body := []byte(`{
		"products": [{"id":"9","name":"Old Scarf","price":99000,"image":"x.jpg","category":"Jersey","color":"Olive","stock":3}],
		"categories": ["Jersey"],
		"colors": [{"name":"Olive","hex":"#6B7F3B"}],
		"orders": []
	}`)

	data, err := Decode(body, DecodeOptions{})

	require.NoError(t, err)
	require.Len(t, data.Products, 1)
	p := data.Products[0]
	assert.Equal(t, "Old Scarf", p.Name)
	assert.Equal(t, int64(99000), p.Price)
	assert.Equal(t, models.FallbackColorHex, p.ColorHex)
	assert.Equal(t, models.DefaultDescription, p.Description)
	assert.Equal(t, models.DefaultDetails, p.Details)
	assert.Equal(t, models.DefaultShipping, p.ShippingInfo)
	assert.Equal(t, []string{"Jersey"}, data.Categories)
	assert.Empty(t, data.Orders)
}

func TestDecode_StoredFieldsWinOverBackfill(t *testing.T) {
	body := []byte(`{"products":[{"id":"1","name":"A","price":1,"image":"i","colorHex":"#000000","description":""}]}`)

	data, err := Decode(body, DecodeOptions{})

	require.NoError(t, err)
	assert.Equal(t, "#000000", data.Products[0].ColorHex)
	assert.Equal(t, "", data.Products[0].Description)
}

func TestDecode_MissingCollectionsFallBackToDefaults(t *testing.T) {
	data, err := Decode([]byte(`{}`), DecodeOptions{})

	require.NoError(t, err)
	assert.Equal(t, models.DefaultProducts(), data.Products)
	assert.Equal(t, models.DefaultCategories(), data.Categories)
	assert.Equal(t, models.DefaultColors(), data.Colors)
	assert.Equal(t, models.DefaultSettings(), data.Settings)
	assert.NotNil(t, data.Orders)
	assert.Empty(t, data.Orders)
}

func TestDecode_EmptyProductListStaysEmpty(t *testing.T) {
	data, err := Decode([]byte(`{"products":[]}`), DecodeOptions{})

	require.NoError(t, err)
	assert.Empty(t, data.Products)
}

func TestDecode_SettingsMergeFieldByField(t *testing.T) {
	body := []byte(`{"settings":{"waNumber":"628111","heroTexts":{"badge":"NEW"},"socialLinks":{"tiktok":""}}}`)

	data, err := Decode(body, DecodeOptions{})

	require.NoError(t, err)
	def := models.DefaultSettings()
	assert.Equal(t, "628111", data.Settings.WANumber)
	assert.Equal(t, "NEW", data.Settings.HeroTexts.Badge)
	assert.Equal(t, def.HeroTexts.Subtitle, data.Settings.HeroTexts.Subtitle)
	assert.Equal(t, "", data.Settings.SocialLinks.Tiktok)
	assert.Equal(t, def.SocialLinks.Instagram, data.Settings.SocialLinks.Instagram)
}

func TestDecode_SampleOrdersOnlyWhenOrdersMissing(t *testing.T) {
	sample := func() []models.Order { return []models.Order{{ID: "sample-0-0", Items: []models.OrderItem{}}} }

	data, err := Decode([]byte(`{}`), DecodeOptions{SampleOrders: sample})
	require.NoError(t, err)
	assert.Len(t, data.Orders, 1)

	data, err = Decode([]byte(`{"orders":[]}`), DecodeOptions{SampleOrders: sample})
	require.NoError(t, err)
	assert.Empty(t, data.Orders)
}

func TestDecode_NullAndGarbage(t *testing.T) {
	_, err := Decode([]byte(" null "), DecodeOptions{})
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = Decode([]byte(`{"products":"nope"}`), DecodeOptions{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyDocument)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := models.DefaultAdminData()
	want.Orders = []models.Order{{ID: "1", Date: "2026-01-02T03:04:05Z", Items: []models.OrderItem{{ProductID: "1", ProductName: "A", Quantity: 2, Price: 10}}, Total: 20, ItemCount: 2}}

	body, err := Encode(want)
	require.NoError(t, err)
	got, err := Decode(body, DecodeOptions{})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
