package catalog

import (
	"sync"
	"testing"
	"time"

	"github.com/barinistanbul/storefront/dto"
	"github.com/barinistanbul/storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newProduct(id, category, color string) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    100000,
		Image:    "https://cdn.example.com/" + id + ".jpg",
		Category: category,
		Color:    color,
		ColorHex: "#123456",
		Stock:    5,
	}
}

func emptyStore(t *testing.T) *Store {
	t.Helper()
	return New(Options{Initial: &models.AdminData{
		Products:   []models.Product{},
		Categories: []string{},
		Colors:     []models.ColorOption{},
		Settings:   models.DefaultSettings(),
		Orders:     []models.Order{},
	}})
}

func TestNew_StartsFromDefaults(t *testing.T) {
	s := New(Options{})

	assert.Len(t, s.Products(), 6)
	assert.Equal(t, models.DefaultCategories(), s.Categories())
	assert.Len(t, s.Colors(), 10)
	assert.Equal(t, "6281234567890", s.Settings().WANumber)
	assert.Empty(t, s.Orders())
}

func TestAddProduct(t *testing.T) {
	s := emptyStore(t)

	data, err := s.AddProduct(newProduct("p1", "Silk", "Cream"))

	require.NoError(t, err)
	require.Len(t, data.Products, 1)
	assert.Equal(t, "p1", data.Products[0].ID)
}

func TestAddProduct_AssignsTimestampID(t *testing.T) {
	now := time.UnixMilli(1767225600000)
	s := New(Options{Now: func() time.Time { return now }})

	p := newProduct("", "Silk", "Cream")
	first, err := s.AddProduct(p)
	require.NoError(t, err)
	second, err := s.AddProduct(p)
	require.NoError(t, err)

	assert.Equal(t, "1767225600000", first.Products[len(first.Products)-1].ID)
	assert.Equal(t, "1767225600001", second.Products[len(second.Products)-1].ID)
}

func TestAddProduct_RejectsDuplicateID(t *testing.T) {
	s := New(Options{})

	_, err := s.AddProduct(newProduct("1", "Silk", "Cream"))

	assert.ErrorIs(t, err, ErrDuplicateProductID)
	assert.Len(t, s.Products(), 6)
}

func TestAddProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Product)
		msg    string
	}{
		{"blank name", func(p *models.Product) { p.Name = "  " }, "name is required"},
		{"no image", func(p *models.Product) { p.Image = "" }, "image is required"},
		{"zero price", func(p *models.Product) { p.Price = 0 }, "price must be greater than 0"},
		{"negative stock", func(p *models.Product) { p.Stock = -1 }, "stock must be at least 0"},
		{"bad hex", func(p *models.Product) { p.ColorHex = "red" }, "colorHex must be a hex color"},
		{"underscore in id", func(p *models.Product) { p.ID = "hijab_01" }, "id must not contain"},
		{"slash in id", func(p *models.Product) { p.ID = "hijab/01" }, "id must not contain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := emptyStore(t)
			p := newProduct("x", "Silk", "Cream")
			tt.mutate(&p)

			_, err := s.AddProduct(p)

			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Empty(t, s.Products())
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	s := New(Options{})

	data, err := s.UpdateProduct("2", dto.UpdateProductDTO{Price: ptr(int64(150000)), Stock: ptr(0)})

	require.NoError(t, err)
	p, ok := s.Product("2")
	require.True(t, ok)
	assert.Equal(t, int64(150000), p.Price)
	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, "Anatolia Cotton - Olive", p.Name)
	assert.Equal(t, data.Products[1], p)
}

func TestUpdateProduct_MissingIsNoop(t *testing.T) {
	s := New(Options{})
	before := s.Snapshot()

	_, err := s.UpdateProduct("nope", dto.UpdateProductDTO{Name: ptr("x")})

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Equal(t, before, s.Snapshot())
}

func TestUpdateProduct_RevalidatesMergedProduct(t *testing.T) {
	s := New(Options{})

	_, err := s.UpdateProduct("1", dto.UpdateProductDTO{Price: ptr(int64(0))})

	assert.ErrorIs(t, err, ErrValidation)
	p, _ := s.Product("1")
	assert.Equal(t, int64(189000), p.Price)
}

func TestDeleteProduct(t *testing.T) {
	s := New(Options{})

	_, err := s.DeleteProduct("3")
	require.NoError(t, err)
	_, ok := s.Product("3")
	assert.False(t, ok)
	assert.Len(t, s.Products(), 5)

	_, err = s.DeleteProduct("3")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Len(t, s.Products(), 5)
}

func TestAdjustStock_ClampsAtZero(t *testing.T) {
	s := New(Options{})

	_, err := s.AdjustStock("1", -100)
	require.NoError(t, err)
	p, _ := s.Product("1")
	assert.Equal(t, 0, p.Stock)

	_, err = s.AdjustStock("1", 3)
	require.NoError(t, err)
	p, _ = s.Product("1")
	assert.Equal(t, 3, p.Stock)
}

func TestSnapshotsDoNotAlias(t *testing.T) {
	s := New(Options{})
	snap := s.Snapshot()

	snap.Products[0].Name = "changed"
	snap.Categories[0] = "changed"
	_, err := s.RenameCategory("Chiffon", "Georgette")
	require.NoError(t, err)

	p, _ := s.Product("1")
	assert.Equal(t, "Medina Silk - Sand Beige", p.Name)
	assert.Equal(t, "Premium Silk", s.Categories()[0])
	assert.Equal(t, "Chiffon", snap.Categories[2])
}

func TestListenerCalledAfterEachSuccessfulMutation(t *testing.T) {
	s := New(Options{})
	var mu sync.Mutex
	var got []models.AdminData
	s.SetListener(func(d models.AdminData) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, d)
	})

	_, err := s.AddCategory("Voal")
	require.NoError(t, err)
	_, err = s.AddCategory("Voal")
	require.Error(t, err)
	_, err = s.DeleteProduct("1")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
	assert.Contains(t, got[0].Categories, "Voal")
	assert.Len(t, got[1].Products, 5)
}

func TestConcurrentMutationsAreSerialized(t *testing.T) {
	s := emptyStore(t)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.AddProduct(newProduct("", "Silk", "Cream"))
		}()
	}
	wg.Wait()

	products := s.Products()
	assert.Len(t, products, 50)
	ids := map[string]bool{}
	for _, p := range products {
		ids[p.ID] = true
	}
	assert.Len(t, ids, 50)
}

func TestImport_ValidatesAndReplaces(t *testing.T) {
	s := New(Options{})
	bad := models.DefaultAdminData()
	bad.Products[0].Price = 0

	_, err := s.Import(bad)
	assert.ErrorIs(t, err, ErrValidation)

	reserved := models.DefaultAdminData()
	reserved.Products[0].ID = "hijab_01"
	_, err = s.Import(reserved)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "1", s.Products()[0].ID)

	good := models.DefaultAdminData()
	good.Categories = []string{"Only"}
	data, err := s.Import(good)
	require.NoError(t, err)
	assert.Equal(t, []string{"Only"}, data.Categories)
}

func TestReplace_DoesNotNotify(t *testing.T) {
	s := emptyStore(t)
	calls := 0
	s.SetListener(func(models.AdminData) { calls++ })

	data := models.DefaultAdminData()
	s.Replace(data)
	data.Products[0].Name = "changed outside"

	assert.Zero(t, calls)
	assert.Len(t, s.Products(), len(models.DefaultProducts()))
	assert.NotEqual(t, "changed outside", s.Products()[0].Name)
}
