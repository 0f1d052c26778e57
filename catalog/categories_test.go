package catalog

import (
	"testing"

	"github.com/barinistanbul/storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCategory(t *testing.T) {
	s := emptyStore(t)

	_, err := s.AddCategory("  Voal  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Voal"}, s.Categories())

	_, err = s.AddCategory("Voal")
	assert.ErrorIs(t, err, ErrDuplicateCategory)
	assert.Equal(t, []string{"Voal"}, s.Categories())

	_, err = s.AddCategory(" ")
	assert.ErrorIs(t, err, ErrBlankName)
}

func TestRenameCategory_CascadesToProducts(t *testing.T) {
	s := New(Options{})

	_, err := s.RenameCategory("Premium Silk", "Silk Satin")
	require.NoError(t, err)

	assert.Equal(t, []string{"Silk Satin", "Cotton Voile", "Chiffon", "Jersey", "Pashmina"}, s.Categories())
	for _, id := range []string{"1", "3"} {
		p, _ := s.Product(id)
		assert.Equal(t, "Silk Satin", p.Category)
	}
	for _, p := range s.Products() {
		assert.NotEqual(t, "Premium Silk", p.Category)
	}
}

func TestRenameCategory_Errors(t *testing.T) {
	s := New(Options{})
	before := s.Snapshot()

	_, err := s.RenameCategory("Premium Silk", "Chiffon")
	assert.ErrorIs(t, err, ErrDuplicateCategory)
	_, err = s.RenameCategory("Nope", "Other")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	_, err = s.RenameCategory("Jersey", "")
	assert.ErrorIs(t, err, ErrBlankName)
	_, err = s.RenameCategory("Jersey", "Jersey")
	assert.NoError(t, err)

	assert.Equal(t, before, s.Snapshot())
}

func TestDeleteCategory_RefusesWhileInUse(t *testing.T) {
	s := New(Options{})

	_, err := s.DeleteCategory("Premium Silk")

	re, ok := IsReferenceError(err)
	require.True(t, ok)
	assert.Equal(t, "category", re.Kind)
	assert.Equal(t, "Premium Silk", re.Name)
	assert.Equal(t, 2, re.Count)
	assert.Contains(t, s.Categories(), "Premium Silk")
}

func TestDeleteCategory_Unused(t *testing.T) {
	s := New(Options{})
	_, err := s.AddCategory("Voal")
	require.NoError(t, err)

	_, err = s.DeleteCategory("Voal")
	require.NoError(t, err)
	assert.NotContains(t, s.Categories(), "Voal")

	_, err = s.DeleteCategory("Voal")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestForceDeleteCategory_LeavesDanglingReferences(t *testing.T) {
	s := New(Options{})

	_, err := s.ForceDeleteCategory("Jersey")
	require.NoError(t, err)

	assert.NotContains(t, s.Categories(), "Jersey")
	p, _ := s.Product("5")
	assert.Equal(t, "Jersey", p.Category)
	assert.Empty(t, s.FilterProducts(ProductFilter{Category: "Nonexistent"}))
	assert.Len(t, s.FilterProducts(ProductFilter{Category: "Jersey"}), 1)
}

func TestCategoriesWithUsage(t *testing.T) {
	s := New(Options{})

	usage := s.CategoriesWithUsage()

	assert.Equal(t, models.CategoryUsage{Name: "Premium Silk", Count: 2}, usage[0])
	assert.Equal(t, models.CategoryUsage{Name: "Cotton Voile", Count: 1}, usage[1])
	assert.Equal(t, 2, s.CategoryUsage("Premium Silk"))
	assert.Equal(t, 0, s.CategoryUsage("Nope"))
}
