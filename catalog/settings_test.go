package catalog

import (
	"testing"

	"github.com/barinistanbul/storefront/dto"
	"github.com/barinistanbul/storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettings_CleansWANumber(t *testing.T) {
	s := New(Options{})

	_, err := s.UpdateSettings(dto.UpdateSettingsDTO{WANumber: ptr("+62 812-3456-7890"), HeroImage: ptr("https://cdn.example.com/hero.jpg")})

	require.NoError(t, err)
	assert.Equal(t, "6281234567890", s.Settings().WANumber)
	assert.Equal(t, "https://cdn.example.com/hero.jpg", s.Settings().HeroImage)
	assert.Equal(t, models.DefaultSettings().HeroTexts, s.Settings().HeroTexts)
}

func TestUpdateSettings_RejectsInvalidWANumber(t *testing.T) {
	s := New(Options{})

	_, err := s.UpdateSettings(dto.UpdateSettingsDTO{WANumber: ptr("call me")})

	assert.ErrorIs(t, err, ErrInvalidWANumber)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "6281234567890", s.Settings().WANumber)
}

func TestUpdateHeroTexts_MergesFields(t *testing.T) {
	s := New(Options{})

	_, err := s.UpdateHeroTexts(dto.UpdateHeroTextsDTO{Badge: ptr("✦ NEW"), CtaText: ptr("Belanja")})

	require.NoError(t, err)
	h := s.Settings().HeroTexts
	assert.Equal(t, "✦ NEW", h.Badge)
	assert.Equal(t, "Belanja", h.CtaText)
	assert.Equal(t, "Istanbul", h.TitleHighlight)
}

func TestUpdateSocialLinks_EmptyHidesLink(t *testing.T) {
	s := New(Options{})

	_, err := s.UpdateSocialLinks(dto.UpdateSocialLinksDTO{Twitter: ptr("")})

	require.NoError(t, err)
	assert.Equal(t, "", s.Settings().SocialLinks.Twitter)
	assert.Equal(t, "https://instagram.com/barinistanbul", s.Settings().SocialLinks.Instagram)
}

func TestAddOrder_AppendsInOrder(t *testing.T) {
	s := New(Options{})

	_, err := s.AddOrder(models.Order{ID: "a"})
	require.NoError(t, err)
	_, err = s.AddOrder(models.Order{ID: "b"})
	require.NoError(t, err)

	orders := s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "a", orders[0].ID)
	assert.Equal(t, "b", orders[1].ID)
}
