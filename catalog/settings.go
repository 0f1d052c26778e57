package catalog

import (
	"fmt"

	"github.com/barinistanbul/storefront/dto"
	"github.com/barinistanbul/storefront/models"
	"github.com/barinistanbul/storefront/utils"
)

// UpdateSettings replaces the provided top-level settings. The WhatsApp number is stored in
// the digits-only form wa.me expects.
func (s *Store) UpdateSettings(patch dto.UpdateSettingsDTO) (models.AdminData, error) {
	var wa string
	if patch.WANumber != nil {
		cleaned, ok := utils.CleanWANumber(*patch.WANumber)
		if !ok {
			return s.Snapshot(), fmt.Errorf("%w: %w", ErrValidation, ErrInvalidWANumber)
		}
		wa = cleaned
	}

	return s.mutate("update settings", func(d *models.AdminData) error {
		if patch.WANumber != nil {
			d.Settings.WANumber = wa
		}
		if patch.HeroImage != nil {
			d.Settings.HeroImage = *patch.HeroImage
		}
		if patch.HeroTexts != nil {
			d.Settings.HeroTexts = *patch.HeroTexts
		}
		if patch.SocialLinks != nil {
			d.Settings.SocialLinks = *patch.SocialLinks
		}
		return nil
	})
}

func (s *Store) UpdateHeroTexts(patch dto.UpdateHeroTextsDTO) (models.AdminData, error) {
	return s.mutate("update hero texts", func(d *models.AdminData) error {
		d.Settings.HeroTexts = patch.Apply(d.Settings.HeroTexts)
		return nil
	})
}

func (s *Store) UpdateSocialLinks(patch dto.UpdateSocialLinksDTO) (models.AdminData, error) {
	return s.mutate("update social links", func(d *models.AdminData) error {
		d.Settings.SocialLinks = patch.Apply(d.Settings.SocialLinks)
		return nil
	})
}
