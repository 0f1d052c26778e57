package dto

import "github.com/barinistanbul/storefront/models"

// UpdateSettingsDTO replaces the provided top-level fields. Nested groups given here
// replace the whole group; use the hero and social DTOs to change single fields.
type UpdateSettingsDTO struct {
	WANumber    *string             `json:"waNumber,omitempty"`
	HeroImage   *string             `json:"heroImage,omitempty"`
	HeroTexts   *models.HeroTexts   `json:"heroTexts,omitempty"`
	SocialLinks *models.SocialLinks `json:"socialLinks,omitempty"`
}

type UpdateHeroTextsDTO struct {
	Badge          *string `json:"badge,omitempty"`
	TitleLine1     *string `json:"titleLine1,omitempty"`
	TitleHighlight *string `json:"titleHighlight,omitempty"`
	Subtitle       *string `json:"subtitle,omitempty"`
	CtaText        *string `json:"ctaText,omitempty"`
	CtaSecondary   *string `json:"ctaSecondary,omitempty"`
}

func (d UpdateHeroTextsDTO) Apply(h models.HeroTexts) models.HeroTexts {
	set(&h.Badge, d.Badge)
	set(&h.TitleLine1, d.TitleLine1)
	set(&h.TitleHighlight, d.TitleHighlight)
	set(&h.Subtitle, d.Subtitle)
	set(&h.CtaText, d.CtaText)
	set(&h.CtaSecondary, d.CtaSecondary)
	return h
}

type UpdateSocialLinksDTO struct {
	Instagram *string `json:"instagram,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	Tiktok    *string `json:"tiktok,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
}

func (d UpdateSocialLinksDTO) Apply(l models.SocialLinks) models.SocialLinks {
	set(&l.Instagram, d.Instagram)
	set(&l.Facebook, d.Facebook)
	set(&l.Tiktok, d.Tiktok)
	set(&l.Twitter, d.Twitter)
	return l
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
