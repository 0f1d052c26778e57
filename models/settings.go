package models

type HeroTexts struct {
	Badge          string `json:"badge"`
	TitleLine1     string `json:"titleLine1"`
	TitleHighlight string `json:"titleHighlight"`
	Subtitle       string `json:"subtitle"`
	CtaText        string `json:"ctaText"`
	CtaSecondary   string `json:"ctaSecondary"`
}

// SocialLinks holds profile URLs. An empty link is not shown on the storefront.
type SocialLinks struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Tiktok    string `json:"tiktok"`
	Twitter   string `json:"twitter"`
}

// SiteSettings is the storefront configuration editable from the admin panel.
// WANumber is digits only in international format, without a leading "+".
type SiteSettings struct {
	WANumber    string      `json:"waNumber"`
	HeroTexts   HeroTexts   `json:"heroTexts"`
	HeroImage   string      `json:"heroImage"`
	SocialLinks SocialLinks `json:"socialLinks"`
}
