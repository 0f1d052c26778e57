package models

const (
	DefaultDescription = "Dibuat secara ahli di Bursa, hijab sutra premium ini menawarkan kilau mewah dan kenyamanan bernapas, sempurna untuk iklim tropis."
	DefaultDetails     = "Material: 100% Turkish Silk Satin Premium\nUkuran: S (100×100cm), M (110×110cm), L (115×115cm), XL (120×120cm)\nFinishing: Jahit tepi rapi (Hand-rolled hem)\nOpacity: Tidak menerawang saat dilipat\nCare: Hand wash only, setrika suhu rendah"
	DefaultShipping    = "Pengiriman gratis untuk pesanan di atas Rp 500.000.\nPesanan diproses dalam 1-2 hari kerja.\nGaransi pengembalian 7 hari jika produk cacat atau tidak sesuai."

	// FallbackColorHex is given to stored products that predate the colorHex field.
	FallbackColorHex = "#888888"
)

// DefaultCategories returns a fresh copy of the seed categories.
func DefaultCategories() []string {
	return []string{"Premium Silk", "Cotton Voile", "Chiffon", "Jersey", "Pashmina"}
}

func DefaultColors() []ColorOption {
	return []ColorOption{
		{Name: "Cream", Hex: "#F5E6CA"},
		{Name: "Olive", Hex: "#6B7F3B"},
		{Name: "Black", Hex: "#1a1a1a"},
		{Name: "Pink", Hex: "#D4A0A0"},
		{Name: "Brown", Hex: "#8B6F47"},
		{Name: "Grey", Hex: "#808080"},
		{Name: "White", Hex: "#FFFFFF"},
		{Name: "Navy", Hex: "#1B2A4A"},
		{Name: "Maroon", Hex: "#800000"},
		{Name: "Sage", Hex: "#9CAF88"},
	}
}

// DefaultProduct is the back-fill base for a stored product. Stored fields are decoded on top of it.
func DefaultProduct() Product {
	return Product{
		ColorHex:     FallbackColorHex,
		Description:  DefaultDescription,
		Details:      DefaultDetails,
		ShippingInfo: DefaultShipping,
	}
}

func DefaultProducts() []Product {
	return []Product{
		{
			ID:           "1",
			Name:         "Medina Silk - Sand Beige",
			Price:        189000,
			Image:        "https://lh3.googleusercontent.com/aida-public/AB6AXuA8TEk6sJg4hW6ZuCzNxoDQ-GuBIpZwKC_YpsF64sud-KrsMGeKkwz4eBnNcO04V1KelzvS1-WceJ42GtoLVgYfAHCSiVojX8q4I4buDsPQtQ14iXmsuRQYMMUeo2x_bmkoMYzS3rCS4NsUr3ZFZntwddKlDh0MCXGAq69cQqsyCNUJ3gOz9TpL0Sq_qcrvcvc8a-SIKRt3QVQEzFByuqryabeHzq--xDvhpceGpDIQlVUYy3c7zWH1aU7d6aRFsLs_uutGzOPpceo",
			Category:     "Premium Silk",
			Color:        "Cream",
			ColorHex:     "#F5E6CA",
			Stock:        50,
			Description:  DefaultDescription,
			Details:      DefaultDetails,
			ShippingInfo: DefaultShipping,
		},
		{
			ID:           "2",
			Name:         "Anatolia Cotton - Olive",
			Price:        145000,
			Image:        "https://lh3.googleusercontent.com/aida-public/AB6AXuC8BC5ENrWeerV9EQpnnbaTxquSEr5ftMt9mc1fctCnbOJaZ8JfyITfHyC7DLUKeMqLa9N3sNsZVeaDY4T5AO0O4CRgeHXfkdjZ9_78ymb24c831oZ-_kutmFHq3JVZoRzOzxrT65xF4azo72Q8Xb2JqsDz0b3772k0mEoRkrUxlsMCJuv4AB8jWVw6mTOF5_HtP-_QlPvfEUUnGTp6TfOkbRXhE-zCy7yACFxeWnkjDjCZ6siGJCF5f9LIvKxLsQw-AXPpikaicpY",
			Category:     "Cotton Voile",
			Color:        "Olive",
			ColorHex:     "#6B7F3B",
			Stock:        35,
			Description:  DefaultDescription,
			Details:      DefaultDetails,
			ShippingInfo: DefaultShipping,
		},
		{
			ID:           "3",
			Name:         "Istanbul Night - Black",
			Price:        225000,
			Image:        "https://lh3.googleusercontent.com/aida-public/AB6AXuDOhovW7tT4YGhZ2-KLa5IgHRxRsBh4d9C4oGkxHQtB4qKXGWsvYmvPBxJQVtOmd2GEnoOcMrgt1_z67mew5MueIBZ5vufjUE46IN1Mcdi2fY4C89KdZp5cTdNqRxhwfmOwQD4VM6wC1P_b5PrMzrgQc06YHrjHZ162FR3yDuYlpxPIEWaYciYBeUQR5-mQc9SPQJSZJOsOI_Ii194a-EVddtle_6P_kxXGMYMrTQybBD7xM4J4xSiLLDW1yA6gXuurtmRt5v9Six8",
			Category:     "Premium Silk",
			Color:        "Black",
			ColorHex:     "#1a1a1a",
			Stock:        25,
			Description:  DefaultDescription,
			Details:      DefaultDetails,
			ShippingInfo: DefaultShipping,
		},
		{
			ID:           "4",
			Name:         "Rose Quartz Pleated",
			Price:        165000,
			Image:        "https://lh3.googleusercontent.com/aida-public/AB6AXuCHaPRRxEbh2T263cDLb7Cm2pV9H8-R-3BrAerslY5B3sSgBt1z0Sxpoq97gw7olS8UbdG_oebYH_qVDndoVdCLuny6mnCyOnu8xiL4H7VUFoYLdq7nl1z0FlOUxBbvQDdS_TfVyO9BppTtm0LXO0VNlJbDel43dzL_fzcv-lT9931M6LtDPSrG_41ox41OjTeH-v6GdiXnn4qW1UB4CegK0LbQXrvym6mtfL1cTIfgHQcvnNzaqGor3zAbLzBjxeSO8VubLIH2yvk",
			Category:     "Chiffon",
			Color:        "Pink",
			ColorHex:     "#D4A0A0",
			Stock:        40,
			Description:  DefaultDescription,
			Details:      DefaultDetails,
			ShippingInfo: DefaultShipping,
		},
		{
			ID:           "5",
			Name:         "Terra Cotta Basic",
			Price:        135000,
			Image:        "https://lh3.googleusercontent.com/aida-public/AB6AXuD-wP9sPE9Ro9ZhXgowLqKmiV7CG7fAXDZe6orDRlKMRI7mRTgnq6y3tr9iGFznryrftaOCJv1RHqOMFdy9gZyvvWnH5ujYMehnbqYVYpki4zZ5phNs5A4DzndsenTiRnnfrvwOBk2tTqXnwuPPCcp87lUA29W8fUqO6rEhpFHXgnHTkYMIWXwm0YyNTtgk4AxP5QzMAIeVUsSByiSILQMaa4yNTIvABEsBtZJN0vP6uxqYeZS9hPvzWHKsk-mPPLGkGcNxby6Xw5U",
			Category:     "Jersey",
			Color:        "Brown",
			ColorHex:     "#8B6F47",
			Stock:        60,
			Description:  DefaultDescription,
			Details:      DefaultDetails,
			ShippingInfo: DefaultShipping,
		},
		{
			ID:           "6",
			Name:         "Bosphorus Breeze - Floral",
			Price:        210000,
			Image:        "https://lh3.googleusercontent.com/aida-public/AB6AXuDXg8KbYbIP_hgskJyRjygXi7ARFjPr_EMwiiNTlSxWcqSU7RgpGtLnY2OidnBJEcNRGj9uaEqsiVKoEFVQUU2zx7NPOt6adZXME-P1cfU3iOdYd2-O70iqhmSsPyCMuouUSHchvcIOIeIHMTi89vPmithiPalJDH_RnnhldJmSZ80tthY5H6VxI_VFbxUXQvlsSgTx0i4l6WdQn2VvILS25nejbUAyZL64Vm2MeFTSBlt7DmvaNTQ4FjR9SO3ckVZDZOy_GZttQT0",
			Category:     "Pashmina",
			Color:        "Cream",
			ColorHex:     "#F5E6CA",
			Stock:        30,
			Description:  DefaultDescription,
			Details:      DefaultDetails,
			ShippingInfo: DefaultShipping,
		},
	}
}

func DefaultSettings() SiteSettings {
	return SiteSettings{
		WANumber: "6281234567890",
		HeroTexts: HeroTexts{
			Badge:          "✦ PREMIUM TURKISH HIJAB",
			TitleLine1:     "Elegansi dari",
			TitleHighlight: "Istanbul",
			Subtitle:       "Koleksi hijab premium kami ditenun dengan sutra terbaik Turki, menghadirkan keanggunan yang tak lekang oleh waktu untuk wanita Indonesia modern.",
			CtaText:        "Jelajahi Koleksi",
			CtaSecondary:   "Lihat Katalog",
		},
		HeroImage: "",
		SocialLinks: SocialLinks{
			Instagram: "https://instagram.com/barinistanbul",
			Facebook:  "https://facebook.com/barinistanbul",
			Tiktok:    "https://tiktok.com/@barinistanbul",
			Twitter:   "https://twitter.com/barinistanbul",
		},
	}
}

// DefaultAdminData is the document a fresh process serves until a stored one is loaded.
func DefaultAdminData() AdminData {
	return AdminData{
		Products:   DefaultProducts(),
		Categories: DefaultCategories(),
		Colors:     DefaultColors(),
		Settings:   DefaultSettings(),
		Orders:     []Order{},
	}
}
