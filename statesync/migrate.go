package statesync

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/barinistanbul/storefront/models"
)

// ErrEmptyDocument is returned by Decode for a stored JSON null.
var ErrEmptyDocument = errors.New("stored document is empty")

type storedDocument struct {
	Products   []json.RawMessage    `json:"products"`
	Categories []string             `json:"categories"`
	Colors     []models.ColorOption `json:"colors"`
	Settings   json.RawMessage      `json:"settings"`
	Orders     []models.Order       `json:"orders"`
}

// DecodeOptions controls how missing parts of an older document are filled in.
type DecodeOptions struct {
	// SampleOrders, when set, provides the order log for documents that have none.
	SampleOrders func() []models.Order
}

// Decode reads a stored document written by any earlier version of the storefront.
// Products get the default description, details, shipping text and the fallback color hex
// for fields they lack. Missing categories and colors fall back to the defaults and
// settings are merged field by field over the default settings.
func Decode(body []byte, opts DecodeOptions) (models.AdminData, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return models.AdminData{}, ErrEmptyDocument
	}

	var doc storedDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return models.AdminData{}, fmt.Errorf("decode document: %w", err)
	}

	data := models.AdminData{
		Categories: doc.Categories,
		Colors:     doc.Colors,
		Settings:   models.DefaultSettings(),
		Orders:     doc.Orders,
	}

	if doc.Products == nil {
		data.Products = models.DefaultProducts()
	} else {
		data.Products = make([]models.Product, 0, len(doc.Products))
		for i, raw := range doc.Products {
			p := models.DefaultProduct()
			if err := json.Unmarshal(raw, &p); err != nil {
				return models.AdminData{}, fmt.Errorf("decode product %d: %w", i, err)
			}
			data.Products = append(data.Products, p)
		}
	}

	if data.Categories == nil {
		data.Categories = models.DefaultCategories()
	}
	if data.Colors == nil {
		data.Colors = models.DefaultColors()
	}

	if len(doc.Settings) > 0 && !bytes.Equal(bytes.TrimSpace(doc.Settings), []byte("null")) {
		if err := json.Unmarshal(doc.Settings, &data.Settings); err != nil {
			return models.AdminData{}, fmt.Errorf("decode settings: %w", err)
		}
	}

	if data.Orders == nil {
		if opts.SampleOrders != nil {
			data.Orders = opts.SampleOrders()
		} else {
			data.Orders = []models.Order{}
		}
	}
	for i := range data.Orders {
		if data.Orders[i].Items == nil {
			data.Orders[i].Items = []models.OrderItem{}
		}
	}

	return data, nil
}

// Encode renders the document in the stored layout.
func Encode(data models.AdminData) ([]byte, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return body, nil
}
