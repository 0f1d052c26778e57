package models

// AdminData is the whole persisted document. The blob store only ever reads or writes it in one piece.
type AdminData struct {
	Products   []Product     `json:"products"`
	Categories []string      `json:"categories"`
	Colors     []ColorOption `json:"colors"`
	Settings   SiteSettings  `json:"settings"`
	Orders     []Order       `json:"orders"`
}

// Clone returns a deep copy. Snapshots handed out by the catalog never share backing arrays
// with the live state.
func (d AdminData) Clone() AdminData {
	out := AdminData{
		Products:   append(make([]Product, 0, len(d.Products)), d.Products...),
		Categories: append(make([]string, 0, len(d.Categories)), d.Categories...),
		Colors:     append(make([]ColorOption, 0, len(d.Colors)), d.Colors...),
		Settings:   d.Settings,
		Orders:     make([]Order, 0, len(d.Orders)),
	}
	for _, o := range d.Orders {
		o.Items = append(make([]OrderItem, 0, len(o.Items)), o.Items...)
		out.Orders = append(out.Orders, o)
	}
	return out
}
