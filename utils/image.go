package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
)

// ImageOptimizer shrinks large uploads before they are stored.
type ImageOptimizer struct {
	MaxDimension int
	JPEGQuality  int
}

// Optimize fits JPEG and PNG images inside MaxDimension x MaxDimension and re-encodes them in
// their original format. Other formats, undecodable data and images that already fit are
// returned unchanged with changed set to false.
func (o ImageOptimizer) Optimize(data []byte, contentType string) (out []byte, changed bool, err error) {
	if o.MaxDimension <= 0 || (contentType != "image/jpeg" && contentType != "image/png") {
		return data, false, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, false, nil
	}
	bounds := img.Bounds()
	if bounds.Dx() <= o.MaxDimension && bounds.Dy() <= o.MaxDimension {
		return data, false, nil
	}

	resized := imaging.Fit(img, o.MaxDimension, o.MaxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, resized)
	default:
		quality := o.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = 85
		}
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality})
	}
	if err != nil {
		return data, false, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return buf.Bytes(), true, nil
}
