// Package imaging decodes the image blobs clients submit and converts them
// into the pixel forms the detection pipeline works on.
package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"

	"github.com/eduface-labs/eduface/internal/domain"
)

// DecodeDataURL decodes a base64 image blob into an image.Image. The blob
// may carry a data-URL prefix ("data:image/jpeg;base64,...."); everything up
// to and including the first comma is stripped before decoding, matching the
// format browser capture widgets produce.
func DecodeDataURL(blob string) (image.Image, error) {
	raw, err := DecodeDataURLBytes(blob)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, domain.ErrInvalidImage.WithError(err)
	}

	return img, nil
}

// DecodeDataURLBytes strips any data-URL prefix and returns the raw encoded
// image bytes without decoding the raster. Callers that forward the image
// to an external analyzer use this to validate transport encoding only.
func DecodeDataURLBytes(blob string) ([]byte, error) {
	if i := strings.IndexByte(blob, ','); i >= 0 {
		blob = blob[i+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(blob))
	if err != nil {
		return nil, domain.ErrInvalidImage.WithError(err)
	}

	return raw, nil
}

// ToGray converts any decoded image to 8-bit grayscale.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}

	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
	return gray
}

// CropGray returns the region of g inside rect as a standalone grayscale
// image. Pixels outside g are clipped away.
func CropGray(g *image.Gray, rect image.Rectangle) *image.Gray {
	rect = rect.Intersect(g.Bounds())
	out := image.NewGray(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(out, out.Bounds(), g, rect.Min, draw.Src)
	return out
}

// EncodeJPEG encodes an image as JPEG at the given quality.
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
