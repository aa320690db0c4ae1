// Package detect localizes faces in grayscale images using the pigo
// pixel-intensity-comparison cascade.
package detect

import (
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
)

// Detection tuning constants. These are part of the locator contract: they
// fix the recall/precision tradeoff and are not user-configurable. Scale
// factor 1.1 and shift factor 0.1 mirror the sliding-window step the stored
// enrollment images were validated against; detections below minFaceSize
// pixels or scoring under qualityThreshold are discarded.
const (
	minFaceSize      = 20
	maxFaceSize      = 1000
	shiftFactor      = 0.1
	scaleFactor      = 1.1
	iouThreshold     = 0.2
	qualityThreshold = 5.0
)

// Box is an axis-aligned face bounding box in pixel coordinates.
type Box struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect converts the box to an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Detector wraps an unpacked pigo cascade. A Detector is safe for
// concurrent use: RunCascade does not mutate classifier state.
type Detector struct {
	classifier *pigo.Pigo
}

// NewDetector loads and unpacks a binary cascade file from disk.
func NewDetector(cascadePath string) (*Detector, error) {
	data, err := os.ReadFile(cascadePath)
	if err != nil {
		return nil, fmt.Errorf("read cascade file %s: %w", cascadePath, err)
	}
	return NewDetectorFromBytes(data)
}

// cascadeHeaderSize is the fixed header pigo reads before the tree data.
const cascadeHeaderSize = 16

// NewDetectorFromBytes unpacks a binary cascade already held in memory.
// pigo indexes into the payload without bounds checks, so truncated or
// garbage bytes are caught here and reported as an error instead of a
// panic.
func NewDetectorFromBytes(data []byte) (d *Detector, err error) {
	if len(data) < cascadeHeaderSize {
		return nil, fmt.Errorf("unpack cascade: %d bytes, want at least %d", len(data), cascadeHeaderSize)
	}

	defer func() {
		if r := recover(); r != nil {
			d = nil
			err = fmt.Errorf("unpack cascade: malformed data: %v", r)
		}
	}()

	classifier, err := pigo.NewPigo().Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("unpack cascade: %w", err)
	}
	return &Detector{classifier: classifier}, nil
}

// Locate returns the face boxes found in a grayscale image, in the
// cascade's scan order. The order is not confidence-sorted. An empty slice
// means no face was found; that is a normal outcome, never an error.
func (d *Detector) Locate(gray *image.Gray) []Box {
	bounds := gray.Bounds()
	cols, rows := bounds.Dx(), bounds.Dy()
	if cols == 0 || rows == 0 {
		return nil
	}

	params := pigo.CascadeParams{
		MinSize:     minFaceSize,
		MaxSize:     maxFaceSize,
		ShiftFactor: shiftFactor,
		ScaleFactor: scaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: grayPixels(gray),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := d.classifier.RunCascade(params, 0.0)
	dets = d.classifier.ClusterDetections(dets, iouThreshold)

	boxes := make([]Box, 0, len(dets))
	for _, det := range dets {
		if det.Q < qualityThreshold {
			continue
		}
		half := det.Scale / 2
		boxes = append(boxes, Box{
			X:      det.Col - half,
			Y:      det.Row - half,
			Width:  det.Scale,
			Height: det.Scale,
		})
	}

	return boxes
}

// grayPixels flattens a grayscale image into the row-major byte slice pigo
// expects. The Pix slice is reused when the stride already matches.
func grayPixels(gray *image.Gray) []uint8 {
	bounds := gray.Bounds()
	cols, rows := bounds.Dx(), bounds.Dy()

	if gray.Stride == cols && bounds.Min == image.Pt(0, 0) {
		return gray.Pix
	}

	pixels := make([]uint8, cols*rows)
	for y := 0; y < rows; y++ {
		copy(pixels[y*cols:(y+1)*cols], gray.Pix[y*gray.Stride:y*gray.Stride+cols])
	}
	return pixels
}
