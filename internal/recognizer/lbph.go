// Package recognizer implements a local-binary-pattern histogram face
// matcher. Faces are normalized to a fixed grid, coded with 8-neighbor
// binary patterns, and compared by chi-square distance between spatial
// histograms. The matcher is single-class: it is trained on one person's
// face crops and answers "how far is this probe from the nearest training
// sample", with no negative class involved.
package recognizer

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"
)

const (
	// sampleSize is the edge length face crops are scaled to before
	// pattern coding, so histograms are comparable across crop sizes.
	sampleSize = 128

	// gridX by gridY spatial cells, each contributing a 256-bin
	// histogram of pattern codes.
	gridX = 8
	gridY = 8
	bins  = 256
)

// ErrNoTrainingSamples is returned by Train when no usable face crops were
// supplied.
var ErrNoTrainingSamples = errors.New("recognizer: no training samples")

// Recognizer holds the spatial histograms of the training samples. A
// Recognizer is built fresh per verification call and discarded afterwards;
// it is not safe for concurrent Train calls but Predict is read-only.
type Recognizer struct {
	histograms [][]float64
}

// New returns an untrained Recognizer.
func New() *Recognizer {
	return &Recognizer{}
}

// Train codes every sample into a spatial pattern histogram. All samples
// are assumed to belong to the same single class.
func (r *Recognizer) Train(samples []*image.Gray) error {
	if len(samples) == 0 {
		return ErrNoTrainingSamples
	}

	r.histograms = make([][]float64, 0, len(samples))
	for _, sample := range samples {
		r.histograms = append(r.histograms, spatialHistogram(sample))
	}
	return nil
}

// TrainedSamples reports how many samples the recognizer was trained on.
func (r *Recognizer) TrainedSamples() int {
	return len(r.histograms)
}

// Predict returns the chi-square distance between the probe and the nearest
// training sample. Zero means an exact histogram match. With normalized
// cell histograms the distance ranges 0..2*gridX*gridY; in practice crops
// of the same face land well under the distance that maps to the default
// decision threshold, while unrelated textures land far above it.
func (r *Recognizer) Predict(probe *image.Gray) (float64, error) {
	if len(r.histograms) == 0 {
		return 0, ErrNoTrainingSamples
	}

	probeHist := spatialHistogram(probe)

	best := chiSquare(r.histograms[0], probeHist)
	for _, hist := range r.histograms[1:] {
		if d := chiSquare(hist, probeHist); d < best {
			best = d
		}
	}
	return best, nil
}

// Confidence converts a chi-square distance into the 0-100 similarity score
// the verification policy thresholds on. Higher means more similar.
func Confidence(distance float64) float64 {
	c := 100 - distance
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}

// spatialHistogram normalizes a face crop to sampleSize and returns the
// concatenated per-cell histograms of its local binary patterns.
func spatialHistogram(face *image.Gray) []float64 {
	norm := resizeGray(face, sampleSize, sampleSize)
	codes := lbpCodes(norm)

	cellW := sampleSize / gridX
	cellH := sampleSize / gridY

	hist := make([]float64, gridX*gridY*bins)
	cellTotal := float64(cellW * cellH)

	for y := 0; y < sampleSize; y++ {
		cy := y / cellH
		for x := 0; x < sampleSize; x++ {
			cx := x / cellW
			cell := cy*gridX + cx
			hist[cell*bins+int(codes[y*sampleSize+x])]++
		}
	}

	for i := range hist {
		hist[i] /= cellTotal
	}
	return hist
}

// lbpCodes computes the 8-neighbor radius-1 binary pattern code for every
// pixel. Border pixels compare against clamped coordinates, so flat borders
// produce the all-ones code rather than noise.
func lbpCodes(g *image.Gray) []uint8 {
	w := g.Bounds().Dx()
	h := g.Bounds().Dy()
	codes := make([]uint8, w*h)

	at := func(x, y int) uint8 {
		if x < 0 {
			x = 0
		} else if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		} else if y >= h {
			y = h - 1
		}
		return g.Pix[y*g.Stride+x]
	}

	// Neighbors clockwise from top-left.
	offsets := [8][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{1, 0}, {1, 1}, {0, 1},
		{-1, 1}, {-1, 0},
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			center := g.Pix[y*g.Stride+x]
			var code uint8
			for bit, off := range offsets {
				if at(x+off[0], y+off[1]) >= center {
					code |= 1 << uint(bit)
				}
			}
			codes[y*w+x] = code
		}
	}
	return codes
}

// chiSquare is the symmetric chi-square distance between two histograms of
// equal length.
func chiSquare(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		if total := a[i] + b[i]; total > 0 {
			sum += diff * diff / total
		}
	}
	return sum
}

// resizeGray scales a grayscale image to the given dimensions with
// bilinear interpolation.
func resizeGray(src *image.Gray, w, h int) *image.Gray {
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		return src
	}
	dst := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
