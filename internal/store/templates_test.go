package store

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patternImage(shade uint8) image.Image {
	img := image.NewGray(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetGray(x, y, color.Gray{Y: shade + uint8(x)})
		}
	}
	return img
}

func TestSaveAndLoadAll(t *testing.T) {
	s := NewTemplateStore(t.TempDir())

	path, err := s.Save("s1", 0, patternImage(10))
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, "face_0.jpg", filepath.Base(path))

	_, err = s.Save("s1", 1, patternImage(50))
	require.NoError(t, err)

	images := s.LoadAll("s1")
	require.Len(t, images, 2)
	for _, img := range images {
		assert.Equal(t, 32, img.Bounds().Dx())
	}
}

func TestLoadAll_UnknownStudent(t *testing.T) {
	s := NewTemplateStore(t.TempDir())
	assert.Empty(t, s.LoadAll("nobody"))
}

func TestLoadAll_SkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewTemplateStore(dir)

	_, err := s.Save("s1", 0, patternImage(10))
	require.NoError(t, err)

	// A truncated JPEG and a stray file must both be skipped silently.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "s1", "face_1.jpg"), []byte("not a jpeg"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "s1", "notes.txt"), []byte("x"), 0o644))

	images := s.LoadAll("s1")
	assert.Len(t, images, 1)
}

func TestLoadAll_IndexOrder(t *testing.T) {
	s := NewTemplateStore(t.TempDir())

	// Save out of order, including a two-digit index that would sort
	// wrongly as a string.
	for _, idx := range []int{10, 2, 0} {
		_, err := s.Save("s1", idx, patternImage(uint8(idx)))
		require.NoError(t, err)
	}

	images := s.LoadAll("s1")
	require.Len(t, images, 3)

	// Index order 0, 2, 10 shows up as ascending base shades.
	first := images[0].GrayAt(0, 0).Y
	last := images[2].GrayAt(0, 0).Y
	assert.Less(t, first, last)
}

func TestReplace_DiscardsPriorImages(t *testing.T) {
	s := NewTemplateStore(t.TempDir())

	_, err := s.Replace("s1", []image.Image{patternImage(10), patternImage(20), patternImage(30)})
	require.NoError(t, err)
	require.Len(t, s.LoadAll("s1"), 3)

	paths, err := s.Replace("s1", []image.Image{patternImage(99)})
	require.NoError(t, err)
	require.Len(t, paths, 1)

	images := s.LoadAll("s1")
	require.Len(t, images, 1, "re-enrollment must fully replace the stored set")
}

func TestReplace_Empty(t *testing.T) {
	s := NewTemplateStore(t.TempDir())

	_, err := s.Replace("s1", []image.Image{patternImage(1)})
	require.NoError(t, err)

	paths, err := s.Replace("s1", nil)
	require.NoError(t, err)
	assert.Empty(t, paths)
	assert.Empty(t, s.LoadAll("s1"))
}
