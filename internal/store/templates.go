// Package store persists enrollment face images on disk, one directory per
// student. The directory is the unit of storage: enrollment replaces it
// wholesale and there is no single-image delete.
package store

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/eduface-labs/eduface/internal/imaging"
)

// jpegQuality is fixed: templates are compared repeatedly, and 85 keeps
// compression artifacts below what the pattern coding is sensitive to.
const jpegQuality = 85

const filePrefix = "face_"

// TemplateStore stores enrollment images under baseDir/<student_id>/face_<i>.jpg.
type TemplateStore struct {
	baseDir string
}

func NewTemplateStore(baseDir string) *TemplateStore {
	return &TemplateStore{baseDir: baseDir}
}

// Save writes one enrollment image for a student at the given index and
// returns the path it was written to.
func (s *TemplateStore) Save(studentID string, index int, img image.Image) (string, error) {
	dir := s.studentDir(studentID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create student dir: %w", err)
	}

	data, err := imaging.EncodeJPEG(img, jpegQuality)
	if err != nil {
		return "", fmt.Errorf("encode face image: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s%d.jpg", filePrefix, index))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write face image: %w", err)
	}
	return path, nil
}

// Replace wipes whatever was stored for the student and saves the given
// images in order. Prior images stop existing: re-enrollment is a full
// replace, not a merge.
func (s *TemplateStore) Replace(studentID string, images []image.Image) ([]string, error) {
	if err := os.RemoveAll(s.studentDir(studentID)); err != nil {
		return nil, fmt.Errorf("clear student dir: %w", err)
	}

	paths := make([]string, 0, len(images))
	for i, img := range images {
		path, err := s.Save(studentID, i, img)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// LoadAll reads back every stored image for a student as grayscale, in
// index order. Files that fail to load are skipped silently; partial
// corruption degrades the template instead of failing verification. A
// missing directory yields an empty slice.
func (s *TemplateStore) LoadAll(studentID string) []*image.Gray {
	entries, err := os.ReadDir(s.studentDir(studentID))
	if err != nil {
		return nil
	}

	type indexed struct {
		index int
		name  string
	}
	var files []indexed
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		idx, ok := parseIndex(entry.Name())
		if !ok {
			continue
		}
		files = append(files, indexed{index: idx, name: entry.Name()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].index < files[j].index })

	images := make([]*image.Gray, 0, len(files))
	for _, f := range files {
		img, err := loadImage(filepath.Join(s.studentDir(studentID), f.name))
		if err != nil {
			continue
		}
		images = append(images, imaging.ToGray(img))
	}
	return images
}

func (s *TemplateStore) studentDir(studentID string) string {
	return filepath.Join(s.baseDir, studentID)
}

func parseIndex(name string) (int, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, ".jpg") {
		return 0, false
	}
	idx, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), ".jpg"))
	if err != nil {
		return 0, false
	}
	return idx, true
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	return img, err
}
