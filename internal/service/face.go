package service

import (
	"context"
	"image"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/eduface-labs/eduface/internal/detect"
	"github.com/eduface-labs/eduface/internal/domain"
	"github.com/eduface-labs/eduface/internal/imaging"
	"github.com/eduface-labs/eduface/internal/recognizer"
)

// DefaultVerifyThreshold is the decision boundary on the 0-100 confidence
// scale. The comparison is strict: a confidence of exactly the threshold is
// not verified.
const DefaultVerifyThreshold = 40

// DefaultMaxImages bounds enrollment size; every stored image is re-scanned
// on each verify, so an unbounded enrollment makes verification arbitrarily
// slow.
const DefaultMaxImages = 10

// FaceLocator finds face boxes in a grayscale image.
type FaceLocator interface {
	Locate(gray *image.Gray) []detect.Box
}

// TemplateStoreInterface persists enrollment images per student.
type TemplateStoreInterface interface {
	Replace(studentID string, images []image.Image) ([]string, error)
	LoadAll(studentID string) []*image.Gray
}

// StudentRegistryInterface is the in-memory student directory.
type StudentRegistryInterface interface {
	LockStudent(id string) func()
	Put(s *domain.Student)
	Get(id string) (*domain.Student, bool)
}

// FaceService implements enrollment and verification. A verification call
// rebuilds the matcher from the stored images every time; nothing is cached
// between calls, so every verify sees the latest enrollment at the cost of
// repeated training work.
type FaceService struct {
	locator   FaceLocator
	templates TemplateStoreInterface
	students  StudentRegistryInterface
	threshold float64
	maxImages int
}

func NewFaceService(
	locator FaceLocator,
	templates TemplateStoreInterface,
	students StudentRegistryInterface,
) *FaceService {
	return &FaceService{
		locator:   locator,
		templates: templates,
		students:  students,
		threshold: DefaultVerifyThreshold,
		maxImages: DefaultMaxImages,
	}
}

func (s *FaceService) WithThreshold(threshold float64) *FaceService {
	s.threshold = threshold
	return s
}

// WithMaxImages caps how many images a single enrollment may carry.
func (s *FaceService) WithMaxImages(max int) *FaceService {
	s.maxImages = max
	return s
}

// EnrollResult reports what an enrollment call stored.
type EnrollResult struct {
	StudentID   string
	Name        string
	ImagesSaved int
}

// Enroll decodes and stores the submitted images for a student, replacing
// any prior enrollment under the same id. Images are accepted as-is with no
// face-detection gate; an image that contains no detectable face is only
// discovered to be unusable at verify time. At least one image is required,
// and at most the configured maximum.
func (s *FaceService) Enroll(ctx context.Context, studentID, name string, imageBlobs []string) (*EnrollResult, error) {
	if len(imageBlobs) == 0 {
		return nil, domain.ErrNoImagesProvided
	}
	if s.maxImages > 0 && len(imageBlobs) > s.maxImages {
		return nil, domain.ErrTooManyImages
	}

	if studentID == "" {
		studentID = uuid.New().String()
	}
	if name == "" {
		name = "Unknown"
	}

	images := make([]image.Image, 0, len(imageBlobs))
	for _, blob := range imageBlobs {
		img, err := imaging.DecodeDataURL(blob)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	unlock := s.students.LockStudent(studentID)
	defer unlock()

	paths, err := s.templates.Replace(studentID, images)
	if err != nil {
		return nil, domain.ErrInternal.WithError(err)
	}

	s.students.Put(&domain.Student{
		ID:         studentID,
		Name:       name,
		FacePaths:  paths,
		EnrolledAt: time.Now(),
	})

	return &EnrollResult{
		StudentID:   studentID,
		Name:        name,
		ImagesSaved: len(paths),
	}, nil
}

// Verify matches a probe image against one student's stored enrollment.
//
// "No face detected", "student not found" and "no trainable face data" are
// normal verified=false results, not errors; only malformed probes and
// unexpected internal failures return a non-nil error.
//
// Training samples are rebuilt by re-running the locator over each stored
// whole enrollment image. Detection is deliberately lazy: it runs here, not
// at enrollment, trading enrollment-time cost for the possibility that a
// stored image yields no usable face later.
func (s *FaceService) Verify(ctx context.Context, studentID, imageBlob string) (*domain.Verification, error) {
	probe, err := imaging.DecodeDataURL(imageBlob)
	if err != nil {
		return nil, err
	}

	probeGray := imaging.ToGray(probe)
	probeBoxes := s.locator.Locate(probeGray)
	if len(probeBoxes) == 0 {
		return &domain.Verification{
			Verified: false,
			Message:  domain.MsgNoFaceDetected,
		}, nil
	}

	student, found := s.students.Get(studentID)
	if studentID == "" || !found {
		return &domain.Verification{
			Verified: false,
			Message:  domain.MsgStudentNotFound,
		}, nil
	}

	// One training sample per face found in each stored image, all the
	// same single class. No negative class is ever trained.
	var samples []*image.Gray
	for _, stored := range s.templates.LoadAll(student.ID) {
		for _, box := range s.locator.Locate(stored) {
			samples = append(samples, imaging.CropGray(stored, box.Rect()))
		}
	}

	if len(samples) == 0 {
		return &domain.Verification{
			Verified:    false,
			StudentName: student.Name,
			Message:     domain.MsgNoTrainableData,
		}, nil
	}

	rec := recognizer.New()
	if err := rec.Train(samples); err != nil {
		return nil, domain.ErrInternal.WithError(err)
	}

	// The probe region is the first box in the locator's scan order, not
	// necessarily the largest face in frame.
	probeFace := imaging.CropGray(probeGray, probeBoxes[0].Rect())
	distance, err := rec.Predict(probeFace)
	if err != nil {
		return nil, domain.ErrInternal.WithError(err)
	}

	confidence := math.Round(recognizer.Confidence(distance)*10) / 10
	verified := confidence > s.threshold

	message := domain.MsgFaceNoMatch
	if verified {
		message = domain.MsgFaceVerified
	}

	return &domain.Verification{
		Verified:    verified,
		Confidence:  confidence,
		StudentName: student.Name,
		Message:     message,
	}, nil
}
