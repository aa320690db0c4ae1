package domain

import (
	"fmt"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Err:        err,
	}
}

// Pre-defined errors
//
// Note that "no face detected", "student not found" and "below threshold"
// are NOT errors: verification reports them as normal verified=false
// results. Only malformed requests and unexpected internal failures land
// here.
var (
	ErrInternal = &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		StatusCode: 500,
	}

	ErrValidationFailed = &AppError{
		Code:       "VALIDATION_FAILED",
		Message:    "Request validation failed",
		StatusCode: 400,
	}

	ErrNoImagesProvided = &AppError{
		Code:       "NO_IMAGES_PROVIDED",
		Message:    "No face images provided",
		StatusCode: 400,
	}

	ErrTooManyImages = &AppError{
		Code:       "TOO_MANY_IMAGES",
		Message:    "Too many face images provided",
		StatusCode: 400,
	}

	ErrNoImageProvided = &AppError{
		Code:       "NO_IMAGE_PROVIDED",
		Message:    "No image provided",
		StatusCode: 400,
	}

	ErrStudentIDRequired = &AppError{
		Code:       "STUDENT_ID_REQUIRED",
		Message:    "Student ID required",
		StatusCode: 400,
	}

	ErrInvalidImage = &AppError{
		Code:       "INVALID_IMAGE",
		Message:    "Invalid image format or corrupted payload",
		StatusCode: 400,
	}

	ErrCascadeUnavailable = &AppError{
		Code:       "CASCADE_UNAVAILABLE",
		Message:    "Face detection cascade could not be loaded",
		StatusCode: 500,
	}

	ErrMoodProviderFailed = &AppError{
		Code:       "MOOD_PROVIDER_FAILED",
		Message:    "Emotion analysis provider failed",
		StatusCode: 502,
	}
)
