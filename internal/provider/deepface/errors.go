package deepface

import "errors"

var (
	// ErrUnavailable means the DeepFace server could not be reached after
	// retries.
	ErrUnavailable = errors.New("deepface service unavailable")

	// ErrInvalidResponse means the server answered with a body the client
	// could not parse.
	ErrInvalidResponse = errors.New("invalid deepface response")

	// ErrNoResults means analysis returned no face results.
	ErrNoResults = errors.New("deepface returned no results")
)
