package domain

import "time"

// Student is a registered face-recognition profile. It is distinct from any
// login-account concept: the only thing it carries is what verification
// needs — a display name and the enrollment images saved on disk.
type Student struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FacePaths  []string  `json:"face_paths"`
	EnrolledAt time.Time `json:"registered_at"`
}

// Verification is the outcome of matching a probe image against one
// student's stored enrollment images. It is transient: nothing persists it.
type Verification struct {
	Verified    bool    `json:"verified"`
	Confidence  float64 `json:"confidence"`
	StudentName string  `json:"student_name,omitempty"`
	Message     string  `json:"message"`
}

// Verification result messages. Each of these is a normal outcome carried
// in a 200 response, never an error.
const (
	MsgNoFaceDetected  = "No face detected in image"
	MsgStudentNotFound = "Student not found"
	MsgNoTrainableData = "No trainable face data"
	MsgFaceVerified    = "Face verified"
	MsgFaceNoMatch     = "Face does not match"
)
