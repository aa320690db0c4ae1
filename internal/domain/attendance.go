package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is one append-only ledger entry. Records are keyed by
// student+subject+timestamp and are written independently of whether a
// verification ran beforehand.
type AttendanceRecord struct {
	ID         uuid.UUID `json:"id"`
	StudentID  string    `json:"student_id"`
	Subject    string    `json:"subject"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Status     string    `json:"status"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"-"`
}

// Subject is seeded reference data used to populate course pickers.
type Subject struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

const (
	AttendanceStatusPresent = "present"
	DefaultSubject          = "General"
)
