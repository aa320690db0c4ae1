package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
	"github.com/go-swagno/swagno/components/parameter"
)

// RegisterFaceRequest is the enrollment request body
type RegisterFaceRequest struct {
	StudentID string   `json:"student_id" example:"stu-2024-001"`
	Name      string   `json:"name" example:"Ada Lovelace"`
	Images    []string `json:"images"`
}

// RegisterFaceResponse represents the response for a successful enrollment
type RegisterFaceResponse struct {
	Success     bool   `json:"success" example:"true"`
	StudentID   string `json:"student_id" example:"stu-2024-001"`
	Message     string `json:"message" example:"Face registered for Ada Lovelace"`
	ImagesSaved int    `json:"images_saved" example:"3"`
}

// VerifyFaceRequest is the verification request body
type VerifyFaceRequest struct {
	StudentID string `json:"student_id" example:"stu-2024-001"`
	Image     string `json:"image"`
}

// VerifyFaceResponse represents the response for face verification
type VerifyFaceResponse struct {
	Verified    bool    `json:"verified" example:"true"`
	Confidence  float64 `json:"confidence" example:"72.4"`
	StudentName string  `json:"student_name,omitempty" example:"Ada Lovelace"`
	Message     string  `json:"message" example:"Face verified"`
}

// MarkAttendanceRequest is the attendance mark request body
type MarkAttendanceRequest struct {
	StudentID string `json:"student_id" example:"stu-2024-001"`
	Subject   string `json:"subject" example:"Mathematics"`
}

// AttendanceRecordData is one ledger entry
type AttendanceRecordData struct {
	ID         string  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	StudentID  string  `json:"student_id" example:"stu-2024-001"`
	Subject    string  `json:"subject" example:"Mathematics"`
	Date       string  `json:"date" example:"2026-03-15"`
	Time       string  `json:"time" example:"09:30:05"`
	Status     string  `json:"status" example:"present"`
	Confidence float64 `json:"confidence" example:"92.5"`
}

// MarkAttendanceResponse represents the response for marking attendance
type MarkAttendanceResponse struct {
	Success    bool                 `json:"success" example:"true"`
	Attendance AttendanceRecordData `json:"attendance"`
	Message    string               `json:"message" example:"Attendance marked for Mathematics"`
}

// ListAttendanceResponse represents the attendance listing response
type ListAttendanceResponse struct {
	Success bool                   `json:"success" example:"true"`
	Records []AttendanceRecordData `json:"records"`
	Count   int                    `json:"count" example:"2"`
}

// SubjectData is one seeded subject
type SubjectData struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"Mathematics"`
}

// ListSubjectsResponse represents the subject catalog response
type ListSubjectsResponse struct {
	Success  bool          `json:"success" example:"true"`
	Subjects []SubjectData `json:"subjects"`
}

// AnalyzeMoodRequest is the mood analysis request body
type AnalyzeMoodRequest struct {
	Image string `json:"image"`
}

// AnalyzeMoodResponse represents the mood analysis response
type AnalyzeMoodResponse struct {
	Success         bool               `json:"success" example:"true"`
	DominantEmotion string             `json:"dominant_emotion" example:"happy"`
	Emotions        map[string]float64 `json:"emotions"`
	RiskLevel       string             `json:"risk_level" example:"low"`
	Confidence      float64            `json:"confidence" example:"62.4"`
	Note            string             `json:"note,omitempty"`
}

// HealthData represents the health check response
type HealthData struct {
	Status    string `json:"status" example:"ok"`
	Service   string `json:"service" example:"EduFace API"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2026-03-15T09:30:05Z"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    string `json:"code" example:"VALIDATION_FAILED"`
	Message string `json:"message" example:"Request validation failed"`
}

func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "EduFace API",
		Version:     "v1.0.0",
		Description: "Face enrollment, verification, attendance and mood analysis API for student attendance tracking",
		Host:        "localhost:5000",
		Path:        "/api",
	})

	endpoints := []*endpoint.EndPoint{
		// GET /api/health - Health check
		endpoint.New(
			endpoint.GET,
			"/health",
			endpoint.WithTags("Health"),
			endpoint.WithSummary("Health check"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthData{}, "200", "Service is healthy"),
			}),
		),

		// POST /api/face/register - Enroll face images
		endpoint.New(
			endpoint.POST,
			"/face/register",
			endpoint.WithTags("Faces"),
			endpoint.WithSummary("Register a student's face"),
			endpoint.WithDescription("Stores the submitted base64 face images for the student, replacing any prior enrollment under the same id."),
			endpoint.WithBody(RegisterFaceRequest{}),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(RegisterFaceResponse{}, "200", "Face registered successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "NO_IMAGES_PROVIDED", Message: "No face images provided"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "TOO_MANY_IMAGES", Message: "Too many face images provided"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "INVALID_IMAGE", Message: "Image could not be decoded"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// POST /api/face/verify - Verify a probe image
		endpoint.New(
			endpoint.POST,
			"/face/verify",
			endpoint.WithTags("Faces"),
			endpoint.WithSummary("Verify a face against an enrollment"),
			endpoint.WithDescription("Compares the probe image against the student's stored enrollment. Negative outcomes (no face, unknown student, no match) are 200 responses with verified=false."),
			endpoint.WithBody(VerifyFaceRequest{}),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(VerifyFaceResponse{}, "200", "Verification completed"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "NO_IMAGE_PROVIDED", Message: "No image provided"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "INVALID_IMAGE", Message: "Image could not be decoded"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// POST /api/attendance/mark - Mark attendance
		endpoint.New(
			endpoint.POST,
			"/attendance/mark",
			endpoint.WithTags("Attendance"),
			endpoint.WithSummary("Mark attendance for a student"),
			endpoint.WithBody(MarkAttendanceRequest{}),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(MarkAttendanceResponse{}, "200", "Attendance marked"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "STUDENT_ID_REQUIRED", Message: "Student ID required"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// GET /api/attendance - List attendance records
		endpoint.New(
			endpoint.GET,
			"/attendance",
			endpoint.WithTags("Attendance"),
			endpoint.WithSummary("List attendance records"),
			endpoint.WithParams(
				parameter.StrParam("student_id", parameter.Query, parameter.WithDescription("Filter by student")),
				parameter.StrParam("date", parameter.Query, parameter.WithDescription("Filter by date (YYYY-MM-DD)")),
			),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(ListAttendanceResponse{}, "200", "Attendance records"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// GET /api/subjects - List subjects
		endpoint.New(
			endpoint.GET,
			"/subjects",
			endpoint.WithTags("Attendance"),
			endpoint.WithSummary("List the subject catalog"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(ListSubjectsResponse{}, "200", "Seeded subjects"),
			}),
		),

		// POST /api/mood/analyze - Analyze mood
		endpoint.New(
			endpoint.POST,
			"/mood/analyze",
			endpoint.WithTags("Mood"),
			endpoint.WithSummary("Analyze facial expression"),
			endpoint.WithDescription("Runs emotion analysis on the submitted image and derives a wellbeing risk tier from the scores."),
			endpoint.WithBody(AnalyzeMoodRequest{}),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(AnalyzeMoodResponse{}, "200", "Mood analysis completed"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "NO_IMAGE_PROVIDED", Message: "No image provided"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "MOOD_PROVIDER_FAILED", Message: "Emotion analysis failed"}, "502", "Bad Gateway"),
			}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
