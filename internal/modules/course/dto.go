package course

// CourseRequest carries the course form fields for both create and update.
// Optional fields fall back to their defaults in the service.
type CourseRequest struct {
	Name                string `json:"name"`
	Category            string `json:"category"`
	Description         string `json:"description"`
	CourseDate          string `json:"course_date"`
	StartTime           string `json:"start_time"`
	DurationMinutes     int    `json:"duration_minutes"`
	MaxParticipants     int    `json:"max_participants"`
	CurrentParticipants *int   `json:"current_participants"`
	InstructorName      string `json:"instructor_name"`
	Location            string `json:"location"`
	Status              string `json:"status"`
}
