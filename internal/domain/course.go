package domain

import "time"

type CourseStatus string

const (
	CourseScheduled  CourseStatus = "scheduled"
	CourseInProgress CourseStatus = "in_progress"
	CourseCompleted  CourseStatus = "completed"
	CourseCancelled  CourseStatus = "cancelled"
)

// CourseCategories is the fixed set of categories a course may belong to.
var CourseCategories = []string{
	"Yoga",
	"Cardio",
	"Strength",
	"Pilates",
	"Combat",
	"Aquatic",
	"CrossFit",
	"Dance",
	"Wellness",
	"Other",
}

// CourseStatusLabels maps status values to their display names.
var CourseStatusLabels = map[CourseStatus]string{
	CourseScheduled:  "Scheduled",
	CourseInProgress: "In Progress",
	CourseCompleted:  "Completed",
	CourseCancelled:  "Cancelled",
}

const (
	DefaultCourseLocation = "Main Hall"

	MaxCourseDuration     = 480
	MaxCourseParticipants = 100
)

type Course struct {
	ID                  int64        `json:"id" gorm:"primaryKey"`
	Name                string       `json:"name" gorm:"size:100;uniqueIndex"`
	Category            string       `json:"category" gorm:"size:50"`
	Description         string       `json:"description,omitempty" gorm:"size:5000"`
	CourseDate          string       `json:"course_date" gorm:"type:date"`
	StartTime           string       `json:"start_time" gorm:"size:8"`
	DurationMinutes     int          `json:"duration_minutes"`
	MaxParticipants     int          `json:"max_participants"`
	CurrentParticipants int          `json:"current_participants"`
	InstructorName      string       `json:"instructor_name" gorm:"size:100"`
	Location            string       `json:"location" gorm:"size:100"`
	Status              CourseStatus `json:"status" gorm:"size:20"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`

	// Populated by list/detail queries, not stored.
	EquipmentCount int64 `json:"equipment_count" gorm:"->;-:migration"`
}

func ValidCourseStatus(s CourseStatus) bool {
	_, ok := CourseStatusLabels[s]
	return ok
}

func ValidCourseCategory(c string) bool {
	for _, v := range CourseCategories {
		if v == c {
			return true
		}
	}
	return false
}
