package domain

import "time"

// Assignment links one piece of equipment to one course with the quantity
// the course needs. At most one row exists per (course, equipment) pair.
type Assignment struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	CourseID       int64     `json:"course_id" gorm:"uniqueIndex:idx_course_equipment_pair"`
	EquipmentID    int64     `json:"equipment_id" gorm:"uniqueIndex:idx_course_equipment_pair"`
	QuantityNeeded int       `json:"quantity_needed"`
	AssignedBy     *int64    `json:"assigned_by,omitempty"`
	AssignedAt     time.Time `json:"assigned_at"`

	// Populated by list/detail queries, not stored.
	CourseName        string       `json:"course_name,omitempty" gorm:"->;-:migration"`
	CourseCategory    string       `json:"course_category,omitempty" gorm:"->;-:migration"`
	CourseDate        string       `json:"course_date,omitempty" gorm:"->;-:migration"`
	CourseStartTime   string       `json:"course_start_time,omitempty" gorm:"->;-:migration"`
	CourseStatus      CourseStatus `json:"course_status,omitempty" gorm:"->;-:migration"`
	EquipmentName     string       `json:"equipment_name,omitempty" gorm:"->;-:migration"`
	EquipmentType     string       `json:"equipment_type,omitempty" gorm:"->;-:migration"`
	EquipmentQuantity int          `json:"equipment_quantity,omitempty" gorm:"->;-:migration"`
}

func (Assignment) TableName() string { return "course_equipment" }
