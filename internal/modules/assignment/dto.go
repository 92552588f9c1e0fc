package assignment

// LinkRequest is the form body for POST /assignments.
type LinkRequest struct {
	CourseID       int64 `json:"course_id"`
	EquipmentID    int64 `json:"equipment_id"`
	QuantityNeeded int   `json:"quantity_needed"`
}
