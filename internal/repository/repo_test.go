package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymadmin/internal/database"
	"gymadmin/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, database.Migrate(db), "failed to migrate test schema")

	return db
}

func seedCourse(t *testing.T, db *gorm.DB, name, category, date, start string, status domain.CourseStatus) *domain.Course {
	t.Helper()

	course := &domain.Course{
		Name:            name,
		Category:        category,
		CourseDate:      date,
		StartTime:       start,
		DurationMinutes: 60,
		MaxParticipants: 20,
		InstructorName:  "Jane Doe",
		Location:        domain.DefaultCourseLocation,
		Status:          status,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func seedEquipment(t *testing.T, db *gorm.DB, name, typ string, quantity int) *domain.Equipment {
	t.Helper()

	item := &domain.Equipment{
		Name:              name,
		Type:              typ,
		Quantity:          quantity,
		AvailableQuantity: quantity,
		Condition:         domain.ConditionGood,
		Location:          domain.DefaultEquipmentLocation,
		IsActive:          true,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}
