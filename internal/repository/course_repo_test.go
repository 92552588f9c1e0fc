package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymadmin/internal/domain"
)

func TestCourseRepository_ListUnfiltered(t *testing.T) {
	db := setupDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	seedCourse(t, db, "Yoga A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	seedCourse(t, db, "Spin B", "Cardio", "2025-06-02", "10:00", domain.CourseCompleted)
	seedCourse(t, db, "Lift C", "Strength", "2025-06-03", "11:00", domain.CourseScheduled)

	courses, p, err := repo.List(ctx, CourseFilters{}, 1, 10)

	require.NoError(t, err)
	assert.Len(t, courses, 3)
	assert.Equal(t, int64(3), p.TotalItems)
	assert.Equal(t, 1, p.TotalPages)
}

func TestCourseRepository_ListFiltersByStatus(t *testing.T) {
	db := setupDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	seedCourse(t, db, "Yoga A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	seedCourse(t, db, "Spin B", "Cardio", "2025-06-02", "10:00", domain.CourseCompleted)

	courses, _, err := repo.List(ctx, CourseFilters{Status: "scheduled"}, 1, 10)

	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Yoga A", courses[0].Name)
}

func TestCourseRepository_BogusSortFallsBack(t *testing.T) {
	db := setupDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	seedCourse(t, db, "Later", "Yoga", "2025-06-05", "09:00", domain.CourseScheduled)
	seedCourse(t, db, "Earlier", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)

	// An unknown sort column must not error and must fall back to
	// course_date ascending, while filters still apply.
	courses, _, err := repo.List(ctx, CourseFilters{Status: "scheduled", Sort: "bogus_column"}, 1, 10)

	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Earlier", courses[0].Name)
	assert.Equal(t, "Later", courses[1].Name)
}

func TestCourseRepository_SortDescWithTieBreak(t *testing.T) {
	db := setupDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	seedCourse(t, db, "Noon", "Yoga", "2025-06-01", "12:00", domain.CourseScheduled)
	seedCourse(t, db, "Morning", "Yoga", "2025-06-01", "08:00", domain.CourseScheduled)
	seedCourse(t, db, "Old", "Yoga", "2025-05-01", "09:00", domain.CourseScheduled)

	courses, _, err := repo.List(ctx, CourseFilters{Sort: "course_date", Order: "desc"}, 1, 10)

	require.NoError(t, err)
	require.Len(t, courses, 3)
	// Same date sorts by start_time ascending.
	assert.Equal(t, "Morning", courses[0].Name)
	assert.Equal(t, "Noon", courses[1].Name)
	assert.Equal(t, "Old", courses[2].Name)
}

func TestCourseRepository_SearchIsCaseInsensitive(t *testing.T) {
	db := setupDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	seedCourse(t, db, "Power Yoga", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	seedCourse(t, db, "Spin", "Cardio", "2025-06-02", "10:00", domain.CourseScheduled)

	courses, _, err := repo.List(ctx, CourseFilters{Search: "pOwEr"}, 1, 10)

	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Power Yoga", courses[0].Name)
}

func TestCourseRepository_DateRangeInclusive(t *testing.T) {
	db := setupDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	seedCourse(t, db, "A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	seedCourse(t, db, "B", "Yoga", "2025-06-10", "09:00", domain.CourseScheduled)
	seedCourse(t, db, "C", "Yoga", "2025-06-20", "09:00", domain.CourseScheduled)

	courses, _, err := repo.List(ctx, CourseFilters{DateFrom: "2025-06-01", DateTo: "2025-06-10"}, 1, 10)

	require.NoError(t, err)
	assert.Len(t, courses, 2)
}

func TestCourseRepository_FilterByEquipment(t *testing.T) {
	db := setupDB(t)
	courses := NewCourseRepository(db)
	assignments := NewAssignmentRepository(db)
	ctx := context.Background()

	withMat := seedCourse(t, db, "Yoga A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	seedCourse(t, db, "Spin B", "Cardio", "2025-06-02", "10:00", domain.CourseScheduled)
	mat := seedEquipment(t, db, "Mat", "Yoga", 10)

	_, err := assignments.Link(ctx, withMat.ID, mat.ID, 5, nil)
	require.NoError(t, err)

	got, _, err := courses.List(ctx, CourseFilters{EquipmentID: mat.ID}, 1, 10)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Yoga A", got[0].Name)
	assert.Equal(t, int64(1), got[0].EquipmentCount)
}

func TestCourseRepository_PaginationClamps(t *testing.T) {
	db := setupDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		seedCourse(t, db, name, "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	}

	courses, p, err := repo.List(ctx, CourseFilters{}, 99, 2)

	require.NoError(t, err)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 3, p.CurrentPage)
	assert.Len(t, courses, 1)
}

func TestCourseRepository_NameExists(t *testing.T) {
	db := setupDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Yoga A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)

	exists, err := repo.NameExists(ctx, "Yoga A", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// A record keeping its own name is not a collision.
	exists, err = repo.NameExists(ctx, "Yoga A", course.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.NameExists(ctx, "Nope", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCourseRepository_CreateRejectsDuplicateName(t *testing.T) {
	db := setupDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	seedCourse(t, db, "Yoga A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)

	err := repo.Create(ctx, &domain.Course{
		Name:            "Yoga A",
		Category:        "Yoga",
		CourseDate:      "2025-07-01",
		StartTime:       "10:00",
		DurationMinutes: 45,
		MaxParticipants: 10,
		InstructorName:  "John",
		Location:        domain.DefaultCourseLocation,
		Status:          domain.CourseScheduled,
	})

	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestCourseRepository_DeleteCascadesAssignments(t *testing.T) {
	db := setupDB(t)
	courses := NewCourseRepository(db)
	assignments := NewAssignmentRepository(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Yoga A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	mat := seedEquipment(t, db, "Mat", "Yoga", 10)

	_, err := assignments.Link(ctx, course.ID, mat.ID, 5, nil)
	require.NoError(t, err)

	require.NoError(t, courses.Delete(ctx, course.ID))

	var assignmentCount int64
	require.NoError(t, db.Model(&domain.Assignment{}).Count(&assignmentCount).Error)
	assert.Equal(t, int64(0), assignmentCount)

	// Equipment survives.
	var equipmentCount int64
	require.NoError(t, db.Model(&domain.Equipment{}).Count(&equipmentCount).Error)
	assert.Equal(t, int64(1), equipmentCount)
}

func TestCourseRepository_DeleteMissing(t *testing.T) {
	db := setupDB(t)
	repo := NewCourseRepository(db)

	err := repo.Delete(context.Background(), 12345)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCourseRepository_Stats(t *testing.T) {
	db := setupDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	seedCourse(t, db, "Past", "Yoga", "2025-01-01", "09:00", domain.CourseCompleted)
	seedCourse(t, db, "Today", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	seedCourse(t, db, "Future", "Cardio", "2025-07-01", "09:00", domain.CourseScheduled)

	stats, err := repo.Stats(ctx, "2025-06-01")

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.ByStatus["scheduled"])
	assert.Equal(t, int64(1), stats.ByStatus["completed"])
	assert.Equal(t, int64(1), stats.Upcoming)
	assert.Equal(t, int64(1), stats.Today)
}
