package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymadmin/internal/domain"
)

func TestAssignmentRepository_LinkInsertsWithJoinedFields(t *testing.T) {
	db := setupDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Yoga A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	mat := seedEquipment(t, db, "Mat", "Yoga", 10)

	outcome, err := repo.Link(ctx, course.ID, mat.ID, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, LinkInserted, outcome)

	rows, p, err := repo.List(ctx, AssignmentFilters{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), p.TotalItems)
	assert.Equal(t, 5, rows[0].QuantityNeeded)
	assert.Equal(t, "Yoga A", rows[0].CourseName)
	assert.Equal(t, "Mat", rows[0].EquipmentName)
	assert.Equal(t, 10, rows[0].EquipmentQuantity)
}

func TestAssignmentRepository_LinkTwiceUpdatesQuantity(t *testing.T) {
	db := setupDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Yoga A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	mat := seedEquipment(t, db, "Mat", "Yoga", 10)

	_, err := repo.Link(ctx, course.ID, mat.ID, 5, nil)
	require.NoError(t, err)

	outcome, err := repo.Link(ctx, course.ID, mat.ID, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, LinkUpdated, outcome)

	// Still exactly one row for the pair, carrying the latest quantity.
	var count int64
	require.NoError(t, db.Model(&domain.Assignment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	pair, err := repo.GetPair(ctx, course.ID, mat.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, pair.QuantityNeeded)
}

func TestAssignmentRepository_LinkChecksParents(t *testing.T) {
	db := setupDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Yoga A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	mat := seedEquipment(t, db, "Mat", "Yoga", 10)

	_, err := repo.Link(ctx, 9999, mat.ID, 1, nil)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	_, err = repo.Link(ctx, course.ID, 9999, 1, nil)
	assert.ErrorIs(t, err, ErrEquipmentNotFound)

	var count int64
	require.NoError(t, db.Model(&domain.Assignment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestAssignmentRepository_LinkDoesNotTouchAvailableQuantity(t *testing.T) {
	db := setupDB(t)
	assignments := NewAssignmentRepository(db)
	equipment := NewEquipmentRepository(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Yoga A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	mat := seedEquipment(t, db, "Mat", "Yoga", 10)

	_, err := assignments.Link(ctx, course.ID, mat.ID, 6, nil)
	require.NoError(t, err)

	got, err := equipment.GetByID(ctx, mat.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.AvailableQuantity)
}

func TestAssignmentRepository_Unlink(t *testing.T) {
	db := setupDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Yoga A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	mat := seedEquipment(t, db, "Mat", "Yoga", 10)

	_, err := repo.Link(ctx, course.ID, mat.ID, 5, nil)
	require.NoError(t, err)

	require.NoError(t, repo.Unlink(ctx, course.ID, mat.ID))

	_, err = repo.GetPair(ctx, course.ID, mat.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAssignmentRepository_UnlinkMissingPair(t *testing.T) {
	db := setupDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Yoga A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	other := seedCourse(t, db, "Spin B", "Cardio", "2025-06-02", "10:00", domain.CourseScheduled)
	mat := seedEquipment(t, db, "Mat", "Yoga", 10)

	_, err := repo.Link(ctx, course.ID, mat.ID, 5, nil)
	require.NoError(t, err)

	err = repo.Unlink(ctx, other.ID, mat.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The unrelated pair is untouched.
	var count int64
	require.NoError(t, db.Model(&domain.Assignment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAssignmentRepository_ListFiltersByCourse(t *testing.T) {
	db := setupDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	yoga := seedCourse(t, db, "Yoga A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	spin := seedCourse(t, db, "Spin B", "Cardio", "2025-06-02", "10:00", domain.CourseScheduled)
	mat := seedEquipment(t, db, "Mat", "Yoga", 10)
	bike := seedEquipment(t, db, "Bike", "Cardio", 15)

	_, err := repo.Link(ctx, yoga.ID, mat.ID, 5, nil)
	require.NoError(t, err)
	_, err = repo.Link(ctx, spin.ID, bike.ID, 12, nil)
	require.NoError(t, err)

	rows, _, err := repo.List(ctx, AssignmentFilters{CourseID: yoga.ID}, 1, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Mat", rows[0].EquipmentName)

	rows, _, err = repo.List(ctx, AssignmentFilters{Search: "bike"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Spin B", rows[0].CourseName)
}

func TestAssignmentRepository_ListOrderIsStableWithinSameSecond(t *testing.T) {
	db := setupDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	course := seedCourse(t, db, "Yoga A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	linkedAt := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	var ids []int64
	for _, name := range []string{"Mat", "Block", "Strap"} {
		item := seedEquipment(t, db, name, "Yoga", 10)
		a := &domain.Assignment{
			CourseID:       course.ID,
			EquipmentID:    item.ID,
			QuantityNeeded: 1,
			AssignedAt:     linkedAt,
		}
		require.NoError(t, db.Create(a).Error)
		ids = append(ids, a.ID)
	}

	// Identical assigned_at falls back to newest id first, so paging
	// through the list never skips or repeats a row.
	rows, _, err := repo.List(ctx, AssignmentFilters{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, ids[2], rows[0].ID)
	assert.Equal(t, ids[1], rows[1].ID)
	assert.Equal(t, ids[0], rows[2].ID)
}

func TestAssignmentRepository_Stats(t *testing.T) {
	db := setupDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	yoga := seedCourse(t, db, "Yoga A", "Yoga", "2025-06-01", "09:00", domain.CourseScheduled)
	spin := seedCourse(t, db, "Spin B", "Cardio", "2025-06-02", "10:00", domain.CourseScheduled)
	mat := seedEquipment(t, db, "Mat", "Yoga", 10)
	bike := seedEquipment(t, db, "Bike", "Cardio", 15)

	_, err := repo.Link(ctx, yoga.ID, mat.ID, 5, nil)
	require.NoError(t, err)
	_, err = repo.Link(ctx, spin.ID, mat.ID, 3, nil)
	require.NoError(t, err)
	_, err = repo.Link(ctx, spin.ID, bike.ID, 12, nil)
	require.NoError(t, err)

	stats, err := repo.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.CoursesWithEquipment)
	assert.Equal(t, int64(2), stats.EquipmentInUse)
	assert.Equal(t, int64(20), stats.TotalAssigned)
}
