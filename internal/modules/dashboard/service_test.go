package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymadmin/internal/domain"
	"gymadmin/internal/repository"
)

type MockCourseStats struct {
	mock.Mock
}

func (m *MockCourseStats) Stats(ctx context.Context, today string) (*repository.CourseStats, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(*repository.CourseStats), args.Error(1)
}

func (m *MockCourseStats) Upcoming(ctx context.Context, today string, limit int) ([]domain.Course, error) {
	args := m.Called(ctx, today, limit)
	return args.Get(0).([]domain.Course), args.Error(1)
}

type MockEquipmentStats struct {
	mock.Mock
}

func (m *MockEquipmentStats) Stats(ctx context.Context, today string, lowStock int) (*repository.EquipmentStats, error) {
	args := m.Called(ctx, today, lowStock)
	return args.Get(0).(*repository.EquipmentStats), args.Error(1)
}

func (m *MockEquipmentStats) LowStock(ctx context.Context, threshold, limit int) ([]domain.Equipment, error) {
	args := m.Called(ctx, threshold, limit)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentStats) MaintenanceDue(ctx context.Context, cutoff string, limit int) ([]domain.Equipment, error) {
	args := m.Called(ctx, cutoff, limit)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentStats) Recent(ctx context.Context, limit int) ([]domain.Equipment, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

type MockAssignmentStats struct {
	mock.Mock
}

func (m *MockAssignmentStats) Stats(ctx context.Context) (*repository.AssignmentStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(*repository.AssignmentStats), args.Error(1)
}

func TestSnapshotUsesTodayAndMaintenanceWindow(t *testing.T) {
	courses := new(MockCourseStats)
	equipment := new(MockEquipmentStats)
	assignments := new(MockAssignmentStats)

	// Fixed clock so the derived dates are deterministic.
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	courses.On("Stats", mock.Anything, "2025-06-01").
		Return(&repository.CourseStats{Total: 3}, nil)
	courses.On("Upcoming", mock.Anything, "2025-06-01", panelLimit).
		Return([]domain.Course{{Name: "Yoga A"}}, nil)

	equipment.On("Stats", mock.Anything, "2025-06-01", domain.LowStockThreshold).
		Return(&repository.EquipmentStats{Total: 7}, nil)
	equipment.On("LowStock", mock.Anything, domain.LowStockThreshold, panelLimit).
		Return([]domain.Equipment{}, nil)
	// 30 days out from the fixed clock.
	equipment.On("MaintenanceDue", mock.Anything, "2025-07-01", panelLimit).
		Return([]domain.Equipment{{Name: "Treadmill"}}, nil)
	equipment.On("Recent", mock.Anything, panelLimit).
		Return([]domain.Equipment{}, nil)

	assignments.On("Stats", mock.Anything).
		Return(&repository.AssignmentStats{Total: 2}, nil)

	svc := NewService(courses, equipment, assignments, domain.LowStockThreshold)
	svc.now = func() time.Time { return fixed }

	snap, err := svc.Snapshot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), snap.Courses.Total)
	assert.Equal(t, int64(7), snap.Equipment.Total)
	assert.Equal(t, int64(2), snap.Assignments.Total)
	require.Len(t, snap.UpcomingCourses, 1)
	require.Len(t, snap.MaintenanceDue, 1)
	assert.Equal(t, fixed, snap.GeneratedAt)
	courses.AssertExpectations(t)
	equipment.AssertExpectations(t)
	assignments.AssertExpectations(t)
}
