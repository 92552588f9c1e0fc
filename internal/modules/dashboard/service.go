package dashboard

import (
	"context"
	"time"

	"gymadmin/internal/domain"
	"gymadmin/internal/repository"
)

const panelLimit = 5

// CourseStatsSource, EquipmentStatsSource and AssignmentStatsSource are the
// aggregate surfaces the dashboard pulls from.
type CourseStatsSource interface {
	Stats(ctx context.Context, today string) (*repository.CourseStats, error)
	Upcoming(ctx context.Context, today string, limit int) ([]domain.Course, error)
}

type EquipmentStatsSource interface {
	Stats(ctx context.Context, today string, lowStock int) (*repository.EquipmentStats, error)
	LowStock(ctx context.Context, threshold, limit int) ([]domain.Equipment, error)
	MaintenanceDue(ctx context.Context, cutoff string, limit int) ([]domain.Equipment, error)
	Recent(ctx context.Context, limit int) ([]domain.Equipment, error)
}

type AssignmentStatsSource interface {
	Stats(ctx context.Context) (*repository.AssignmentStats, error)
}

// Snapshot is the full dashboard payload, recomputed per request.
type Snapshot struct {
	Courses     *repository.CourseStats     `json:"courses"`
	Equipment   *repository.EquipmentStats  `json:"equipment"`
	Assignments *repository.AssignmentStats `json:"assignments"`

	UpcomingCourses []domain.Course    `json:"upcoming_courses"`
	RecentEquipment []domain.Equipment `json:"recent_equipment"`
	LowStock        []domain.Equipment `json:"low_stock"`
	MaintenanceDue  []domain.Equipment `json:"maintenance_due"`

	GeneratedAt time.Time `json:"generated_at"`
}

type Service struct {
	courses     CourseStatsSource
	equipment   EquipmentStatsSource
	assignments AssignmentStatsSource
	lowStock    int
	now         func() time.Time
}

func NewService(courses CourseStatsSource, equipment EquipmentStatsSource, assignments AssignmentStatsSource, lowStock int) *Service {
	return &Service{
		courses:     courses,
		equipment:   equipment,
		assignments: assignments,
		lowStock:    lowStock,
		now:         time.Now,
	}
}

// Snapshot assembles the dashboard from the three aggregate sources plus the
// side panels.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	now := s.now().UTC()
	today := now.Format("2006-01-02")
	maintenanceCutoff := now.AddDate(0, 0, domain.MaintenanceDueWindowDays).Format("2006-01-02")

	courseStats, err := s.courses.Stats(ctx, today)
	if err != nil {
		return nil, err
	}
	equipmentStats, err := s.equipment.Stats(ctx, today, s.lowStock)
	if err != nil {
		return nil, err
	}
	assignmentStats, err := s.assignments.Stats(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.courses.Upcoming(ctx, today, panelLimit)
	if err != nil {
		return nil, err
	}
	recent, err := s.equipment.Recent(ctx, panelLimit)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.equipment.LowStock(ctx, s.lowStock, panelLimit)
	if err != nil {
		return nil, err
	}
	maintenanceDue, err := s.equipment.MaintenanceDue(ctx, maintenanceCutoff, panelLimit)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Courses:         courseStats,
		Equipment:       equipmentStats,
		Assignments:     assignmentStats,
		UpcomingCourses: upcoming,
		RecentEquipment: recent,
		LowStock:        lowStock,
		MaintenanceDue:  maintenanceDue,
		GeneratedAt:     now,
	}, nil
}
