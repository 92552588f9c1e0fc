package assignment

import (
	"context"
	"errors"

	"gymadmin/internal/domain"
	"gymadmin/internal/pkg/pagination"
	"gymadmin/internal/repository"
)

// Store is the repository surface the service needs.
type Store interface {
	List(ctx context.Context, f repository.AssignmentFilters, page, perPage int) ([]domain.Assignment, pagination.Pagination, error)
	GetPair(ctx context.Context, courseID, equipmentID int64) (*domain.Assignment, error)
	Link(ctx context.Context, courseID, equipmentID int64, quantity int, assignedBy *int64) (repository.LinkOutcome, error)
	Unlink(ctx context.Context, courseID, equipmentID int64) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, f repository.AssignmentFilters, page, perPage int) ([]domain.Assignment, pagination.Pagination, error) {
	return s.store.List(ctx, f, page, perPage)
}

// Link validates the form and upserts the pair. Missing quantity defaults
// to 1; missing parents come back as field errors rather than a 404, since
// the form's selects are the thing being validated.
func (s *Service) Link(ctx context.Context, req LinkRequest, actorID *int64) (*domain.Assignment, repository.LinkOutcome, error) {
	fields := map[string]string{}
	if req.CourseID <= 0 {
		fields["course_id"] = "Please select a course."
	}
	if req.EquipmentID <= 0 {
		fields["equipment_id"] = "Please select equipment."
	}
	if req.QuantityNeeded == 0 {
		req.QuantityNeeded = 1
	}
	if req.QuantityNeeded < 1 {
		fields["quantity_needed"] = "Quantity must be at least 1."
	}
	if len(fields) > 0 {
		return nil, 0, &ValidationError{Fields: fields}
	}

	outcome, err := s.store.Link(ctx, req.CourseID, req.EquipmentID, req.QuantityNeeded, actorID)
	switch {
	case errors.Is(err, repository.ErrCourseNotFound):
		return nil, 0, &ValidationError{Fields: map[string]string{
			"course_id": "Selected course does not exist.",
		}}
	case errors.Is(err, repository.ErrEquipmentNotFound):
		return nil, 0, &ValidationError{Fields: map[string]string{
			"equipment_id": "Selected equipment does not exist.",
		}}
	case err != nil:
		return nil, 0, err
	}

	row, err := s.store.GetPair(ctx, req.CourseID, req.EquipmentID)
	if err != nil {
		return nil, 0, err
	}
	return row, outcome, nil
}

func (s *Service) Unlink(ctx context.Context, courseID, equipmentID int64) error {
	return s.store.Unlink(ctx, courseID, equipmentID)
}
