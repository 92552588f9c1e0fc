package course

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gymadmin/internal/domain"
	"gymadmin/internal/pkg/pagination"
	"gymadmin/internal/pkg/validator"
	"gymadmin/internal/repository"
)

// Store is the repository surface the service needs.
type Store interface {
	List(ctx context.Context, f repository.CourseFilters, page, perPage int) ([]domain.Course, pagination.Pagination, error)
	ListAll(ctx context.Context, f repository.CourseFilters) ([]domain.Course, error)
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	Create(ctx context.Context, course *domain.Course) error
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id int64) error
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, f repository.CourseFilters, page, perPage int) ([]domain.Course, pagination.Pagination, error) {
	return s.store.List(ctx, f, page, perPage)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Course, error) {
	return s.store.GetByID(ctx, id)
}

// Create validates the form and inserts the course. New courses always start
// with zero participants regardless of the submitted value.
func (s *Service) Create(ctx context.Context, req CourseRequest) (*domain.Course, error) {
	req = normalize(req)
	if req.Status == "" {
		req.Status = string(domain.CourseScheduled)
	}
	if req.Location == "" {
		req.Location = domain.DefaultCourseLocation
	}

	if fields, err := s.validate(ctx, req, 0); err != nil {
		return nil, err
	} else if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	course := &domain.Course{
		Name:                req.Name,
		Category:            req.Category,
		Description:         req.Description,
		CourseDate:          req.CourseDate,
		StartTime:           req.StartTime,
		DurationMinutes:     req.DurationMinutes,
		MaxParticipants:     req.MaxParticipants,
		CurrentParticipants: 0,
		InstructorName:      req.InstructorName,
		Location:            req.Location,
		Status:              domain.CourseStatus(req.Status),
	}
	if err := s.store.Create(ctx, course); err != nil {
		return nil, duplicateToValidation(err)
	}
	return course, nil
}

func (s *Service) Update(ctx context.Context, id int64, req CourseRequest) (*domain.Course, error) {
	course, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req = normalize(req)
	if req.Status == "" {
		req.Status = string(course.Status)
	}
	if req.Location == "" {
		req.Location = domain.DefaultCourseLocation
	}

	if fields, err := s.validate(ctx, req, id); err != nil {
		return nil, err
	} else if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	course.Name = req.Name
	course.Category = req.Category
	course.Description = req.Description
	course.CourseDate = req.CourseDate
	course.StartTime = req.StartTime
	course.DurationMinutes = req.DurationMinutes
	course.MaxParticipants = req.MaxParticipants
	course.InstructorName = req.InstructorName
	course.Location = req.Location
	course.Status = domain.CourseStatus(req.Status)
	// Omitted in the payload means keep the stored count.
	if req.CurrentParticipants != nil {
		course.CurrentParticipants = *req.CurrentParticipants
	}

	if err := s.store.Update(ctx, course); err != nil {
		return nil, duplicateToValidation(err)
	}
	return course, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// validate mirrors the course form checklist: every rule runs and every
// failure lands in the map, keyed by form field.
func (s *Service) validate(ctx context.Context, req CourseRequest, excludeID int64) (map[string]string, error) {
	fields := map[string]string{}

	switch {
	case req.Name == "":
		fields["name"] = "Course name is required."
	case len(req.Name) > 100:
		fields["name"] = "Course name must not exceed 100 characters."
	default:
		taken, err := s.store.NameExists(ctx, req.Name, excludeID)
		if err != nil {
			return nil, err
		}
		if taken {
			fields["name"] = "A course with this name already exists."
		}
	}

	switch {
	case req.Category == "":
		fields["category"] = "Category is required."
	case !domain.ValidCourseCategory(req.Category):
		fields["category"] = "Invalid category selected."
	}

	switch {
	case req.CourseDate == "":
		fields["course_date"] = "Course date is required."
	case !validator.ValidDate(req.CourseDate):
		fields["course_date"] = "Invalid date format."
	}

	switch {
	case req.StartTime == "":
		fields["start_time"] = "Start time is required."
	case !validator.ValidTime(req.StartTime):
		fields["start_time"] = "Invalid time format."
	}

	switch {
	case req.DurationMinutes == 0:
		fields["duration_minutes"] = "Duration is required."
	case req.DurationMinutes < 0:
		fields["duration_minutes"] = "Duration must be a positive number."
	case req.DurationMinutes > domain.MaxCourseDuration:
		fields["duration_minutes"] = fmt.Sprintf("Duration cannot exceed 8 hours (%d minutes).", domain.MaxCourseDuration)
	}

	switch {
	case req.MaxParticipants == 0:
		fields["max_participants"] = "Maximum participants is required."
	case req.MaxParticipants < 0:
		fields["max_participants"] = "Maximum participants must be a positive number."
	case req.MaxParticipants > domain.MaxCourseParticipants:
		fields["max_participants"] = fmt.Sprintf("Maximum participants cannot exceed %d.", domain.MaxCourseParticipants)
	}

	switch {
	case req.InstructorName == "":
		fields["instructor_name"] = "Instructor name is required."
	case len(req.InstructorName) > 100:
		fields["instructor_name"] = "Instructor name must not exceed 100 characters."
	}

	if !domain.ValidCourseStatus(domain.CourseStatus(req.Status)) {
		fields["status"] = "Invalid status selected."
	}

	if len(req.Location) > 100 {
		fields["location"] = "Location must not exceed 100 characters."
	}

	if len(req.Description) > 5000 {
		fields["description"] = "Description must not exceed 5000 characters."
	}

	return fields, nil
}

func normalize(req CourseRequest) CourseRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	req.Description = strings.TrimSpace(req.Description)
	req.CourseDate = strings.TrimSpace(req.CourseDate)
	req.StartTime = strings.TrimSpace(req.StartTime)
	req.InstructorName = strings.TrimSpace(req.InstructorName)
	req.Location = strings.TrimSpace(req.Location)
	req.Status = strings.TrimSpace(req.Status)
	return req
}

// duplicateToValidation maps the repository's in-transaction uniqueness check
// onto the same field error the pre-check produces, so a race loser sees the
// identical response.
func duplicateToValidation(err error) error {
	if errors.Is(err, repository.ErrDuplicateName) {
		return &ValidationError{Fields: map[string]string{
			"name": "A course with this name already exists.",
		}}
	}
	return err
}
