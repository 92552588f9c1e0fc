package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"gymadmin/internal/domain"
	"gymadmin/internal/pkg/pagination"
)

// CourseFilters carries the recognized list filters. Zero values mean "not
// applied"; unrecognized query keys never reach this struct.
type CourseFilters struct {
	Search      string
	Category    string
	Status      string
	Instructor  string
	DateFrom    string
	DateTo      string
	EquipmentID int64
	Sort        string
	Order       string
}

// courseSortColumns is the ORDER BY allow-list; anything else falls back to
// course_date.
var courseSortColumns = map[string]bool{
	"name":             true,
	"category":         true,
	"course_date":      true,
	"start_time":       true,
	"duration_minutes": true,
	"max_participants": true,
	"instructor_name":  true,
	"status":           true,
	"created_at":       true,
}

const courseDefaultSort = "course_date"

const courseSelect = "courses.*, (SELECT COUNT(*) FROM course_equipment WHERE course_equipment.course_id = courses.id) AS equipment_count"

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) applyFilters(q *gorm.DB, f CourseFilters) *gorm.DB {
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Instructor != "" {
		q = q.Where("LOWER(instructor_name) LIKE ?", contains(f.Instructor))
	}
	if f.DateFrom != "" {
		q = q.Where("course_date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("course_date <= ?", f.DateTo)
	}
	if f.Search != "" {
		term := contains(f.Search)
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(instructor_name) LIKE ?",
			term, term, term,
		)
	}
	if f.EquipmentID > 0 {
		q = q.Where(
			"id IN (SELECT course_id FROM course_equipment WHERE equipment_id = ?)",
			f.EquipmentID,
		)
	}
	return q
}

// List returns one page of courses matching the filters, ordered by the
// allow-listed sort column with start_time as a fixed tie-break.
func (r *CourseRepository) List(ctx context.Context, f CourseFilters, page, perPage int) ([]domain.Course, pagination.Pagination, error) {
	var total int64
	q := r.applyFilters(r.db.WithContext(ctx).Model(&domain.Course{}), f)
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Pagination{}, err
	}

	p := pagination.New(total, page, perPage)

	var courses []domain.Course
	err := q.
		Select(courseSelect).
		Order(sortClause(f.Sort, f.Order, courseSortColumns, courseDefaultSort) + ", start_time ASC").
		Limit(p.PerPage).
		Offset(p.Offset).
		Find(&courses).Error
	if err != nil {
		return nil, pagination.Pagination{}, err
	}

	return courses, p, nil
}

// ListAll returns every matching course for export, newest date first.
func (r *CourseRepository) ListAll(ctx context.Context, f CourseFilters) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.applyFilters(r.db.WithContext(ctx).Model(&domain.Course{}), f).
		Select(courseSelect).
		Order("course_date DESC, start_time ASC").
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	var course domain.Course
	err := r.db.WithContext(ctx).
		Model(&domain.Course{}).
		Select(courseSelect).
		Where("courses.id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts the course after re-checking name uniqueness inside the same
// transaction, so two concurrent creates cannot both pass the validator's
// pre-check.
func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := nameExists(tx, "courses", course.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateName
		}
		return mapUniqueViolation(tx.Create(course).Error)
	})
}

// Update saves the course, re-checking name uniqueness against other rows.
func (r *CourseRepository) Update(ctx context.Context, course *domain.Course) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := nameExists(tx, "courses", course.Name, course.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateName
		}
		return mapUniqueViolation(tx.Save(course).Error)
	})
}

// Delete removes the course and its assignment rows in one transaction.
// Equipment rows are left untouched.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&domain.Assignment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Course{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// NameExists reports whether another course already uses the name. An
// excludeID > 0 skips the row being updated.
func (r *CourseRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	return nameExists(r.db.WithContext(ctx), "courses", name, excludeID)
}

// CourseStats is the course slice of the dashboard snapshot.
type CourseStats struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	ByCategory []CategoryCount  `json:"by_category"`
	Upcoming   int64            `json:"upcoming_count"`
	Today      int64            `json:"today_count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// Stats recomputes the course aggregates; today is an ISO date string.
func (r *CourseRepository) Stats(ctx context.Context, today string) (*CourseStats, error) {
	stats := &CourseStats{ByStatus: map[string]int64{}}

	db := r.db.WithContext(ctx).Model(&domain.Course{})
	if err := db.Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	var byStatus []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Course{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		stats.ByStatus[row.Status] = row.Count
	}

	err = r.db.WithContext(ctx).Model(&domain.Course{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&stats.ByCategory).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&domain.Course{}).
		Where("course_date > ? AND status = ?", today, domain.CourseScheduled).
		Count(&stats.Upcoming).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&domain.Course{}).
		Where("course_date = ?", today).
		Count(&stats.Today).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// Upcoming returns the next scheduled courses on or after today.
func (r *CourseRepository) Upcoming(ctx context.Context, today string, limit int) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.db.WithContext(ctx).
		Model(&domain.Course{}).
		Select(courseSelect).
		Where("course_date >= ? AND status = ?", today, domain.CourseScheduled).
		Order("course_date ASC, start_time ASC").
		Limit(limit).
		Find(&courses).Error
	return courses, err
}

func contains(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
