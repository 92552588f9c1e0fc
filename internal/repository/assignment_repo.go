package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gymadmin/internal/domain"
	"gymadmin/internal/pkg/pagination"
)

// LinkOutcome distinguishes the two success paths of the upsert so callers
// and tests can tell them apart.
type LinkOutcome int

const (
	LinkInserted LinkOutcome = iota
	LinkUpdated
)

// AssignmentFilters carries the recognized list filters for the linkage table.
type AssignmentFilters struct {
	CourseID    int64
	EquipmentID int64
	Search      string
}

const assignmentSelect = "course_equipment.*, " +
	"courses.name AS course_name, courses.category AS course_category, courses.course_date AS course_date, " +
	"courses.start_time AS course_start_time, courses.status AS course_status, " +
	"equipment.name AS equipment_name, equipment.type AS equipment_type, equipment.quantity AS equipment_quantity"

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&domain.Assignment{}).
		Joins("INNER JOIN courses ON course_equipment.course_id = courses.id").
		Joins("INNER JOIN equipment ON course_equipment.equipment_id = equipment.id")
}

func (r *AssignmentRepository) applyFilters(q *gorm.DB, f AssignmentFilters) *gorm.DB {
	if f.CourseID > 0 {
		q = q.Where("course_equipment.course_id = ?", f.CourseID)
	}
	if f.EquipmentID > 0 {
		q = q.Where("course_equipment.equipment_id = ?", f.EquipmentID)
	}
	if f.Search != "" {
		term := contains(f.Search)
		q = q.Where("LOWER(courses.name) LIKE ? OR LOWER(equipment.name) LIKE ?", term, term)
	}
	return q
}

// List returns one page of assignments with both parents joined in, newest
// assignment first.
func (r *AssignmentRepository) List(ctx context.Context, f AssignmentFilters, page, perPage int) ([]domain.Assignment, pagination.Pagination, error) {
	var total int64
	q := r.applyFilters(r.joined(ctx), f)
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Pagination{}, err
	}

	p := pagination.New(total, page, perPage)

	var rows []domain.Assignment
	err := q.
		Select(assignmentSelect).
		Order("course_equipment.assigned_at DESC, course_equipment.id DESC").
		Limit(p.PerPage).
		Offset(p.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, pagination.Pagination{}, err
	}

	return rows, p, nil
}

// GetPair returns the assignment row for a (course, equipment) pair.
func (r *AssignmentRepository) GetPair(ctx context.Context, courseID, equipmentID int64) (*domain.Assignment, error) {
	var row domain.Assignment
	err := r.joined(ctx).
		Select(assignmentSelect).
		Where("course_equipment.course_id = ? AND course_equipment.equipment_id = ?", courseID, equipmentID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Link upserts the assignment row for the pair inside one transaction:
// both parents are verified, then an existing row is refreshed in place or a
// new one inserted. Equipment availability is deliberately not touched.
func (r *AssignmentRepository) Link(ctx context.Context, courseID, equipmentID int64, quantity int, assignedBy *int64) (LinkOutcome, error) {
	outcome := LinkInserted

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Course{}).Where("id = ?", courseID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrCourseNotFound
		}

		if err := tx.Model(&domain.Equipment{}).Where("id = ?", equipmentID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrEquipmentNotFound
		}

		var existing domain.Assignment
		err := tx.Where("course_id = ? AND equipment_id = ?", courseID, equipmentID).
			First(&existing).Error
		switch {
		case err == nil:
			outcome = LinkUpdated
			return tx.Model(&domain.Assignment{}).
				Where("id = ?", existing.ID).
				Updates(map[string]any{
					"quantity_needed": quantity,
					"assigned_by":     assignedBy,
					"assigned_at":     time.Now().UTC(),
				}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&domain.Assignment{
				CourseID:       courseID,
				EquipmentID:    equipmentID,
				QuantityNeeded: quantity,
				AssignedBy:     assignedBy,
				AssignedAt:     time.Now().UTC(),
			}).Error
		default:
			return err
		}
	})

	return outcome, err
}

// Unlink deletes the row for the pair. A missing pair reports
// gorm.ErrRecordNotFound; nothing else changes.
func (r *AssignmentRepository) Unlink(ctx context.Context, courseID, equipmentID int64) error {
	res := r.db.WithContext(ctx).
		Where("course_id = ? AND equipment_id = ?", courseID, equipmentID).
		Delete(&domain.Assignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AssignmentStats is the linkage slice of the dashboard snapshot.
type AssignmentStats struct {
	Total                int64 `json:"total_assignments"`
	CoursesWithEquipment int64 `json:"courses_with_equipment"`
	EquipmentInUse       int64 `json:"equipment_in_use"`
	TotalAssigned        int64 `json:"total_quantity_assigned"`
}

func (r *AssignmentRepository) Stats(ctx context.Context) (*AssignmentStats, error) {
	stats := &AssignmentStats{}

	if err := r.db.WithContext(ctx).Model(&domain.Assignment{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).Model(&domain.Assignment{}).
		Distinct("course_id").
		Count(&stats.CoursesWithEquipment).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&domain.Assignment{}).
		Distinct("equipment_id").
		Count(&stats.EquipmentInUse).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&domain.Assignment{}).
		Select("COALESCE(SUM(quantity_needed), 0)").
		Scan(&stats.TotalAssigned).Error
	return stats, err
}
