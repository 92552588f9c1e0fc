package repository

import (
	"context"

	"gorm.io/gorm"

	"gymadmin/internal/domain"
	"gymadmin/internal/pkg/pagination"
)

// EquipmentFilters carries the recognized list filters for inventory.
// IsActive is a pointer so "not applied" and "inactive only" stay distinct.
type EquipmentFilters struct {
	Search      string
	Type        string
	Condition   string
	Brand       string
	Location    string
	IsActive    *bool
	MinQuantity int
	MaxQuantity int
	CourseID    int64
	Sort        string
	Order       string
}

var equipmentSortColumns = map[string]bool{
	"name":               true,
	"type":               true,
	"brand":              true,
	"quantity":           true,
	"available_quantity": true,
	"condition":          true,
	"location":           true,
	"purchase_date":      true,
	"created_at":         true,
}

const equipmentDefaultSort = "name"

const equipmentSelect = "equipment.*, " +
	"(SELECT COUNT(*) FROM course_equipment WHERE course_equipment.equipment_id = equipment.id) AS courses_count, " +
	"(SELECT COALESCE(SUM(quantity_needed), 0) FROM course_equipment WHERE course_equipment.equipment_id = equipment.id) AS total_assigned"

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) applyFilters(q *gorm.DB, f EquipmentFilters) *gorm.DB {
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Condition != "" {
		q = q.Where("condition = ?", f.Condition)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	if f.Brand != "" {
		q = q.Where("LOWER(brand) LIKE ?", contains(f.Brand))
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", contains(f.Location))
	}
	if f.MinQuantity > 0 {
		q = q.Where("quantity >= ?", f.MinQuantity)
	}
	if f.MaxQuantity > 0 {
		q = q.Where("quantity <= ?", f.MaxQuantity)
	}
	if f.Search != "" {
		term := contains(f.Search)
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(model) LIKE ? OR LOWER(notes) LIKE ?",
			term, term, term, term,
		)
	}
	if f.CourseID > 0 {
		q = q.Where(
			"id IN (SELECT equipment_id FROM course_equipment WHERE course_id = ?)",
			f.CourseID,
		)
	}
	return q
}

// List returns one page of equipment matching the filters.
func (r *EquipmentRepository) List(ctx context.Context, f EquipmentFilters, page, perPage int) ([]domain.Equipment, pagination.Pagination, error) {
	var total int64
	q := r.applyFilters(r.db.WithContext(ctx).Model(&domain.Equipment{}), f)
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Pagination{}, err
	}

	p := pagination.New(total, page, perPage)

	var items []domain.Equipment
	err := q.
		Select(equipmentSelect).
		Order(sortClause(f.Sort, f.Order, equipmentSortColumns, equipmentDefaultSort)).
		Limit(p.PerPage).
		Offset(p.Offset).
		Find(&items).Error
	if err != nil {
		return nil, pagination.Pagination{}, err
	}

	return items, p, nil
}

// ListAll returns every matching item for export, grouped by type then name.
func (r *EquipmentRepository) ListAll(ctx context.Context, f EquipmentFilters) ([]domain.Equipment, error) {
	var items []domain.Equipment
	err := r.applyFilters(r.db.WithContext(ctx).Model(&domain.Equipment{}), f).
		Select(equipmentSelect).
		Order("type ASC, name ASC").
		Find(&items).Error
	return items, err
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var item domain.Equipment
	err := r.db.WithContext(ctx).
		Model(&domain.Equipment{}).
		Select(equipmentSelect).
		Where("equipment.id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, item *domain.Equipment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := nameExists(tx, "equipment", item.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateName
		}
		return mapUniqueViolation(tx.Create(item).Error)
	})
}

func (r *EquipmentRepository) Update(ctx context.Context, item *domain.Equipment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := nameExists(tx, "equipment", item.Name, item.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateName
		}
		// Save skips zero values for booleans via struct updates, so use
		// Select("*") to persist is_active=false and cleared fields.
		return mapUniqueViolation(tx.Model(item).Select("*").Omit("created_at").Updates(item).Error)
	})
}

// Delete removes the item and its assignment rows in one transaction.
// Courses are left untouched.
func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("equipment_id = ?", id).Delete(&domain.Assignment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Equipment{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *EquipmentRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	return nameExists(r.db.WithContext(ctx), "equipment", name, excludeID)
}

// EquipmentStats is the inventory slice of the dashboard snapshot.
type EquipmentStats struct {
	Total          int64            `json:"total"`
	TotalQuantity  int64            `json:"total_quantity"`
	Active         int64            `json:"active"`
	Inactive       int64            `json:"inactive"`
	ByCondition    map[string]int64 `json:"by_condition"`
	ByType         []TypeCount      `json:"by_type"`
	MaintenanceDue int64            `json:"maintenance_due"`
	LowStock       int64            `json:"low_stock"`
}

type TypeCount struct {
	Type          string `json:"type"`
	Count         int64  `json:"count"`
	TotalQuantity int64  `json:"total_quantity"`
}

// Stats recomputes the inventory aggregates. today is an ISO date string and
// lowStock the quantity threshold.
func (r *EquipmentRepository) Stats(ctx context.Context, today string, lowStock int) (*EquipmentStats, error) {
	stats := &EquipmentStats{ByCondition: map[string]int64{}}

	if err := r.db.WithContext(ctx).Model(&domain.Equipment{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&domain.Equipment{}).Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return nil, err
	}
	stats.Inactive = stats.Total - stats.Active

	err := r.db.WithContext(ctx).Model(&domain.Equipment{}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&stats.TotalQuantity).Error
	if err != nil {
		return nil, err
	}

	var byCondition []struct {
		Condition string
		Count     int64
	}
	err = r.db.WithContext(ctx).Model(&domain.Equipment{}).
		Select("condition, COUNT(*) AS count").
		Group("condition").
		Scan(&byCondition).Error
	if err != nil {
		return nil, err
	}
	for _, row := range byCondition {
		stats.ByCondition[row.Condition] = row.Count
	}

	err = r.db.WithContext(ctx).Model(&domain.Equipment{}).
		Select("type, COUNT(*) AS count, COALESCE(SUM(quantity), 0) AS total_quantity").
		Group("type").
		Order("count DESC").
		Scan(&stats.ByType).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&domain.Equipment{}).
		Where("next_maintenance IS NOT NULL AND next_maintenance != '' AND next_maintenance <= ? AND is_active = ?", today, true).
		Count(&stats.MaintenanceDue).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&domain.Equipment{}).
		Where("quantity <= ? AND is_active = ?", lowStock, true).
		Count(&stats.LowStock).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// LowStock lists the active items at or below the quantity threshold.
func (r *EquipmentRepository) LowStock(ctx context.Context, threshold, limit int) ([]domain.Equipment, error) {
	var items []domain.Equipment
	err := r.db.WithContext(ctx).
		Where("quantity <= ? AND is_active = ?", threshold, true).
		Order("quantity ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// MaintenanceDue lists active items whose next maintenance falls on or before
// the cutoff date.
func (r *EquipmentRepository) MaintenanceDue(ctx context.Context, cutoff string, limit int) ([]domain.Equipment, error) {
	var items []domain.Equipment
	err := r.db.WithContext(ctx).
		Where("next_maintenance IS NOT NULL AND next_maintenance != '' AND next_maintenance <= ? AND is_active = ?", cutoff, true).
		Order("next_maintenance ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// Recent lists the most recently added items.
func (r *EquipmentRepository) Recent(ctx context.Context, limit int) ([]domain.Equipment, error) {
	var items []domain.Equipment
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
