package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// sortClause builds "column direction" from user input. Columns outside the
// allow-list silently fall back to the entity default; order defaults ASC and
// is case-insensitive.
func sortClause(sort, order string, allowed map[string]bool, fallback string) string {
	if !allowed[sort] {
		sort = fallback
	}
	dir := "ASC"
	if strings.EqualFold(order, "DESC") {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s", sort, dir)
}

// nameExists runs the shared uniqueness probe. It is called both from the
// validators (pre-check, friendly field error) and inside write transactions
// (the authoritative check).
func nameExists(db *gorm.DB, table, name string, excludeID int64) (bool, error) {
	var count int64
	q := db.Table(table).Where("name = ?", name)
	if excludeID > 0 {
		q = q.Where("id != ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
