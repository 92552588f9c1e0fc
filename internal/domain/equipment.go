package domain

import "time"

type EquipmentCondition string

const (
	ConditionExcellent   EquipmentCondition = "excellent"
	ConditionGood        EquipmentCondition = "good"
	ConditionFair        EquipmentCondition = "fair"
	ConditionPoor        EquipmentCondition = "poor"
	ConditionNeedsRepair EquipmentCondition = "needs_repair"
)

// EquipmentTypes is the fixed set of inventory types.
var EquipmentTypes = []string{
	"Yoga",
	"Weights",
	"Cardio",
	"Combat",
	"Accessories",
	"Strength",
	"Recovery",
	"Functional",
	"Pilates",
	"Other",
}

// EquipmentConditionLabels maps condition values to their display names.
var EquipmentConditionLabels = map[EquipmentCondition]string{
	ConditionExcellent:   "Excellent",
	ConditionGood:        "Good",
	ConditionFair:        "Fair",
	ConditionPoor:        "Poor",
	ConditionNeedsRepair: "Needs Repair",
}

const (
	DefaultEquipmentLocation = "Equipment Room"

	MaxEquipmentQuantity = 9999
	MaxPurchasePrice     = 9999999.99

	// LowStockThreshold is the default quantity at or below which
	// equipment counts as low stock on the dashboard.
	LowStockThreshold = 5

	// MaintenanceDueWindowDays is how far ahead next_maintenance is
	// considered due.
	MaintenanceDueWindowDays = 30
)

type Equipment struct {
	ID                int64              `json:"id" gorm:"primaryKey"`
	Name              string             `json:"name" gorm:"size:100;uniqueIndex"`
	Type              string             `json:"type" gorm:"size:50"`
	Brand             string             `json:"brand,omitempty" gorm:"size:100"`
	Model             string             `json:"model,omitempty" gorm:"size:100"`
	Quantity          int                `json:"quantity"`
	AvailableQuantity int                `json:"available_quantity"`
	Condition         EquipmentCondition `json:"condition" gorm:"column:condition;size:20"`
	PurchaseDate      string             `json:"purchase_date,omitempty" gorm:"type:date"`
	PurchasePrice     *float64           `json:"purchase_price,omitempty"`
	LastMaintenance   string             `json:"last_maintenance,omitempty" gorm:"type:date"`
	NextMaintenance   string             `json:"next_maintenance,omitempty" gorm:"type:date"`
	Location          string             `json:"location,omitempty" gorm:"size:100"`
	Notes             string             `json:"notes,omitempty" gorm:"size:5000"`
	IsActive          bool               `json:"is_active"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`

	// Populated by list/detail queries, not stored.
	CoursesCount  int64 `json:"courses_count" gorm:"->;-:migration"`
	TotalAssigned int64 `json:"total_assigned" gorm:"->;-:migration"`
}

func (Equipment) TableName() string { return "equipment" }

func ValidEquipmentCondition(c EquipmentCondition) bool {
	_, ok := EquipmentConditionLabels[c]
	return ok
}

func ValidEquipmentType(t string) bool {
	for _, v := range EquipmentTypes {
		if v == t {
			return true
		}
	}
	return false
}
