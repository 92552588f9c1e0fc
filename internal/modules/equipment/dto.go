package equipment

// EquipmentRequest carries the inventory form fields for create and update.
// AvailableQuantity is a pointer: when omitted it defaults to the total
// quantity. IsActive is a pointer for the same reason, defaulting to true.
type EquipmentRequest struct {
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	Brand             string   `json:"brand"`
	Model             string   `json:"model"`
	Quantity          int      `json:"quantity"`
	AvailableQuantity *int     `json:"available_quantity"`
	Condition         string   `json:"condition"`
	PurchaseDate      string   `json:"purchase_date"`
	PurchasePrice     *float64 `json:"purchase_price"`
	LastMaintenance   string   `json:"last_maintenance"`
	NextMaintenance   string   `json:"next_maintenance"`
	Location          string   `json:"location"`
	Notes             string   `json:"notes"`
	IsActive          *bool    `json:"is_active"`
}
