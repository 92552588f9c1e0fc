package equipment

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
	List(ctx context.Context, f repository.EquipmentFilters, page, perPage int) ([]domain.Equipment, pagination.Pagination, error)
	ListAll(ctx context.Context, f repository.EquipmentFilters) ([]domain.Equipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Create(ctx context.Context, item *domain.Equipment) error
	Update(ctx context.Context, item *domain.Equipment) error
	Delete(ctx context.Context, id int64) error
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, f repository.EquipmentFilters, page, perPage int) ([]domain.Equipment, pagination.Pagination, error) {
	return s.store.List(ctx, f, page, perPage)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Equipment, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req EquipmentRequest) (*domain.Equipment, error) {
	req = normalize(req)
	if req.Condition == "" {
		req.Condition = string(domain.ConditionGood)
	}
	if req.Location == "" {
		req.Location = domain.DefaultEquipmentLocation
	}

	if fields, err := s.validate(ctx, req, 0); err != nil {
		return nil, err
	} else if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	item := &domain.Equipment{
		Name:              req.Name,
		Type:              req.Type,
		Brand:             req.Brand,
		Model:             req.Model,
		Quantity:          req.Quantity,
		AvailableQuantity: req.Quantity,
		Condition:         domain.EquipmentCondition(req.Condition),
		PurchaseDate:      req.PurchaseDate,
		PurchasePrice:     req.PurchasePrice,
		LastMaintenance:   req.LastMaintenance,
		NextMaintenance:   req.NextMaintenance,
		Location:          req.Location,
		Notes:             req.Notes,
		IsActive:          true,
	}
	if req.AvailableQuantity != nil {
		item.AvailableQuantity = *req.AvailableQuantity
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.store.Create(ctx, item); err != nil {
		return nil, duplicateToValidation(err)
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id int64, req EquipmentRequest) (*domain.Equipment, error) {
	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req = normalize(req)
	if req.Condition == "" {
		req.Condition = string(item.Condition)
	}
	if req.Location == "" {
		req.Location = domain.DefaultEquipmentLocation
	}

	if fields, err := s.validate(ctx, req, id); err != nil {
		return nil, err
	} else if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	item.Name = req.Name
	item.Type = req.Type
	item.Brand = req.Brand
	item.Model = req.Model
	item.Quantity = req.Quantity
	item.Condition = domain.EquipmentCondition(req.Condition)
	item.PurchaseDate = req.PurchaseDate
	item.PurchasePrice = req.PurchasePrice
	item.LastMaintenance = req.LastMaintenance
	item.NextMaintenance = req.NextMaintenance
	item.Location = req.Location
	item.Notes = req.Notes
	if req.AvailableQuantity != nil {
		item.AvailableQuantity = *req.AvailableQuantity
	} else {
		item.AvailableQuantity = req.Quantity
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.store.Update(ctx, item); err != nil {
		return nil, duplicateToValidation(err)
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// validate mirrors the inventory form checklist.
func (s *Service) validate(ctx context.Context, req EquipmentRequest, excludeID int64) (map[string]string, error) {
	fields := map[string]string{}

	switch {
	case req.Name == "":
		fields["name"] = "Equipment name is required."
	case len(req.Name) > 100:
		fields["name"] = "Equipment name must not exceed 100 characters."
	default:
		taken, err := s.store.NameExists(ctx, req.Name, excludeID)
		if err != nil {
			return nil, err
		}
		if taken {
			fields["name"] = "Equipment with this name already exists."
		}
	}

	switch {
	case req.Type == "":
		fields["type"] = "Equipment type is required."
	case !domain.ValidEquipmentType(req.Type):
		fields["type"] = "Invalid equipment type selected."
	}

	switch {
	case req.Quantity < 0:
		fields["quantity"] = "Quantity must be a non-negative number."
	case req.Quantity > domain.MaxEquipmentQuantity:
		fields["quantity"] = fmt.Sprintf("Quantity cannot exceed %d.", domain.MaxEquipmentQuantity)
	}

	if req.AvailableQuantity != nil {
		switch {
		case *req.AvailableQuantity < 0:
			fields["available_quantity"] = "Available quantity must be a non-negative number."
		case *req.AvailableQuantity > req.Quantity:
			fields["available_quantity"] = "Available quantity cannot exceed total quantity."
		}
	}

	if !domain.ValidEquipmentCondition(domain.EquipmentCondition(req.Condition)) {
		fields["equipment_condition"] = "Invalid condition selected."
	}

	if len(req.Brand) > 100 {
		fields["brand"] = "Brand name must not exceed 100 characters."
	}
	if len(req.Model) > 100 {
		fields["model"] = "Model name must not exceed 100 characters."
	}
	if len(req.Location) > 100 {
		fields["location"] = "Location must not exceed 100 characters."
	}

	if req.PurchaseDate != "" && !validator.ValidDate(req.PurchaseDate) {
		fields["purchase_date"] = "Invalid purchase date format."
	}

	if req.PurchasePrice != nil {
		switch {
		case *req.PurchasePrice < 0:
			fields["purchase_price"] = "Purchase price must be a non-negative number."
		case *req.PurchasePrice > domain.MaxPurchasePrice:
			fields["purchase_price"] = "Purchase price is too high."
		}
	}

	if req.LastMaintenance != "" && !validator.ValidDate(req.LastMaintenance) {
		fields["last_maintenance"] = "Invalid last maintenance date format."
	}
	if req.NextMaintenance != "" && !validator.ValidDate(req.NextMaintenance) {
		fields["next_maintenance"] = "Invalid next maintenance date format."
	}

	if len(req.Notes) > 5000 {
		fields["notes"] = "Notes must not exceed 5000 characters."
	}

	return fields, nil
}

func normalize(req EquipmentRequest) EquipmentRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Type = strings.TrimSpace(req.Type)
	req.Brand = strings.TrimSpace(req.Brand)
	req.Model = strings.TrimSpace(req.Model)
	req.Condition = strings.TrimSpace(req.Condition)
	req.PurchaseDate = strings.TrimSpace(req.PurchaseDate)
	req.LastMaintenance = strings.TrimSpace(req.LastMaintenance)
	req.NextMaintenance = strings.TrimSpace(req.NextMaintenance)
	req.Location = strings.TrimSpace(req.Location)
	req.Notes = strings.TrimSpace(req.Notes)
	return req
}

func duplicateToValidation(err error) error {
	if errors.Is(err, repository.ErrDuplicateName) {
		return &ValidationError{Fields: map[string]string{
			"name": "Equipment with this name already exists.",
		}}
	}
	return err
}
