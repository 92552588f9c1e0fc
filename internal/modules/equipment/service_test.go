package equipment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymadmin/internal/domain"
	"gymadmin/internal/pkg/pagination"
	"gymadmin/internal/repository"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) List(ctx context.Context, f repository.EquipmentFilters, page, perPage int) ([]domain.Equipment, pagination.Pagination, error) {
	args := m.Called(ctx, f, page, perPage)
	return args.Get(0).([]domain.Equipment), args.Get(1).(pagination.Pagination), args.Error(2)
}

func (m *MockStore) ListAll(ctx context.Context, f repository.EquipmentFilters) ([]domain.Equipment, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockStore) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockStore) Create(ctx context.Context, item *domain.Equipment) error {
	args := m.Called(ctx, item)
	if item != nil {
		item.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockStore) Update(ctx context.Context, item *domain.Equipment) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func validRequest() EquipmentRequest {
	return EquipmentRequest{
		Name:     "Yoga Mat",
		Type:     "Yoga",
		Quantity: 25,
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	store := new(MockStore)
	store.On("NameExists", mock.Anything, "Yoga Mat", int64(0)).Return(false, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(store)
	item, err := svc.Create(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.ConditionGood, item.Condition)
	assert.Equal(t, domain.DefaultEquipmentLocation, item.Location)
	assert.Equal(t, 25, item.AvailableQuantity)
	assert.True(t, item.IsActive)
	store.AssertExpectations(t)
}

func TestCreateRejectsAvailableAboveTotal(t *testing.T) {
	store := new(MockStore)
	store.On("NameExists", mock.Anything, "Yoga Mat", int64(0)).Return(false, nil)

	svc := NewService(store)
	req := validRequest()
	available := 30
	req.AvailableQuantity = &available

	_, err := svc.Create(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Available quantity cannot exceed total quantity.", verr.Fields["available_quantity"])
	store.AssertNotCalled(t, "Create")
}

func TestCreateCollectsAllViolations(t *testing.T) {
	store := new(MockStore)

	svc := NewService(store)
	price := -1.0
	_, err := svc.Create(context.Background(), EquipmentRequest{
		Name:          "",
		Type:          "Snowboard",
		Quantity:      99999,
		Condition:     "shiny",
		PurchaseDate:  "yesterday",
		PurchasePrice: &price,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Equipment name is required.", verr.Fields["name"])
	assert.Equal(t, "Invalid equipment type selected.", verr.Fields["type"])
	assert.Equal(t, "Quantity cannot exceed 9999.", verr.Fields["quantity"])
	assert.Equal(t, "Invalid condition selected.", verr.Fields["equipment_condition"])
	assert.Equal(t, "Invalid purchase date format.", verr.Fields["purchase_date"])
	assert.Equal(t, "Purchase price must be a non-negative number.", verr.Fields["purchase_price"])
	store.AssertNotCalled(t, "Create")
}

func TestCreateRejectsTakenName(t *testing.T) {
	store := new(MockStore)
	store.On("NameExists", mock.Anything, "Yoga Mat", int64(0)).Return(true, nil)

	svc := NewService(store)
	_, err := svc.Create(context.Background(), validRequest())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Equipment with this name already exists.", verr.Fields["name"])
}

func TestCreateMapsRaceLoserToValidation(t *testing.T) {
	store := new(MockStore)
	store.On("NameExists", mock.Anything, "Yoga Mat", int64(0)).Return(false, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateName)

	svc := NewService(store)
	_, err := svc.Create(context.Background(), validRequest())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Equipment with this name already exists.", verr.Fields["name"])
}

func TestUpdateCanDeactivate(t *testing.T) {
	store := new(MockStore)
	store.On("GetByID", mock.Anything, int64(4)).Return(&domain.Equipment{
		ID:        4,
		Name:      "Yoga Mat",
		Type:      "Yoga",
		Quantity:  25,
		Condition: domain.ConditionFair,
		IsActive:  true,
	}, nil)
	store.On("NameExists", mock.Anything, "Yoga Mat", int64(4)).Return(false, nil)
	store.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(store)
	req := validRequest()
	inactive := false
	req.IsActive = &inactive

	item, err := svc.Update(context.Background(), 4, req)

	require.NoError(t, err)
	assert.False(t, item.IsActive)
	// Condition was omitted in the request, the stored value stays.
	assert.Equal(t, domain.ConditionFair, item.Condition)
	store.AssertExpectations(t)
}
