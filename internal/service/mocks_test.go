package service

import (
	"sync"
	"time"

	"github.com/chigozie9/WareHouse/internal/model"
	"github.com/chigozie9/WareHouse/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeTxManager serializes units of work with a mutex, standing in for the
// row locks the real store takes.
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) Do(fn func(tx *gorm.DB) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(nil)
}

// Mock WarehouseRepository

type mockWarehouseRepo struct {
	mu         sync.Mutex
	warehouses map[uuid.UUID]model.Warehouse
}

func newMockWarehouseRepo() *mockWarehouseRepo {
	return &mockWarehouseRepo{warehouses: make(map[uuid.UUID]model.Warehouse)}
}

func (m *mockWarehouseRepo) seed(name string, maxCapacity, currentCapacity int) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	w := model.Warehouse{Name: name, MaxCapacity: maxCapacity, CurrentCapacity: currentCapacity}
	w.ID = uuid.New()
	m.warehouses[w.ID] = w
	return w.ID
}

func (m *mockWarehouseRepo) Create(warehouse *model.Warehouse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if warehouse.ID == uuid.Nil {
		warehouse.ID = uuid.New()
	}
	m.warehouses[warehouse.ID] = *warehouse
	return nil
}

func (m *mockWarehouseRepo) FindAll() ([]model.Warehouse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Warehouse
	for _, w := range m.warehouses {
		out = append(out, w)
	}
	return out, nil
}

func (m *mockWarehouseRepo) FindByID(id uuid.UUID) (*model.Warehouse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.warehouses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &w, nil
}

func (m *mockWarehouseRepo) FindByName(name string) (*model.Warehouse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.warehouses {
		if w.Name == name {
			found := w
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWarehouseRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Warehouse, error) {
	return m.FindByID(id)
}

func (m *mockWarehouseRepo) UpdateCapacity(tx *gorm.DB, id uuid.UUID, newCapacity int, updatedBy string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.warehouses[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	w.CurrentCapacity = newCapacity
	w.UpdatedBy = updatedBy
	m.warehouses[id] = w
	return nil
}

func (m *mockWarehouseRepo) Save(tx *gorm.DB, warehouse *model.Warehouse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warehouses[warehouse.ID] = *warehouse
	return nil
}

func (m *mockWarehouseRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.warehouses, id)
	return nil
}

// Mock ItemRepository

type mockItemRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]model.InventoryItem
}

func newMockItemRepo() *mockItemRepo {
	return &mockItemRepo{items: make(map[uuid.UUID]model.InventoryItem)}
}

func (m *mockItemRepo) seed(warehouseID uuid.UUID, sku, name string, quantity int) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	item := model.InventoryItem{WarehouseID: warehouseID, SKU: sku, Name: name, Quantity: quantity}
	item.ID = uuid.New()
	m.items[item.ID] = item
	return item.ID
}

func (m *mockItemRepo) FindByWarehouse(warehouseID uuid.UUID) ([]model.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.InventoryItem
	for _, item := range m.items {
		if item.WarehouseID == warehouseID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockItemRepo) FindByID(id uuid.UUID) (*model.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (m *mockItemRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.InventoryItem, error) {
	return m.FindByID(id)
}

func (m *mockItemRepo) FindByWarehouseAndSKU(tx *gorm.DB, warehouseID uuid.UUID, sku string) (*model.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if item.WarehouseID == warehouseID && item.SKU == sku {
			found := item
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockItemRepo) ExistsByWarehouse(warehouseID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if item.WarehouseID == warehouseID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockItemRepo) Create(tx *gorm.DB, item *model.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	m.items[item.ID] = *item
	return nil
}

func (m *mockItemRepo) Save(tx *gorm.DB, item *model.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = *item
	return nil
}

func (m *mockItemRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

// Mock TransferLogRepository

type mockTransferLogRepo struct {
	mu   sync.Mutex
	logs []model.TransferLog
}

func newMockTransferLogRepo() *mockTransferLogRepo {
	return &mockTransferLogRepo{}
}

func (m *mockTransferLogRepo) Create(tx *gorm.DB, log *model.TransferLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	m.logs = append(m.logs, *log)
	return nil
}

func (m *mockTransferLogRepo) FindAll() ([]model.TransferLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.TransferLog, len(m.logs))
	copy(out, m.logs)
	return out, nil
}

func (m *mockTransferLogRepo) GetStockMovement(startDate, endDate time.Time) ([]repository.StockMovementData, error) {
	return nil, nil
}

func (m *mockTransferLogRepo) GetDashboardStats() (*repository.DashboardStats, error) {
	return &repository.DashboardStats{}, nil
}

// fixture wires the services against the in-memory mocks.
type fixture struct {
	warehouses *mockWarehouseRepo
	items      *mockItemRepo
	logs       *mockTransferLogRepo

	inventory InventoryService
	transfers TransferService
	lifecycle WarehouseService
}

func newFixture() *fixture {
	warehouses := newMockWarehouseRepo()
	items := newMockItemRepo()
	logs := newMockTransferLogRepo()
	txm := &fakeTxManager{}

	return &fixture{
		warehouses: warehouses,
		items:      items,
		logs:       logs,
		inventory:  NewInventoryService(warehouses, items, txm, nil),
		transfers:  NewTransferService(warehouses, items, logs, txm, nil),
		lifecycle:  NewWarehouseService(warehouses, items, txm),
	}
}

// capacityOf reads the stored capacity of a warehouse.
func (f *fixture) capacityOf(id uuid.UUID) int {
	w, _ := f.warehouses.FindByID(id)
	return w.CurrentCapacity
}

// itemQuantitySum sums the quantities of all items stored in a warehouse.
func (f *fixture) itemQuantitySum(id uuid.UUID) int {
	items, _ := f.items.FindByWarehouse(id)
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
