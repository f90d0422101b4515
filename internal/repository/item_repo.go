package repository

import (
	"github.com/chigozie9/WareHouse/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemRepository interface {
	FindByWarehouse(warehouseID uuid.UUID) ([]model.InventoryItem, error)
	FindByID(id uuid.UUID) (*model.InventoryItem, error)
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.InventoryItem, error)
	FindByWarehouseAndSKU(tx *gorm.DB, warehouseID uuid.UUID, sku string) (*model.InventoryItem, error)
	ExistsByWarehouse(warehouseID uuid.UUID) (bool, error)
	Create(tx *gorm.DB, item *model.InventoryItem) error
	Save(tx *gorm.DB, item *model.InventoryItem) error
	Delete(tx *gorm.DB, id uuid.UUID) error
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db}
}

func (r *itemRepo) FindByWarehouse(warehouseID uuid.UUID) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Where("warehouse_id = ?", warehouseID).Order("sku ASC").Find(&items).Error
	return items, err
}

func (r *itemRepo) FindByID(id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.First(&item, "id = ?", id).Error
	return &item, err
}

// FindByIDForUpdate locks the item row for the duration of tx.
func (r *itemRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := tx.Set("gorm:query_option", "FOR UPDATE").First(&item, "id = ?", id).Error
	return &item, err
}

// FindByWarehouseAndSKU uses tx when given so merge lookups run against
// locked state; pass nil for a plain read.
func (r *itemRepo) FindByWarehouseAndSKU(tx *gorm.DB, warehouseID uuid.UUID, sku string) (*model.InventoryItem, error) {
	handle := r.db
	if tx != nil {
		handle = tx
	}
	var item model.InventoryItem
	err := handle.First(&item, "warehouse_id = ? AND sku = ?", warehouseID, sku).Error
	return &item, err
}

func (r *itemRepo) ExistsByWarehouse(warehouseID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.InventoryItem{}).Where("warehouse_id = ?", warehouseID).Count(&count).Error
	return count > 0, err
}

func (r *itemRepo) Create(tx *gorm.DB, item *model.InventoryItem) error {
	return tx.Create(item).Error
}

func (r *itemRepo) Save(tx *gorm.DB, item *model.InventoryItem) error {
	return tx.Save(item).Error
}

func (r *itemRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.InventoryItem{}, "id = ?", id).Error
}
