package repository

import (
	"github.com/chigozie9/WareHouse/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WarehouseRepository interface {
	Create(warehouse *model.Warehouse) error
	FindAll() ([]model.Warehouse, error)
	FindByID(id uuid.UUID) (*model.Warehouse, error)
	FindByName(name string) (*model.Warehouse, error)
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Warehouse, error)
	UpdateCapacity(tx *gorm.DB, id uuid.UUID, newCapacity int, updatedBy string) error
	Save(tx *gorm.DB, warehouse *model.Warehouse) error
	Delete(tx *gorm.DB, id uuid.UUID) error
}

type warehouseRepo struct {
	db *gorm.DB
}

func NewWarehouseRepo(db *gorm.DB) WarehouseRepository {
	return &warehouseRepo{db}
}

func (r *warehouseRepo) Create(warehouse *model.Warehouse) error {
	return r.db.Create(warehouse).Error
}

func (r *warehouseRepo) FindAll() ([]model.Warehouse, error) {
	var warehouses []model.Warehouse
	err := r.db.Order("name ASC").Find(&warehouses).Error
	return warehouses, err
}

func (r *warehouseRepo) FindByID(id uuid.UUID) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	err := r.db.First(&warehouse, "id = ?", id).Error
	return &warehouse, err
}

func (r *warehouseRepo) FindByName(name string) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	err := r.db.First(&warehouse, "name = ?", name).Error
	return &warehouse, err
}

// FindByIDForUpdate locks the warehouse row for the duration of tx
// (Pessimistic Locking), serializing concurrent capacity changes.
func (r *warehouseRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	err := tx.Set("gorm:query_option", "FOR UPDATE").First(&warehouse, "id = ?", id).Error
	return &warehouse, err
}

// UpdateCapacity runs on the tx handle so it participates in the caller's
// transaction together with the item mutation.
func (r *warehouseRepo) UpdateCapacity(tx *gorm.DB, id uuid.UUID, newCapacity int, updatedBy string) error {
	return tx.Model(&model.Warehouse{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_capacity": newCapacity,
			"updated_by":       updatedBy,
		}).Error
}

func (r *warehouseRepo) Save(tx *gorm.DB, warehouse *model.Warehouse) error {
	return tx.Save(warehouse).Error
}

func (r *warehouseRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Warehouse{}, "id = ?", id).Error
}
