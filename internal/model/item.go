package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem is stock of one SKU inside one warehouse. SKU is unique per
// warehouse, not globally. Quantity is strictly positive: an item whose
// quantity would reach zero is deleted instead of stored empty.
type InventoryItem struct {
	BaseModel
	WarehouseID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_warehouse_sku" json:"warehouse_id"`
	SKU             string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_warehouse_sku" json:"sku" validate:"required"`
	Name            string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description     string     `json:"description"`
	Category        string     `gorm:"type:varchar(100)" json:"category"`
	StorageLocation string     `gorm:"type:varchar(100)" json:"storage_location"`
	Quantity        int        `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	ExpirationDate  *time.Time `gorm:"type:date" json:"expiration_date,omitempty"`
}
