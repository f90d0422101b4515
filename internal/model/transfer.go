package model

import "github.com/google/uuid"

// TransferRequest is the payload for moving stock between two warehouses.
type TransferRequest struct {
	SourceWarehouseID      uuid.UUID `json:"source_warehouse_id" validate:"uuid_required"`
	DestinationWarehouseID uuid.UUID `json:"destination_warehouse_id" validate:"uuid_required"`
	SKU                    string    `json:"sku" validate:"required"`
	Quantity               int       `json:"quantity" validate:"required,gt=0"`
}

// TransferLog records a completed transfer. Rows are written inside the
// transfer transaction and feed the movement dashboard.
type TransferLog struct {
	BaseModel
	SourceWarehouseID      uuid.UUID `gorm:"type:uuid;not null;index" json:"source_warehouse_id"`
	DestinationWarehouseID uuid.UUID `gorm:"type:uuid;not null;index" json:"destination_warehouse_id"`
	SKU                    string    `gorm:"type:varchar(50);not null" json:"sku"`
	Quantity               int       `gorm:"not null" json:"quantity"`
}
