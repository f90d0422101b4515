package model

// Warehouse is a storage site with a fixed capacity. CurrentCapacity is
// derived state: it always equals the sum of the quantities of the items
// stored in it and is only ever changed through item operations.
type Warehouse struct {
	BaseModel
	Name            string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Location        string `gorm:"type:varchar(255)" json:"location"`
	MaxCapacity     int    `gorm:"not null" json:"max_capacity" validate:"gte=0"`
	CurrentCapacity int    `gorm:"not null;default:0" json:"current_capacity" validate:"gte=0"`
}

// Headroom is the capacity still available for incoming stock.
func (w *Warehouse) Headroom() int {
	return w.MaxCapacity - w.CurrentCapacity
}
