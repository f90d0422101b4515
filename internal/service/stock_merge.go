package service

import (
	"errors"

	"github.com/chigozie9/WareHouse/internal/model"
	"github.com/chigozie9/WareHouse/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// mergeDecision is the outcome of resolving an incoming record against the
// stock already stored under (warehouse, SKU). Exactly one field is set:
// Existing carries the merged item, Draft a new one owned by the warehouse.
type mergeDecision struct {
	Existing *model.InventoryItem
	Draft    *model.InventoryItem
}

// resolveStockMerge decides merge-or-create for incoming stock. On merge the
// existing quantity grows by incoming.Quantity and the incoming record is
// authoritative for the descriptive attributes. The capacity delta for the
// caller is +incoming.Quantity on both paths. No persistence happens here.
func resolveStockMerge(tx *gorm.DB, items repository.ItemRepository, warehouseID uuid.UUID, incoming *model.InventoryItem) (*mergeDecision, error) {
	existing, err := items.FindByWarehouseAndSKU(tx, warehouseID, incoming.SKU)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			draft := *incoming
			draft.BaseModel = model.BaseModel{}
			draft.WarehouseID = warehouseID
			return &mergeDecision{Draft: &draft}, nil
		}
		return nil, err
	}

	existing.Quantity += incoming.Quantity
	existing.Name = incoming.Name
	existing.Description = incoming.Description
	existing.Category = incoming.Category
	existing.StorageLocation = incoming.StorageLocation
	existing.ExpirationDate = incoming.ExpirationDate
	return &mergeDecision{Existing: existing}, nil
}
