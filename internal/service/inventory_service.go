package service

import (
	"encoding/json"
	"errors"

	"github.com/chigozie9/WareHouse/internal/apperr"
	"github.com/chigozie9/WareHouse/internal/model"
	"github.com/chigozie9/WareHouse/internal/repository"
	"github.com/chigozie9/WareHouse/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryService interface {
	ListItems(warehouseID uuid.UUID) ([]model.InventoryItem, error)
	AddItem(warehouseID uuid.UUID, draft *model.InventoryItem, userID string) (*model.InventoryItem, error)
	UpdateItem(warehouseID, itemID uuid.UUID, updated *model.InventoryItem, userID string) (*model.InventoryItem, error)
	DeleteItem(warehouseID, itemID uuid.UUID, userID string) error
}

type inventoryService struct {
	warehouseRepo repository.WarehouseRepository
	itemRepo      repository.ItemRepository
	txManager     repository.TxManager
	wsHub         *ws.Hub
}

func NewInventoryService(wRepo repository.WarehouseRepository, iRepo repository.ItemRepository, txm repository.TxManager, hub *ws.Hub) InventoryService {
	return &inventoryService{
		warehouseRepo: wRepo,
		itemRepo:      iRepo,
		txManager:     txm,
		wsHub:         hub,
	}
}

func (s *inventoryService) ListItems(warehouseID uuid.UUID) ([]model.InventoryItem, error) {
	return s.itemRepo.FindByWarehouse(warehouseID)
}

// AddItem stores incoming stock in the warehouse. Stock under a SKU the
// warehouse already holds merges into the existing item; anything else
// becomes a new item. Item and capacity are committed together.
func (s *inventoryService) AddItem(warehouseID uuid.UUID, draft *model.InventoryItem, userID string) (*model.InventoryItem, error) {
	if draft.Quantity <= 0 {
		return nil, apperr.ErrInvalidQuantity
	}

	var stored *model.InventoryItem
	err := s.txManager.Do(func(tx *gorm.DB) error {
		warehouse, err := s.warehouseRepo.FindByIDForUpdate(tx, warehouseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrWarehouseNotFound
			}
			return err
		}

		decision, err := resolveStockMerge(tx, s.itemRepo, warehouseID, draft)
		if err != nil {
			return err
		}

		newCapacity, err := reserveCapacity(warehouse, draft.Quantity)
		if err != nil {
			return err
		}

		if decision.Existing != nil {
			decision.Existing.UpdatedBy = userID
			if err := s.itemRepo.Save(tx, decision.Existing); err != nil {
				return err
			}
			stored = decision.Existing
		} else {
			decision.Draft.CreatedBy = userID
			decision.Draft.UpdatedBy = userID
			if err := s.itemRepo.Create(tx, decision.Draft); err != nil {
				return err
			}
			stored = decision.Draft
		}

		return s.warehouseRepo.UpdateCapacity(tx, warehouse.ID, newCapacity, userID)
	})
	if err != nil {
		return nil, err
	}

	s.broadcastStockUpdate("item_added", stored, userID)
	return stored, nil
}

// UpdateItem overwrites all mutable attributes including SKU. The capacity
// delta is the difference between new and old quantity.
func (s *inventoryService) UpdateItem(warehouseID, itemID uuid.UUID, updated *model.InventoryItem, userID string) (*model.InventoryItem, error) {
	var stored *model.InventoryItem
	err := s.txManager.Do(func(tx *gorm.DB) error {
		warehouse, err := s.warehouseRepo.FindByIDForUpdate(tx, warehouseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrWarehouseNotFound
			}
			return err
		}

		existing, err := s.itemRepo.FindByIDForUpdate(tx, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrItemNotFound
			}
			return err
		}
		if existing.WarehouseID != warehouseID {
			return apperr.ErrItemWarehouseMismatch
		}

		if updated.Quantity <= 0 {
			return apperr.ErrInvalidQuantity
		}

		// SKU stays unique per warehouse
		if updated.SKU != existing.SKU {
			if _, err := s.itemRepo.FindByWarehouseAndSKU(tx, warehouseID, updated.SKU); err == nil {
				return apperr.ErrDuplicateSKU
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		diff := updated.Quantity - existing.Quantity
		newCapacity, err := reserveCapacity(warehouse, diff)
		if err != nil {
			return err
		}

		existing.Name = updated.Name
		existing.SKU = updated.SKU
		existing.Description = updated.Description
		existing.Category = updated.Category
		existing.StorageLocation = updated.StorageLocation
		existing.Quantity = updated.Quantity
		existing.ExpirationDate = updated.ExpirationDate
		existing.UpdatedBy = userID

		if err := s.itemRepo.Save(tx, existing); err != nil {
			return err
		}
		stored = existing

		return s.warehouseRepo.UpdateCapacity(tx, warehouse.ID, newCapacity, userID)
	})
	if err != nil {
		return nil, err
	}

	s.broadcastStockUpdate("item_updated", stored, userID)
	return stored, nil
}

// DeleteItem removes the item and releases its quantity from the warehouse.
func (s *inventoryService) DeleteItem(warehouseID, itemID uuid.UUID, userID string) error {
	var removed *model.InventoryItem
	err := s.txManager.Do(func(tx *gorm.DB) error {
		warehouse, err := s.warehouseRepo.FindByIDForUpdate(tx, warehouseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrWarehouseNotFound
			}
			return err
		}

		existing, err := s.itemRepo.FindByIDForUpdate(tx, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrItemNotFound
			}
			return err
		}
		if existing.WarehouseID != warehouseID {
			return apperr.ErrItemWarehouseMismatch
		}

		newCapacity, err := reserveCapacity(warehouse, -existing.Quantity)
		if err != nil {
			return err
		}

		if err := s.itemRepo.Delete(tx, existing.ID); err != nil {
			return err
		}
		removed = existing

		return s.warehouseRepo.UpdateCapacity(tx, warehouse.ID, newCapacity, userID)
	})
	if err != nil {
		return err
	}

	s.broadcastStockUpdate("item_deleted", removed, userID)
	return nil
}

func (s *inventoryService) broadcastStockUpdate(action string, item *model.InventoryItem, userID string) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": action,
			"item": map[string]interface{}{
				"id":           item.ID,
				"sku":          item.SKU,
				"name":         item.Name,
				"quantity":     item.Quantity,
				"warehouse_id": item.WarehouseID,
			},
			"user_id": userID,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
