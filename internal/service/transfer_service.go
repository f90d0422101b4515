package service

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/chigozie9/WareHouse/internal/apperr"
	"github.com/chigozie9/WareHouse/internal/model"
	"github.com/chigozie9/WareHouse/internal/repository"
	"github.com/chigozie9/WareHouse/internal/ws"

	"gorm.io/gorm"
)

type TransferService interface {
	Transfer(req *model.TransferRequest, userID string) error
	History() ([]model.TransferLog, error)
}

type transferService struct {
	warehouseRepo repository.WarehouseRepository
	itemRepo      repository.ItemRepository
	logRepo       repository.TransferLogRepository
	txManager     repository.TxManager
	wsHub         *ws.Hub
}

func NewTransferService(wRepo repository.WarehouseRepository, iRepo repository.ItemRepository, lRepo repository.TransferLogRepository, txm repository.TxManager, hub *ws.Hub) TransferService {
	return &transferService{
		warehouseRepo: wRepo,
		itemRepo:      iRepo,
		logRepo:       lRepo,
		txManager:     txm,
		wsHub:         hub,
	}
}

// Transfer moves a SKU quantity from source to destination in one atomic
// unit: debit source item and capacity, merge-or-create on destination,
// credit destination capacity, append the transfer log. All admissibility
// checks run before the first write so no partial state can ever commit.
func (s *transferService) Transfer(req *model.TransferRequest, userID string) error {
	if req.SourceWarehouseID == req.DestinationWarehouseID {
		return apperr.ErrSameWarehouse
	}
	if req.Quantity <= 0 {
		return apperr.ErrInvalidQuantity
	}

	err := s.txManager.Do(func(tx *gorm.DB) error {
		// Lock both warehouse rows in ascending id order so two transfers
		// running in opposite directions cannot deadlock.
		firstID, secondID := req.SourceWarehouseID, req.DestinationWarehouseID
		if bytes.Compare(firstID[:], secondID[:]) > 0 {
			firstID, secondID = secondID, firstID
		}

		first, err := s.warehouseRepo.FindByIDForUpdate(tx, firstID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrWarehouseNotFound
			}
			return err
		}
		second, err := s.warehouseRepo.FindByIDForUpdate(tx, secondID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrWarehouseNotFound
			}
			return err
		}

		source, dest := first, second
		if source.ID != req.SourceWarehouseID {
			source, dest = second, first
		}

		sourceItem, err := s.itemRepo.FindByWarehouseAndSKU(tx, source.ID, req.SKU)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrItemNotFound
			}
			return err
		}
		if sourceItem.Quantity < req.Quantity {
			return &apperr.InsufficientStockError{Available: sourceItem.Quantity}
		}

		newDestCapacity, err := reserveCapacity(dest, req.Quantity)
		if err != nil {
			return err
		}
		newSourceCapacity, err := reserveCapacity(source, -req.Quantity)
		if err != nil {
			return err
		}

		// Resolve the destination side before any write so a failure here
		// can never leave the source debited.
		incoming := *sourceItem
		incoming.Quantity = req.Quantity
		decision, err := resolveStockMerge(tx, s.itemRepo, dest.ID, &incoming)
		if err != nil {
			return err
		}

		// Debit source. An emptied item is deleted, never stored at zero.
		sourceItem.Quantity -= req.Quantity
		if sourceItem.Quantity == 0 {
			if err := s.itemRepo.Delete(tx, sourceItem.ID); err != nil {
				return err
			}
		} else {
			sourceItem.UpdatedBy = userID
			if err := s.itemRepo.Save(tx, sourceItem); err != nil {
				return err
			}
		}
		if err := s.warehouseRepo.UpdateCapacity(tx, source.ID, newSourceCapacity, userID); err != nil {
			return err
		}

		// Credit destination.
		if decision.Existing != nil {
			decision.Existing.UpdatedBy = userID
			if err := s.itemRepo.Save(tx, decision.Existing); err != nil {
				return err
			}
		} else {
			decision.Draft.CreatedBy = userID
			decision.Draft.UpdatedBy = userID
			if err := s.itemRepo.Create(tx, decision.Draft); err != nil {
				return err
			}
		}
		if err := s.warehouseRepo.UpdateCapacity(tx, dest.ID, newDestCapacity, userID); err != nil {
			return err
		}

		log := &model.TransferLog{
			SourceWarehouseID:      source.ID,
			DestinationWarehouseID: dest.ID,
			SKU:                    req.SKU,
			Quantity:               req.Quantity,
		}
		log.CreatedBy = userID
		log.UpdatedBy = userID
		return s.logRepo.Create(tx, log)
	})
	if err != nil {
		return err
	}

	s.broadcastTransfer(req, userID)
	return nil
}

func (s *transferService) History() ([]model.TransferLog, error) {
	return s.logRepo.FindAll()
}

func (s *transferService) broadcastTransfer(req *model.TransferRequest, userID string) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": "transfer_completed",
			"transfer": map[string]interface{}{
				"source_warehouse_id":      req.SourceWarehouseID,
				"destination_warehouse_id": req.DestinationWarehouseID,
				"sku":                      req.SKU,
				"quantity":                 req.Quantity,
			},
			"user_id": userID,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
